// Package scoring ranks the columns of a database graph by how likely
// they are to be a fact-table measure versus a dimension/identifying
// attribute, using a small set of composable heuristics that each
// report a list of scores into a shared Objective.
package scoring

import "github.com/schemagraph/schemagraph/graph"

// NodeScore is one heuristic's contribution to a node's score, or the
// running total of several. Higher is a stronger candidate.
type NodeScore int

// Score magnitudes. A scorer's individual contributions use one of
// these two levels; NodeDisqualified is a distinguished sentinel, not a
// magnitude level.
const (
	Normal NodeScore = 100
	Good   NodeScore = 200
)

// NodeDisqualified marks a column that cannot be a measure candidate
// under any circumstance (for example: it is part of a primary or
// foreign key). It is far below any realistic additive combination of
// Normal/Good contributions, so a node carrying it totals at or below
// zero regardless of what else scored it.
const NodeDisqualified NodeScore = -100000

// Score is a single heuristic's verdict on one node: a value and the
// human-readable reason it was given, e.g. "column is part of primary
// key" or "exact match".
type Score struct {
	Value  NodeScore
	Reason string
}

// NodeTotal is one node's aggregated result from Objective.GetNodeScores:
// its total and the individual contributions that sum to it, sorted
// ascending by individual value.
type NodeTotal struct {
	ID     graph.NodeID
	Total  NodeScore
	Scores []Score
}
