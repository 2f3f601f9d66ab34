package scoring

import (
	"fmt"
	"sort"

	"github.com/schemagraph/schemagraph/graph"
)

// Objective accumulates every score recorded for a node toward one
// named question (e.g. "fact" or "dim"). Nothing about Add or Merge
// special-cases NodeDisqualified: a node's list simply grows, and
// whether it ends up disqualified falls out of what that list sums to
// or contains. This is what makes Merge a plain, order-independent
// concatenation (scoring monotonicity under merge).
type Objective struct {
	Name   string
	scores map[graph.NodeID][]Score
}

// NewObjective returns an empty Objective answering the question named.
// Two objectives can only be merged if their names match.
func NewObjective(name string) *Objective {
	return &Objective{Name: name, scores: make(map[graph.NodeID][]Score)}
}

// Add appends one contribution to id's score list.
func (o *Objective) Add(id graph.NodeID, value NodeScore, reason string) {
	o.scores[id] = append(o.scores[id], Score{Value: value, Reason: reason})
}

// Scored reports whether id has ever received a contribution from this
// objective, distinguishing "not applicable" from "scored zero".
func (o *Objective) Scored(id graph.NodeID) bool {
	_, ok := o.scores[id]
	return ok
}

// Total returns the sum of id's contributions, or 0 if it was never
// scored (use Scored to tell that apart from a genuine zero total).
func (o *Objective) Total(id graph.NodeID) NodeScore {
	var total NodeScore
	for _, s := range o.scores[id] {
		total += s.Value
	}
	return total
}

// Disqualified reports whether any individual contribution to id was
// NodeDisqualified. Because NodeDisqualified dominates any realistic
// sum of Normal/Good contributions, a disqualified node's Total is
// always at or below zero, but Disqualified checks the stronger,
// unambiguous condition directly rather than inferring it from the
// sign of the total.
func (o *Objective) Disqualified(id graph.NodeID) bool {
	for _, s := range o.scores[id] {
		if s.Value == NodeDisqualified {
			return true
		}
	}
	return false
}

// Nodes returns every node id this Objective has ever scored, in no
// particular order.
func (o *Objective) Nodes() []graph.NodeID {
	out := make([]graph.NodeID, 0, len(o.scores))
	for id := range o.scores {
		out = append(out, id)
	}
	return out
}

// GetNodeScores returns one NodeTotal per scored node, sorted ascending
// by total. If cutoff is non-nil, nodes whose total is below *cutoff are
// excluded. Within a node, the individual contributing scores are
// sorted ascending by value.
func (o *Objective) GetNodeScores(cutoff *NodeScore) []NodeTotal {
	out := make([]NodeTotal, 0, len(o.scores))
	for id, scores := range o.scores {
		total := o.Total(id)
		if cutoff != nil && total < *cutoff {
			continue
		}
		sorted := make([]Score, len(scores))
		copy(sorted, scores)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })
		out = append(out, NodeTotal{ID: id, Total: total, Scores: sorted})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total < out[j].Total
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Merge returns a new Objective whose per-node score lists are the
// concatenation of o's and other's; neither operand is mutated. o and
// other must share a Name. A nil other returns o itself.
func (o *Objective) Merge(other *Objective) (*Objective, error) {
	if other == nil {
		return o, nil
	}
	if o.Name != other.Name {
		return nil, fmt.Errorf("scoring: cannot merge objective %q with %q", o.Name, other.Name)
	}
	merged := NewObjective(o.Name)
	for id, scores := range o.scores {
		merged.scores[id] = append(merged.scores[id], scores...)
	}
	for id, scores := range other.scores {
		merged.scores[id] = append(merged.scores[id], scores...)
	}
	return merged, nil
}
