package scoring

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/schemagraph/schemagraph/graph"
)

// KeywordDictionary configures KeywordScorer: the measure vocabulary and
// its per-word weight, and the suffixes that rule a column out as a
// measure regardless of type (an "id" column is never a fact, no matter
// how numeric its declared type is). Replaceable wholesale, including
// for other natural languages in a future version.
type KeywordDictionary struct {
	Keywords              map[string]NodeScore
	DisqualifyingSuffixes map[string]bool
}

// DefaultKeywordDictionary is the English v1 default.
func DefaultKeywordDictionary() KeywordDictionary {
	keywords := make(map[string]NodeScore)
	for _, w := range []string{"price", "qty", "quantity", "cost", "amount", "rate", "duration"} {
		keywords[w] = Good
	}
	for _, w := range []string{"revenue", "margin", "discount", "sale", "quota", "percent", "pct"} {
		keywords[w] = Normal
	}

	disqualifying := make(map[string]bool)
	for _, w := range []string{"id", "identifier", "key", "uid", "gid", "uuid"} {
		disqualifying[w] = true
	}

	return KeywordDictionary{Keywords: keywords, DisqualifyingSuffixes: disqualifying}
}

// splitWords breaks a column name into lowercase word tokens. It always
// splits on underscore, dash, space and digits; only a name without an
// underscore is also split on camelCase boundaries. If no tokens result,
// the whole lowercased name is returned as a single-word list.
func splitWords(name string) []string {
	var words []string
	var cur strings.Builder
	hasUnderscore := strings.Contains(name, "_")

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || unicode.IsDigit(r):
			flush()
		case !hasUnderscore && unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	if len(words) == 0 {
		return []string{strings.ToLower(name)}
	}
	return words
}

// KeywordScorer rewards or disqualifies columns by the measure
// vocabulary in their name. A multi-word name (snake_case or camelCase)
// is disqualified if its last word is an identifying suffix, and,
// independently of that, needs at least two exact dictionary matches to
// score —
// one incidental hit inside a longer compound name ("discount_code")
// isn't enough to call it a measure. A single-word name scores on an
// exact match, or a conservative substring search failing that.
type KeywordScorer struct {
	graph.NoopVisitor
	Dict KeywordDictionary
	Fact *Objective
	Dim  *Objective
}

// NewKeywordScorer returns a visitor using DefaultKeywordDictionary.
func NewKeywordScorer() *KeywordScorer {
	return NewKeywordScorerWithDictionary(DefaultKeywordDictionary())
}

// NewKeywordScorerWithDictionary returns a visitor scoring against a
// caller-supplied dictionary.
func NewKeywordScorerWithDictionary(dict KeywordDictionary) *KeywordScorer {
	return &KeywordScorer{Dict: dict, Fact: NewObjective("fact"), Dim: NewObjective("dim")}
}

func (v *KeywordScorer) VisitColumn(ctx *graph.VisitContext, id graph.NodeID) error {
	attrs := ctx.Graph.NodeAttrs(id)
	name, _ := attrs["column_name"].(string)
	words := splitWords(name)

	if len(words) > 1 {
		v.scoreMultiWord(id, words)
		return nil
	}
	v.scoreSingleWord(id, words[0])
	return nil
}

func (v *KeywordScorer) scoreMultiWord(id graph.NodeID, words []string) {
	last := words[len(words)-1]
	if v.Dict.DisqualifyingSuffixes[last] {
		v.Fact.Add(id, NodeDisqualified, fmt.Sprintf("name ends in identifying word %q", last))
	}

	var matched []string
	var total NodeScore
	for _, w := range words {
		if score, ok := v.Dict.Keywords[w]; ok {
			matched = append(matched, w)
			total += score
		}
	}
	if len(matched) >= 2 {
		v.Fact.Add(id, total, fmt.Sprintf("keyword matches: %s", strings.Join(matched, ", ")))
	}
}

func (v *KeywordScorer) scoreSingleWord(id graph.NodeID, word string) {
	if v.Dict.DisqualifyingSuffixes[word] {
		v.Fact.Add(id, NodeDisqualified, fmt.Sprintf("name is identifying word %q", word))
		return
	}
	if score, ok := v.Dict.Keywords[word]; ok {
		v.Fact.Add(id, score, fmt.Sprintf("exact match on %q", word))
		return
	}

	var matched []string
	matchedLen := 0
	for kw := range v.Dict.Keywords {
		if strings.Contains(word, kw) {
			matched = append(matched, kw)
			matchedLen += len(kw)
		}
	}
	if len(matched) == 0 {
		return
	}
	sort.Strings(matched)

	var total NodeScore
	for _, kw := range matched {
		total += v.Dict.Keywords[kw]
	}

	if matchedLen == len(word) {
		v.Fact.Add(id, total, "exact match")
		return
	}
	v.Fact.Add(id, Normal, "text search found some keywords")
}
