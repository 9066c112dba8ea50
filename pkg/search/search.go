// Package search finds individuals by approximate name.
//
// Matching is a case-insensitive subsequence match: every character of the
// query must appear in the name in order ("jn doe" finds "John Doe"). Results
// are ranked by Levenshtein distance between query and name, so closer names
// come first and ties keep document order.
package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/matzehuels/gedtree/pkg/gedcom"
)

// Match is one search hit.
type Match struct {
	Individual *gedcom.Element
	Name       string
	Distance   int // Levenshtein distance, 0 for a pointer lookup
}

// Individuals searches the top-level individuals of doc. A query that is a
// pointer of an individual ("@I1@") returns that individual alone. limit <= 0
// returns all matches.
func Individuals(doc *gedcom.Document, query string, limit int) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if e, ok := doc.Resolve(query); ok && e.IsIndividual() {
		return []Match{{Individual: e, Name: e.Name()}}
	}

	inds := doc.Individuals()
	names := make([]string, len(inds))
	for i, ind := range inds {
		names[i] = ind.Name()
	}

	ranks := fuzzy.RankFindFold(query, names)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		return cmp.Or(cmp.Compare(a.Distance, b.Distance), cmp.Compare(a.OriginalIndex, b.OriginalIndex))
	})

	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]Match, len(ranks))
	for i, r := range ranks {
		out[i] = Match{Individual: inds[r.OriginalIndex], Name: r.Target, Distance: r.Distance}
	}
	return out
}

// Closest returns the best match for query, or false when nothing matches.
func Closest(doc *gedcom.Document, query string) (Match, bool) {
	m := Individuals(doc, query, 1)
	if len(m) == 0 {
		return Match{}, false
	}
	return m[0], true
}
