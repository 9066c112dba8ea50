package pipeline

import (
	"context"
	"slices"
	"time"

	gerrors "github.com/matzehuels/gedtree/pkg/errors"
	"github.com/matzehuels/gedtree/pkg/gedcom"
	"github.com/matzehuels/gedtree/pkg/observability"
)

// Relation names accepted by [Query].
const (
	RelParents     = "parents"
	RelChildren    = "children"
	RelAncestors   = "ancestors"
	RelDescendants = "descendants"
	RelSiblings    = "siblings"
	RelSpouses     = "spouses"
	RelMarriages   = "marriages"
	RelFamilies    = "families"
)

// Relations lists every relation in display order.
var Relations = []string{
	RelParents, RelChildren, RelAncestors, RelDescendants,
	RelSiblings, RelSpouses, RelMarriages, RelFamilies,
}

// QueryResult holds the answer to one relationship query. Marriages is set
// for RelMarriages; People holds individuals, or FAM records for
// RelFamilies. For RelParents, Parents keeps the father and mother slots
// and People lists whichever of them are known.
type QueryResult struct {
	Relation   string
	Individual *gedcom.Element
	People     []*gedcom.Element
	Parents    gedcom.ParentPair
	Marriages  []gedcom.Marriage
}

// Len is the number of results.
func (q *QueryResult) Len() int {
	if q.Relation == RelMarriages {
		return len(q.Marriages)
	}
	return len(q.People)
}

// Lookup resolves a pointer given with or without '@' delimiters.
func Lookup(doc *gedcom.Document, pointer string) (*gedcom.Element, error) {
	ptr, err := gerrors.NormalizePointer(pointer)
	if err != nil {
		return nil, err
	}
	e, ok := doc.Resolve(ptr)
	if !ok {
		return nil, gerrors.New(gerrors.ErrCodeIndividualNotFound, "no record %s", ptr)
	}
	return e, nil
}

// Query follows one relation from the individual at pointer.
func Query(ctx context.Context, doc *gedcom.Document, pointer, relation string) (*QueryResult, error) {
	if !slices.Contains(Relations, relation) {
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "unknown relation %q", relation)
	}
	ind, err := Lookup(doc, pointer)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	q := &QueryResult{Relation: relation, Individual: ind}
	switch relation {
	case RelParents:
		q.Parents, err = doc.Parents(ind)
		q.People = q.Parents.Present()
	case RelChildren:
		q.People, err = doc.Children(ind)
	case RelAncestors:
		q.People, err = doc.Ancestors(ind)
	case RelDescendants:
		q.People, err = doc.Descendants(ind)
	case RelSiblings:
		q.People, err = doc.Siblings(ind)
	case RelSpouses:
		q.People, err = doc.Spouses(ind)
	case RelMarriages:
		q.Marriages, err = doc.Marriages(ind)
	case RelFamilies:
		q.People, err = families(doc, ind)
	}
	observability.Pipeline().OnQuery(ctx, relation, q.Len(), time.Since(start), err)
	if err != nil {
		return nil, gerrors.Wrap(gerrors.Classify(err), err, "%s of %s", relation, ind.Pointer())
	}
	return q, nil
}

// families returns the family the individual was born into followed by the
// families they founded.
func families(doc *gedcom.Document, ind *gedcom.Element) ([]*gedcom.Element, error) {
	born, err := doc.Families(ind, gedcom.RoleChild)
	if err != nil {
		return nil, err
	}
	founded, err := doc.Families(ind, gedcom.RoleSpouse)
	if err != nil {
		return nil, err
	}
	return append(born, founded...), nil
}

// Path finds the parent chain from one individual up to an ancestor. When
// none exists it returns an error coded NOT_FOUND.
func Path(ctx context.Context, doc *gedcom.Document, from, to string) ([]*gedcom.Element, error) {
	desc, err := Lookup(doc, from)
	if err != nil {
		return nil, err
	}
	anc, err := Lookup(doc, to)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	path, err := doc.FindPathToAncestor(desc, anc)
	observability.Pipeline().OnQuery(ctx, "path", len(path), time.Since(start), err)
	if err != nil {
		return nil, gerrors.Wrap(gerrors.Classify(err), err, "path from %s to %s", desc.Pointer(), anc.Pointer())
	}
	if path == nil {
		return nil, gerrors.New(gerrors.ErrCodeNotFound, "%s is not an ancestor of %s", anc.Pointer(), desc.Pointer())
	}
	return path, nil
}
