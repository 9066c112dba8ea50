package gedcom

import "slices"

// FamilyRole selects which family links of an individual to follow.
type FamilyRole int

const (
	// RoleSpouse follows FAMS links: families where the individual is a partner.
	RoleSpouse FamilyRole = iota
	// RoleChild follows FAMC links: families where the individual is a child.
	RoleChild
)

func (r FamilyRole) tag() string {
	if r == RoleChild {
		return TagFamilyChild
	}
	return TagFamilySpouse
}

// ParentPair holds an individual's parents. Either slot may be nil; a nil
// slot means the family does not name that parent or the pointer dangles.
type ParentPair struct {
	Father *Element // HUSB of the child's family
	Mother *Element // WIFE of the child's family
}

// Present returns the non-nil parents, father first.
func (p ParentPair) Present() []*Element {
	var out []*Element
	if p.Father != nil {
		out = append(out, p.Father)
	}
	if p.Mother != nil {
		out = append(out, p.Mother)
	}
	return out
}

// Marriage is a MARR event of one spouse family. Missing fields are empty
// strings, not absent.
type Marriage struct {
	Date  string `json:"date" yaml:"date"`
	Place string `json:"place" yaml:"place"`
}

func requireIndividual(elems ...*Element) error {
	for _, e := range elems {
		if e == nil {
			return &WrongKindError{}
		}
		if e.kind != KindIndividual {
			return &WrongKindError{Pointer: e.pointer, Tag: e.tag}
		}
	}
	return nil
}

// Families returns the families the individual links to in the given role,
// in source order. Links whose pointer does not resolve are skipped.
func (d *Document) Families(ind *Element, role FamilyRole) ([]*Element, error) {
	if err := requireIndividual(ind); err != nil {
		return nil, err
	}
	return d.families(ind, role), nil
}

func (d *Document) families(ind *Element, role FamilyRole) []*Element {
	index := d.Index()
	tag := role.tag()
	var out []*Element
	for _, c := range ind.children {
		if c.tag != tag {
			continue
		}
		if fam, ok := index[c.value]; ok {
			out = append(out, fam)
		}
	}
	return out
}

// Parents returns the husband and wife of the individual's FAMC family.
// Without a resolvable FAMC link both slots are nil.
func (d *Document) Parents(ind *Element) (ParentPair, error) {
	if err := requireIndividual(ind); err != nil {
		return ParentPair{}, err
	}
	return d.parents(ind), nil
}

func (d *Document) parents(ind *Element) ParentPair {
	ptr := ind.ChildFamilyPointer()
	if ptr == "" {
		return ParentPair{}
	}
	fam, ok := d.Resolve(ptr)
	if !ok || fam.kind != KindFamily {
		return ParentPair{}
	}
	return ParentPair{
		Father: d.individual(fam.HusbandPointer()),
		Mother: d.individual(fam.WifePointer()),
	}
}

// individual resolves ptr to an INDI record or nil.
func (d *Document) individual(ptr string) *Element {
	if ptr == "" {
		return nil
	}
	if e, ok := d.Resolve(ptr); ok && e.kind == KindIndividual {
		return e
	}
	return nil
}

// Children returns the children listed in every spouse family of the
// individual, family by family in source order.
func (d *Document) Children(ind *Element) ([]*Element, error) {
	if err := requireIndividual(ind); err != nil {
		return nil, err
	}
	return d.children(ind), nil
}

func (d *Document) children(ind *Element) []*Element {
	var out []*Element
	for _, fam := range d.families(ind, RoleSpouse) {
		for _, ptr := range fam.ChildPointers() {
			if c := d.individual(ptr); c != nil {
				out = append(out, c)
			}
		}
	}
	return out
}

// Descendants expands Children depth-first: each child is followed by its
// own descendants before the next sibling.
func (d *Document) Descendants(ind *Element) ([]*Element, error) {
	if err := requireIndividual(ind); err != nil {
		return nil, err
	}
	return expand(ind, d.children), nil
}

// Ancestors expands Parents depth-first: the father and all his ancestors
// come before the mother and hers.
func (d *Document) Ancestors(ind *Element) ([]*Element, error) {
	if err := requireIndividual(ind); err != nil {
		return nil, err
	}
	return expand(ind, func(e *Element) []*Element { return d.parents(e).Present() }), nil
}

// Siblings returns the other children of the individual's FAMC family.
func (d *Document) Siblings(ind *Element) ([]*Element, error) {
	if err := requireIndividual(ind); err != nil {
		return nil, err
	}
	fam := d.familyOf(ind.ChildFamilyPointer())
	if fam == nil {
		return nil, nil
	}
	var out []*Element
	for _, ptr := range fam.ChildPointers() {
		if c := d.individual(ptr); c != nil && c != ind {
			out = append(out, c)
		}
	}
	return out, nil
}

// Spouses returns the partner named in each spouse family, in family order.
// Families without a second partner contribute nothing.
func (d *Document) Spouses(ind *Element) ([]*Element, error) {
	if err := requireIndividual(ind); err != nil {
		return nil, err
	}
	var out []*Element
	for _, fam := range d.families(ind, RoleSpouse) {
		for _, ptr := range []string{fam.HusbandPointer(), fam.WifePointer()} {
			if s := d.individual(ptr); s != nil && s != ind {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (d *Document) familyOf(ptr string) *Element {
	if ptr == "" {
		return nil
	}
	if e, ok := d.Resolve(ptr); ok && e.kind == KindFamily {
		return e
	}
	return nil
}

// Marriages returns one entry per spouse family that records a MARR event.
// The first DATE and PLAC under the event are used.
func (d *Document) Marriages(ind *Element) ([]Marriage, error) {
	if err := requireIndividual(ind); err != nil {
		return nil, err
	}
	var out []Marriage
	for _, fam := range d.families(ind, RoleSpouse) {
		marr := fam.MarriageEvent()
		if marr == nil {
			continue
		}
		out = append(out, Marriage{Date: marr.EventDate(), Place: marr.EventPlace()})
	}
	return out, nil
}

// FindPathToAncestor searches the parent links of descendant, father before
// mother, and returns the first chain [descendant, ..., ancestor]. It returns
// nil when no chain reaches ancestor. An individual is its own zero-hop
// ancestor.
func (d *Document) FindPathToAncestor(descendant, ancestor *Element) ([]*Element, error) {
	if err := requireIndividual(descendant, ancestor); err != nil {
		return nil, err
	}

	type frame struct {
		elem  *Element
		depth int
	}
	var (
		path  []*Element
		stack = []frame{{descendant, 0}}
	)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path = path[:f.depth]
		if slices.Contains(path, f.elem) {
			continue
		}
		path = append(path, f.elem)
		if sameIndividual(f.elem, ancestor) {
			return append([]*Element(nil), path...), nil
		}

		parents := d.parents(f.elem).Present()
		for i := len(parents) - 1; i >= 0; i-- {
			stack = append(stack, frame{parents[i], f.depth + 1})
		}
	}
	return nil, nil
}

func sameIndividual(a, b *Element) bool {
	if a == b {
		return true
	}
	return a.pointer != "" && a.pointer == b.pointer
}

// expand walks next() from start in depth-first pre-order and returns every
// element reached, excluding start. A branch that would revisit an element
// already on the current path is cut, so cyclic family data terminates.
// The same element may still appear in several branches.
func expand(start *Element, next func(*Element) []*Element) []*Element {
	type frame struct {
		elem  *Element
		depth int
	}
	var (
		out   []*Element
		path  = []*Element{start}
		stack []frame
	)
	push := func(e *Element, depth int) {
		nexts := next(e)
		for i := len(nexts) - 1; i >= 0; i-- {
			stack = append(stack, frame{nexts[i], depth + 1})
		}
	}

	push(start, 0)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path = path[:f.depth]
		if slices.Contains(path, f.elem) {
			continue
		}
		out = append(out, f.elem)
		path = append(path, f.elem)
		push(f.elem, f.depth)
	}
	return out
}
