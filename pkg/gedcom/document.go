package gedcom

// Document is a parsed GEDCOM file: a virtual root element owning all
// top-level records, plus lazily derived lookup structures.
//
// The flat element list and the pointer index are cached against a
// generation counter. Every mutation through the [Element] setters bumps the
// generation, and the caches rebuild on their next read.
//
// A Document is not safe for concurrent use.
type Document struct {
	root *Element
	gen  uint64

	listGen  uint64
	list     []*Element
	indexGen uint64
	index    map[string]*Element
}

// NewDocument returns an empty document containing only the root.
func NewDocument() *Document {
	d := &Document{gen: 1}
	d.root = &Element{level: -1, terminator: "\n", doc: d}
	return d
}

// Root returns the virtual root element (level -1).
func (d *Document) Root() *Element { return d.root }

// Records returns the top-level records in source order.
func (d *Document) Records() []*Element { return d.root.children }

// Generation returns the current mutation generation.
func (d *Document) Generation() uint64 { return d.gen }

// Invalidate marks the derived caches stale. Element setters call it
// automatically; it only needs calling directly after out-of-band changes.
func (d *Document) Invalidate() { d.gen++ }

// Elements returns every element except the root in document order
// (parent before children, children in source order).
func (d *Document) Elements() []*Element {
	if d.listGen == d.gen {
		return d.list
	}
	var list []*Element
	stack := make([]*Element, 0, len(d.root.children))
	for i := len(d.root.children) - 1; i >= 0; i-- {
		stack = append(stack, d.root.children[i])
	}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		list = append(list, e)
		for i := len(e.children) - 1; i >= 0; i-- {
			stack = append(stack, e.children[i])
		}
	}
	d.list, d.listGen = list, d.gen
	return list
}

// Index returns the mapping from pointer to the top-level record declaring
// it. When a pointer is declared twice the later record wins.
// The returned map should be treated as read-only.
func (d *Document) Index() map[string]*Element {
	if d.indexGen == d.gen {
		return d.index
	}
	index := make(map[string]*Element)
	for _, e := range d.root.children {
		if e.pointer != "" {
			index[e.pointer] = e
		}
	}
	d.index, d.indexGen = index, d.gen
	return index
}

// Resolve looks up the record declaring pointer. A missing pointer is a
// normal outcome and reported as false.
func (d *Document) Resolve(pointer string) (*Element, bool) {
	e, ok := d.Index()[pointer]
	return e, ok
}

// ResolveAll resolves each pointer in order. Unresolved pointers leave a nil
// slot so the result lines up with the input.
func (d *Document) ResolveAll(pointers []string) []*Element {
	out := make([]*Element, len(pointers))
	for i, p := range pointers {
		out[i], _ = d.Resolve(p)
	}
	return out
}

// Individuals returns the top-level INDI records in source order.
func (d *Document) Individuals() []*Element { return d.recordsOfKind(KindIndividual) }

// FamilyRecords returns the top-level FAM records in source order.
func (d *Document) FamilyRecords() []*Element { return d.recordsOfKind(KindFamily) }

func (d *Document) recordsOfKind(k Kind) []*Element {
	var out []*Element
	for _, e := range d.root.children {
		if e.kind == k {
			out = append(out, e)
		}
	}
	return out
}
