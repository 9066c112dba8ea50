package gedcom

import (
	"errors"
	"slices"
	"strings"
)

// ErrLevelMismatch is returned by [Element.AddChild] when the child's level
// is not exactly one more than the parent's.
var ErrLevelMismatch = errors.New("child level must be parent level + 1")

// Kind classifies an element by its tag. It is decided when the element is
// created and only changes through [Element.SetTag].
type Kind int

const (
	// KindOther is any element that is neither an individual nor a family,
	// including the virtual root.
	KindOther Kind = iota
	// KindIndividual is an INDI record.
	KindIndividual
	// KindFamily is a FAM record.
	KindFamily
)

// String returns the tag-like name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIndividual:
		return "individual"
	case KindFamily:
		return "family"
	default:
		return "other"
	}
}

func kindOf(tag string) Kind {
	switch tag {
	case TagIndividual:
		return KindIndividual
	case TagFamily:
		return KindFamily
	default:
		return KindOther
	}
}

// Element is one node of a GEDCOM document tree.
//
// The parent link is a back-reference used only for traversal; a parent owns
// its children, never the other way round. Elements belonging to a
// [Document] bump the document's generation whenever they are mutated, so
// the document's derived caches never go stale.
//
// The zero value is not usable - use [NewElement] or parse a document.
type Element struct {
	level      int
	pointer    string
	tag        string
	value      string
	terminator string
	kind       Kind

	parent   *Element
	children []*Element
	doc      *Document
}

// NewElement creates a detached element. An empty terminator defaults to "\n".
func NewElement(level int, pointer, tag, value, terminator string) *Element {
	if terminator == "" {
		terminator = "\n"
	}
	return &Element{
		level:      level,
		pointer:    pointer,
		tag:        tag,
		value:      value,
		terminator: terminator,
		kind:       kindOf(tag),
	}
}

func (e *Element) Level() int         { return e.level }
func (e *Element) Pointer() string    { return e.pointer }
func (e *Element) Tag() string        { return e.tag }
func (e *Element) Value() string      { return e.value }
func (e *Element) Terminator() string { return e.terminator }
func (e *Element) Kind() Kind         { return e.kind }

// Parent returns the owning element, or nil for the root and detached elements.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child elements in source order.
// The returned slice should be treated as read-only.
func (e *Element) Children() []*Element { return e.children }

// IsRoot reports whether e is the virtual document root.
func (e *Element) IsRoot() bool { return e.level == -1 && e.parent == nil && e.tag == "" }

func (e *Element) IsIndividual() bool { return e.kind == KindIndividual }
func (e *Element) IsFamily() bool     { return e.kind == KindFamily }

// ChildByTag returns the first direct child with the given tag, or nil.
func (e *Element) ChildByTag(tag string) *Element {
	for _, c := range e.children {
		if c.tag == tag {
			return c
		}
	}
	return nil
}

// ChildrenByTag returns all direct children with the given tag in source order.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var out []*Element
	for _, c := range e.children {
		if c.tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// HasTag reports whether e has a direct child with the given tag.
func (e *Element) HasTag(tag string) bool { return e.ChildByTag(tag) != nil }

// ChildValue returns the value of the first child with the given tag,
// or "" when there is none.
func (e *Element) ChildValue(tag string) string {
	if c := e.ChildByTag(tag); c != nil {
		return c.value
	}
	return ""
}

// FullValue joins the element's value with its CONC and CONT children.
// CONC appends without a separator, CONT starts a new line.
func (e *Element) FullValue() string {
	var b strings.Builder
	b.WriteString(e.value)
	for _, c := range e.children {
		switch c.tag {
		case TagConcatenation:
			b.WriteString(c.value)
		case TagContinued:
			b.WriteString("\n")
			b.WriteString(c.value)
		}
	}
	return b.String()
}

// AddChild appends child (and its subtree) under e.
func (e *Element) AddChild(child *Element) error {
	if child.level != e.level+1 {
		return ErrLevelMismatch
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	child.adopt(e.doc)
	e.touch()
	return nil
}

// RemoveChild detaches child from e. It reports whether child was found.
func (e *Element) RemoveChild(child *Element) bool {
	i := slices.Index(e.children, child)
	if i < 0 {
		return false
	}
	e.children = slices.Delete(e.children, i, i+1)
	child.parent = nil
	child.adopt(nil)
	e.touch()
	return true
}

func (e *Element) SetValue(v string) {
	e.value = v
	e.touch()
}

func (e *Element) SetPointer(p string) {
	e.pointer = p
	e.touch()
}

// SetTag changes the tag and re-derives the element's kind.
func (e *Element) SetTag(tag string) {
	e.tag = tag
	e.kind = kindOf(tag)
	e.touch()
}

// adopt moves the subtree rooted at e into doc.
func (e *Element) adopt(doc *Document) {
	stack := []*Element{e}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n.doc = doc
		stack = append(stack, n.children...)
	}
}

func (e *Element) touch() {
	if e.doc != nil {
		e.doc.Invalidate()
	}
}
