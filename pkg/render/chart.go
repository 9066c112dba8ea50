package render

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/gedtree/pkg/gedcom"
)

// Mode selects the direction a chart grows in.
type Mode string

const (
	ModeDescendants Mode = "descendants"
	ModeAncestors   Mode = "ancestors"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeDescendants, ModeAncestors:
		return m, nil
	}
	return "", fmt.Errorf("unknown chart mode %q (want %s or %s)", s, ModeDescendants, ModeAncestors)
}

// Options configures [Build].
type Options struct {
	Mode Mode
	// MaxDepth limits the number of generations below or above the root.
	// Zero means no limit.
	MaxDepth int
}

// Person is a chart node.
type Person struct {
	ID         string // GEDCOM pointer
	Name       string
	Gender     string
	Lifespan   string // "1900-1970", "1900-", "-1970" or ""
	Generation int    // distance from the root, 0 for the root itself
}

// Link connects a parent to a child.
type Link struct {
	Parent string
	Child  string
}

// Chart is a family chart rooted at one individual.
type Chart struct {
	Mode   Mode
	Root   string
	People []Person
	Links  []Link
}

// Build walks the family graph from root breadth-first, one generation at a
// time, and records every person and parent-child link it reaches.
func Build(doc *gedcom.Document, root *gedcom.Element, opts Options) (*Chart, error) {
	if opts.Mode == "" {
		opts.Mode = ModeDescendants
	}
	if _, err := ParseMode(string(opts.Mode)); err != nil {
		return nil, err
	}
	if !root.IsIndividual() {
		return nil, &gedcom.WrongKindError{Pointer: root.Pointer(), Tag: root.Tag()}
	}

	c := &Chart{Mode: opts.Mode, Root: root.Pointer()}
	seen := map[*gedcom.Element]bool{root: true}
	linked := map[Link]bool{}

	type item struct {
		elem *gedcom.Element
		gen  int
	}
	queue := []item{{root, 0}}
	c.People = append(c.People, person(root, 0))

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if opts.MaxDepth > 0 && it.gen >= opts.MaxDepth {
			continue
		}

		next, err := neighbours(doc, it.elem, opts.Mode)
		if err != nil {
			return nil, err
		}
		for _, n := range next {
			link := Link{Parent: it.elem.Pointer(), Child: n.Pointer()}
			if opts.Mode == ModeAncestors {
				link = Link{Parent: n.Pointer(), Child: it.elem.Pointer()}
			}
			if !linked[link] {
				linked[link] = true
				c.Links = append(c.Links, link)
			}
			if seen[n] {
				continue
			}
			seen[n] = true
			c.People = append(c.People, person(n, it.gen+1))
			queue = append(queue, item{n, it.gen + 1})
		}
	}
	return c, nil
}

func neighbours(doc *gedcom.Document, e *gedcom.Element, mode Mode) ([]*gedcom.Element, error) {
	if mode == ModeAncestors {
		p, err := doc.Parents(e)
		return p.Present(), err
	}
	return doc.Children(e)
}

func person(e *gedcom.Element, gen int) Person {
	return Person{
		ID:         e.Pointer(),
		Name:       e.Name(),
		Gender:     e.Gender(),
		Lifespan:   lifespan(e),
		Generation: gen,
	}
}

func lifespan(e *gedcom.Element) string {
	birth, death := eventYear(e.Birth()), eventYear(e.Death())
	if birth == "" && death == "" {
		return ""
	}
	return birth + "-" + death
}

func eventYear(event *gedcom.Element) string {
	if event == nil {
		return ""
	}
	d, ok := gedcom.ParseDate(event.EventDate())
	if !ok {
		return ""
	}
	return strconv.Itoa(d.Year)
}
