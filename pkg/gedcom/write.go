package gedcom

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// GEDCOM formats the element as a GEDCOM line and, when recursive is set,
// its whole subtree. Levels are recomputed from the tree depth; pointer, tag,
// value and terminator are written as stored. The root produces no line of
// its own.
func (e *Element) GEDCOM(recursive bool) string {
	var b strings.Builder
	w := bufio.NewWriter(&b)
	_ = writeElement(w, e, e.depth(), recursive)
	_ = w.Flush()
	return b.String()
}

// WriteTo writes the whole document as GEDCOM text.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	if err := writeElement(bw, d.root, -1, true); err != nil {
		return cw.n, err
	}
	err := bw.Flush()
	return cw.n, err
}

// String returns the document as GEDCOM text.
func (d *Document) String() string { return d.root.GEDCOM(true) }

func (e *Element) depth() int {
	if e.parent == nil {
		if e.IsRoot() {
			return -1
		}
		return e.level
	}
	return e.parent.depth() + 1
}

func writeElement(w *bufio.Writer, e *Element, depth int, recursive bool) error {
	if !recursive {
		if e.IsRoot() {
			return nil
		}
		return writeLine(w, e, depth)
	}

	type frame struct {
		elem  *Element
		depth int
	}
	stack := []frame{{e, depth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.elem.IsRoot() {
			if err := writeLine(w, f.elem, f.depth); err != nil {
				return err
			}
		}
		for i := len(f.elem.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.elem.children[i], f.depth + 1})
		}
	}
	return nil
}

func writeLine(w *bufio.Writer, e *Element, level int) error {
	w.WriteString(strconv.Itoa(level))
	if e.pointer != "" {
		w.WriteByte(' ')
		w.WriteString(e.pointer)
	}
	w.WriteByte(' ')
	w.WriteString(e.tag)
	if e.value != "" {
		w.WriteByte(' ')
		w.WriteString(e.value)
	}
	_, err := w.WriteString(e.terminator)
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
