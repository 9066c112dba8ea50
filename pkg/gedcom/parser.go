package gedcom

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single GEDCOM line. Embedded media and long notes can
// be large, so the default bufio limit of 64 KiB is too small.
const maxLineSize = 16 << 20

// Options configures parsing.
type Options struct {
	// Strict rejects every line that does not match the GEDCOM 5.5 grammar.
	// When false, missing terminators and orphaned text lines are recovered.
	// Level jumps of more than one are rejected in both modes.
	Strict bool

	// Logger receives a message for every recovered line. May be nil.
	Logger func(msg string, args ...any)
}

// Parser builds [Document] trees from GEDCOM 5.5 input.
//
// Each successful parse replaces the parser's current document with a fresh
// one; a failed parse leaves the previous document in place, so a partially
// built tree is never exposed.
type Parser struct {
	opts Options
	doc  *Document
}

// NewParser creates a parser holding an empty document.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts, doc: NewDocument()}
}

// Document returns the result of the last successful parse.
func (p *Parser) Document() *Document { return p.doc }

// ParseFile opens path and parses it.
func (p *Parser) ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return p.ParseReader(f)
}

// ParseString parses GEDCOM text held in memory.
func (p *Parser) ParseString(s string) (*Document, error) {
	return p.ParseReader(strings.NewReader(s))
}

// ParseReader parses a stream. Lines end at "\r\n", "\n" or "\r"; the
// terminator is kept with the line.
func (p *Parser) ParseReader(r io.Reader) (*Document, error) {
	b := p.newBuilder()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)
	for scanner.Scan() {
		if err := b.add(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", b.number+1, err)
	}
	return p.commit(b), nil
}

// ParseLines parses lines that were already split. Each line should carry
// its terminator; without one it only parses in lenient mode.
func (p *Parser) ParseLines(lines []string) (*Document, error) {
	b := p.newBuilder()
	for _, line := range lines {
		if err := b.add(line); err != nil {
			return nil, err
		}
	}
	return p.commit(b), nil
}

// Parse reads a complete document from r with a one-off parser.
func Parse(r io.Reader, opts Options) (*Document, error) {
	return NewParser(opts).ParseReader(r)
}

// ParseFile reads a complete document from path with a one-off parser.
func ParseFile(path string, opts Options) (*Document, error) {
	return NewParser(opts).ParseFile(path)
}

func (p *Parser) newBuilder() *builder {
	doc := NewDocument()
	return &builder{doc: doc, last: doc.root, opts: p.opts}
}

func (p *Parser) commit(b *builder) *Document {
	p.doc = b.doc
	return b.doc
}

// builder attaches parsed lines to a tree, tracking the last element added.
type builder struct {
	doc    *Document
	last   *Element
	number int
	opts   Options
}

func (b *builder) add(raw string) error {
	b.number++
	if b.number == 1 {
		raw = strings.TrimPrefix(raw, byteOrderMark)
	}

	line, err := ParseLine(b.number, raw, b.last, b.opts.Strict)
	if err != nil {
		return err
	}
	if line.Level > b.last.level+1 {
		return &FormatViolationError{Line: b.number, Text: raw, Reason: ReasonLevelJump}
	}
	if line.Recovery != RecoveryNone && b.opts.Logger != nil {
		b.opts.Logger("recovered line %d (%s) as %d %s", b.number, line.Recovery, line.Level, line.Tag)
	}

	parent := b.last
	for parent.level > line.Level-1 {
		parent = parent.parent
	}

	e := NewElement(line.Level, line.Pointer, line.Tag, line.Value, line.Terminator)
	e.parent = parent
	e.doc = b.doc
	parent.children = append(parent.children, e)
	b.last = e
	return nil
}

// scanLines is a bufio.SplitFunc that splits on "\r\n", "\n\r", "\n" or a
// lone "\r" and keeps the terminator in the token.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		end := i + 1
		if end == len(data) && !atEOF {
			return 0, nil, nil
		}
		if end < len(data) && data[end] != data[i] && (data[end] == '\r' || data[end] == '\n') {
			end++
		}
		return end, data[:end], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
