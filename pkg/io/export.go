package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gedtree/pkg/gedcom"
)

// FormatVersion is written to every exported document.
const FormatVersion = 1

type document struct {
	Version int     `json:"version"`
	Records []*node `json:"records"`
}

type node struct {
	Pointer    string  `json:"pointer,omitempty"`
	Tag        string  `json:"tag"`
	Value      string  `json:"value,omitempty"`
	Terminator string  `json:"eol,omitempty"`
	Children   []*node `json:"children,omitempty"`
}

// WriteJSON encodes a document as JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(doc *gedcom.Document, w io.Writer) error {
	out := document{
		Version: FormatVersion,
		Records: make([]*node, len(doc.Records())),
	}
	for i, rec := range doc.Records() {
		out.Records[i] = toNode(rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal returns the compact JSON encoding of a document.
func Marshal(doc *gedcom.Document) ([]byte, error) {
	out := document{
		Version: FormatVersion,
		Records: make([]*node, len(doc.Records())),
	}
	for i, rec := range doc.Records() {
		out.Records[i] = toNode(rec)
	}
	return json.Marshal(out)
}

// ExportJSON writes a document to a JSON file at path.
func ExportJSON(doc *gedcom.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}

func toNode(e *gedcom.Element) *node {
	n := &node{
		Pointer: e.Pointer(),
		Tag:     e.Tag(),
		Value:   e.Value(),
	}
	if e.Terminator() != "\n" {
		n.Terminator = e.Terminator()
	}
	if len(e.Children()) > 0 {
		n.Children = make([]*node, len(e.Children()))
		for i, c := range e.Children() {
			n.Children[i] = toNode(c)
		}
	}
	return n
}
