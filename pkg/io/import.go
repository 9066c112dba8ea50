package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gedtree/pkg/gedcom"
)

// ReadJSON decodes a JSON document from r.
//
// ReadJSON returns an error if the JSON is malformed, was written by a newer
// format version, or contains a node without a tag. Errors name the record
// that caused the problem. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*gedcom.Document, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Version > FormatVersion {
		return nil, fmt.Errorf("unsupported format version %d", data.Version)
	}

	doc := gedcom.NewDocument()
	for i, rec := range data.Records {
		if err := attach(doc.Root(), rec); err != nil {
			return nil, fmt.Errorf("record %d %s: %w", i, rec.Pointer, err)
		}
	}
	return doc, nil
}

// Unmarshal decodes a document produced by [Marshal] or [WriteJSON].
func Unmarshal(data []byte) (*gedcom.Document, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ImportJSON reads a JSON file at path and returns the decoded document.
func ImportJSON(path string) (*gedcom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func attach(parent *gedcom.Element, n *node) error {
	if n == nil || n.Tag == "" {
		return fmt.Errorf("node without tag under level %d", parent.Level())
	}
	e := gedcom.NewElement(parent.Level()+1, n.Pointer, n.Tag, n.Value, n.Terminator)
	if err := parent.AddChild(e); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := attach(e, c); err != nil {
			return err
		}
	}
	return nil
}
