package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/gedtree/pkg/gedcom"
)

// Header is the CSV header row.
var Header = []string{"Name", "Gender", "Arbeit", "Geburt", "Tod", "Kinder", "Eltern (V,M)"}

const listSeparator = "; "

// WriteCSV writes one row per top-level individual of doc.
func WriteCSV(w io.Writer, doc *gedcom.Document, opts Options) error {
	people, err := SummarizeAll(doc, opts)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range people {
		row := []string{
			p.Name,
			p.Gender,
			p.Occupation,
			p.Birth,
			p.Death,
			strings.Join(p.Children, listSeparator),
			strings.Join(p.Parents, listSeparator),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", p.Pointer, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
