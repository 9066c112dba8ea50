package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gedtree/pkg/export"
	"github.com/matzehuels/gedtree/pkg/gedcom"
)

// Output formats for commands that print records.
const (
	formatText = "text"
	formatJSON = export.FormatJSON
	formatYAML = export.FormatYAML
)

func validateOutputFormat(f string) error {
	switch f {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'yaml')", f)
}

// newTable returns a lipgloss table in the CLI's house style.
func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		})
}

// writePeople prints individuals in the requested format. Text output shows
// one table row per individual with birth and death dates.
func writePeople(w io.Writer, format string, doc *gedcom.Document, people []*gedcom.Element, opts export.Options) error {
	summaries := make([]export.Person, 0, len(people))
	for _, p := range people {
		s, err := export.Summarize(doc, p, opts)
		if err != nil {
			return err
		}
		summaries = append(summaries, s)
	}
	if format != formatText {
		return export.Encode(w, format, summaries)
	}

	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, StyleDim.Render("(none)"))
		return err
	}
	t := newTable("Pointer", "Name", "Born", "Died")
	for _, s := range summaries {
		t.Row(s.Pointer, s.Name, s.Birth, s.Death)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// writeParents prints the father and mother slots of an individual. A parent
// the family does not name is null in JSON and YAML and "unknown" in text.
func writeParents(w io.Writer, format string, doc *gedcom.Document, pair gedcom.ParentPair, opts export.Options) error {
	summarize := func(e *gedcom.Element) (*export.Person, error) {
		if e == nil {
			return nil, nil
		}
		s, err := export.Summarize(doc, e, opts)
		if err != nil {
			return nil, err
		}
		return &s, nil
	}
	var (
		slots export.Parents
		err   error
	)
	if slots.Father, err = summarize(pair.Father); err != nil {
		return err
	}
	if slots.Mother, err = summarize(pair.Mother); err != nil {
		return err
	}
	if format != formatText {
		return export.Encode(w, format, slots)
	}

	t := newTable("Role", "Pointer", "Name", "Born", "Died")
	for _, slot := range []struct {
		role string
		p    *export.Person
	}{{"father", slots.Father}, {"mother", slots.Mother}} {
		if slot.p == nil {
			t.Row(slot.role, "", StyleDim.Render("unknown"), "", "")
			continue
		}
		t.Row(slot.role, slot.p.Pointer, slot.p.Name, slot.p.Birth, slot.p.Death)
	}
	_, err = fmt.Fprintln(w, t.Render())
	return err
}

func writeFamilies(w io.Writer, format string, fams []export.Family) error {
	if format != formatText {
		return export.Encode(w, format, fams)
	}
	if len(fams) == 0 {
		_, err := fmt.Fprintln(w, StyleDim.Render("(none)"))
		return err
	}
	t := newTable("Pointer", "Husband", "Wife", "Children", "Married")
	for _, f := range fams {
		t.Row(f.Pointer, f.Husband, f.Wife, strings.Join(f.Children, " "), f.Married)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writeMarriages(w io.Writer, format string, ms []gedcom.Marriage) error {
	if format != formatText {
		return export.Encode(w, format, ms)
	}
	if len(ms) == 0 {
		_, err := fmt.Fprintln(w, StyleDim.Render("(none)"))
		return err
	}
	t := newTable("Date", "Place")
	for _, m := range ms {
		t.Row(m.Date, m.Place)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
