package export

import (
	"github.com/matzehuels/gedtree/pkg/gedcom"
)

// DefaultDateLayout formats complete dates as YYYY-MM-DD.
const DefaultDateLayout = "2006-01-02"

// Options configures date formatting for all exporters.
type Options struct {
	// DateLayout is a time.Format layout for complete dates.
	// Defaults to [DefaultDateLayout].
	DateLayout string
}

func (o Options) layout() string {
	if o.DateLayout == "" {
		return DefaultDateLayout
	}
	return o.DateLayout
}

// Person is the flat summary of an individual used by all exporters.
type Person struct {
	Pointer    string   `json:"pointer" yaml:"pointer"`
	Name       string   `json:"name" yaml:"name"`
	Gender     string   `json:"gender,omitempty" yaml:"gender,omitempty"`
	Occupation string   `json:"occupation,omitempty" yaml:"occupation,omitempty"`
	Birth      string   `json:"birth,omitempty" yaml:"birth,omitempty"`
	Death      string   `json:"death,omitempty" yaml:"death,omitempty"`
	Children   []string `json:"children,omitempty" yaml:"children,omitempty"`
	Parents    []string `json:"parents,omitempty" yaml:"parents,omitempty"`
}

// Summarize builds the [Person] for an individual. Children and parents are
// listed by name.
func Summarize(doc *gedcom.Document, ind *gedcom.Element, opts Options) (Person, error) {
	p := Person{
		Pointer:    ind.Pointer(),
		Name:       ind.Name(),
		Gender:     ind.Gender(),
		Occupation: ind.Occupation(),
		Birth:      FormatEventDate(ind.Birth(), opts),
		Death:      FormatEventDate(ind.Death(), opts),
	}

	children, err := doc.Children(ind)
	if err != nil {
		return Person{}, err
	}
	for _, c := range children {
		p.Children = append(p.Children, c.Name())
	}

	parents, err := doc.Parents(ind)
	if err != nil {
		return Person{}, err
	}
	for _, par := range parents.Present() {
		p.Parents = append(p.Parents, par.Name())
	}
	return p, nil
}

// SummarizeAll summarizes all individuals of the document in source order.
func SummarizeAll(doc *gedcom.Document, opts Options) ([]Person, error) {
	inds := doc.Individuals()
	out := make([]Person, 0, len(inds))
	for _, ind := range inds {
		p, err := Summarize(doc, ind, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Brief lists elements as pointer/name pairs, for query results.
func Brief(elems []*gedcom.Element) []Person {
	out := make([]Person, 0, len(elems))
	for _, e := range elems {
		out = append(out, Person{Pointer: e.Pointer(), Name: e.Name()})
	}
	return out
}

// Parents holds the father and mother of an individual. A parent the family
// does not name stays nil and encodes as null.
type Parents struct {
	Father *Person `json:"father" yaml:"father"`
	Mother *Person `json:"mother" yaml:"mother"`
}

// BriefParents is [Brief] for a parent pair.
func BriefParents(pair gedcom.ParentPair) Parents {
	brief := func(e *gedcom.Element) *Person {
		if e == nil {
			return nil
		}
		return &Person{Pointer: e.Pointer(), Name: e.Name()}
	}
	return Parents{Father: brief(pair.Father), Mother: brief(pair.Mother)}
}

// FormatEventDate formats the DATE of an event such as BIRT. Complete dates
// use the configured layout; anything else is returned as written. A missing
// event or date gives "".
func FormatEventDate(event *gedcom.Element, opts Options) string {
	if event == nil {
		return ""
	}
	raw := event.EventDate()
	if raw == "" {
		return ""
	}
	d, ok := gedcom.ParseDate(raw)
	if !ok || !d.Complete() {
		return raw
	}
	return d.Time().Format(opts.layout())
}
