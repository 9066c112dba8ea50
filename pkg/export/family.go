package export

import "github.com/matzehuels/gedtree/pkg/gedcom"

// Family is the flat summary of a FAM record. Partners and children are
// given by pointer.
type Family struct {
	Pointer  string   `json:"pointer" yaml:"pointer"`
	Husband  string   `json:"husband,omitempty" yaml:"husband,omitempty"`
	Wife     string   `json:"wife,omitempty" yaml:"wife,omitempty"`
	Children []string `json:"children,omitempty" yaml:"children,omitempty"`
	Married  string   `json:"married,omitempty" yaml:"married,omitempty"`
}

// Families summarizes FAM records.
func Families(fams []*gedcom.Element, opts Options) []Family {
	out := make([]Family, 0, len(fams))
	for _, f := range fams {
		out = append(out, Family{
			Pointer:  f.Pointer(),
			Husband:  f.HusbandPointer(),
			Wife:     f.WifePointer(),
			Children: f.ChildPointers(),
			Married:  FormatEventDate(f.MarriageEvent(), opts),
		})
	}
	return out
}
