package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/matzehuels/gedtree/pkg/gedcom"
)

const family = `0 @I1@ INDI
1 NAME John /Doe/
1 SEX M
1 OCCU Farmer, Miller
1 BIRT
2 DATE 12 MAR 1900
1 DEAT
2 DATE ABT 1970
1 FAMS @F1@
0 @I2@ INDI
1 NAME Jane /Roe/
1 SEX F
1 FAMS @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 CHIL @I4@
0 @I3@ INDI
1 NAME Jim /Doe/
1 FAMC @F1@
0 @I4@ INDI
1 NAME Ann /Doe/
1 FAMC @F1@
`

func parse(t *testing.T) *gedcom.Document {
	t.Helper()
	doc, err := gedcom.NewParser(gedcom.Options{Strict: true}).ParseString(family)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, parse(t), Options{}); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want header + 4", len(rows))
	}
	if strings.Join(rows[0], ",") != "Name,Gender,Arbeit,Geburt,Tod,Kinder,Eltern (V,M)" {
		t.Errorf("header = %v", rows[0])
	}

	tests := []struct {
		row  int
		want []string
	}{
		{1, []string{"John Doe", "M", "Farmer, Miller", "1900-03-12", "ABT 1970", "Jim Doe; Ann Doe", ""}},
		{2, []string{"Jane Roe", "F", "", "", "", "Jim Doe; Ann Doe", ""}},
		{3, []string{"Jim Doe", "", "", "", "", "", "John Doe; Jane Roe"}},
	}
	for _, tt := range tests {
		if got := strings.Join(rows[tt.row], "|"); got != strings.Join(tt.want, "|") {
			t.Errorf("row %d = %q, want %q", tt.row, got, strings.Join(tt.want, "|"))
		}
	}
}

func TestWriteCSVQuoting(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, parse(t), Options{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"Farmer, Miller"`) {
		t.Error("fields with commas should be quoted")
	}
	if strings.Contains(buf.String(), `"John Doe"`) {
		t.Error("plain fields should not be quoted")
	}
}

func TestFormatEventDate(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		layout string
		want   string
	}{
		{"complete", "0 @I1@ INDI\n1 BIRT\n2 DATE 2 JAN 1900\n", "", "1900-01-02"},
		{"custom layout", "0 @I1@ INDI\n1 BIRT\n2 DATE 2 JAN 1900\n", "02.01.2006", "02.01.1900"},
		{"year only", "0 @I1@ INDI\n1 BIRT\n2 DATE 1900\n", "", "1900"},
		{"no date", "0 @I1@ INDI\n1 BIRT\n2 PLAC Here\n", "", ""},
		{"no event", "0 @I1@ INDI\n", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := gedcom.NewParser(gedcom.Options{}).ParseString(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			ind, _ := doc.Resolve("@I1@")
			if got := FormatEventDate(ind.Birth(), Options{DateLayout: tt.layout}); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	doc := parse(t)
	people, err := SummarizeAll(doc, Options{})
	if err != nil {
		t.Fatal(err)
	}

	var js bytes.Buffer
	if err := Encode(&js, FormatJSON, people[:1]); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(js.String(), `"pointer": "@I1@"`) || !strings.Contains(js.String(), `"children": [`) {
		t.Errorf("unexpected JSON:\n%s", js.String())
	}

	var ym bytes.Buffer
	if err := Encode(&ym, FormatYAML, people[2]); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"@I3@", "name: Jim Doe", "parents:", "- John Doe"} {
		if !strings.Contains(ym.String(), want) {
			t.Errorf("YAML missing %q:\n%s", want, ym.String())
		}
	}
	if strings.Contains(ym.String(), "gender") {
		t.Error("empty fields should be omitted")
	}

	if err := Encode(&ym, "xml", people); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestBrief(t *testing.T) {
	doc := parse(t)
	got := Brief(doc.Individuals()[:2])
	if len(got) != 2 || got[1].Pointer != "@I2@" || got[1].Name != "Jane Roe" || got[1].Children != nil {
		t.Errorf("Brief = %+v", got)
	}
}

func TestBriefParents(t *testing.T) {
	doc := parse(t)
	father, _ := doc.Resolve("@I1@")
	mother, _ := doc.Resolve("@I2@")

	tests := []struct {
		name string
		pair gedcom.ParentPair
		want string
	}{
		{"both", gedcom.ParentPair{Father: father, Mother: mother}, `"father": {`},
		{"mother only", gedcom.ParentPair{Mother: mother}, `"father": null`},
		{"father only", gedcom.ParentPair{Father: father}, `"mother": null`},
		{"none", gedcom.ParentPair{}, `"mother": null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteJSON(&buf, BriefParents(tt.pair)); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("missing %q in %s", tt.want, buf.String())
			}
		})
	}

	got := BriefParents(gedcom.ParentPair{Mother: mother})
	if got.Father != nil || got.Mother == nil || got.Mother.Name != "Jane Roe" {
		t.Errorf("BriefParents = %+v", got)
	}
}

func TestFamilies(t *testing.T) {
	doc := parse(t)
	got := Families(doc.FamilyRecords(), Options{})
	if len(got) != 1 {
		t.Fatalf("got %d families", len(got))
	}
	f := got[0]
	if f.Pointer != "@F1@" || f.Husband != "@I1@" || f.Wife != "@I2@" || f.Married != "" {
		t.Errorf("family = %+v", f)
	}
	if strings.Join(f.Children, " ") != "@I3@ @I4@" {
		t.Errorf("children = %v", f.Children)
	}
}
