package render

import (
	"errors"
	"testing"

	"github.com/matzehuels/gedtree/pkg/gedcom"
)

// Cousins I5 and I6 marry; I1 and I2 are great-grandparents of I7 twice over.
const collapsed = `0 @I1@ INDI
1 NAME Adam /Old/
1 SEX M
1 BIRT
2 DATE 1850
1 DEAT
2 DATE 12 JAN 1920
1 FAMS @F1@
0 @I2@ INDI
1 NAME Eva /Old/
1 SEX F
1 FAMS @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 CHIL @I4@
0 @I3@ INDI
1 NAME Carl /Old/
1 FAMC @F1@
1 FAMS @F2@
0 @I4@ INDI
1 NAME Dora /Old/
1 FAMC @F1@
1 FAMS @F3@
0 @F2@ FAM
1 HUSB @I3@
1 CHIL @I5@
0 @F3@ FAM
1 WIFE @I4@
1 CHIL @I6@
0 @I5@ INDI
1 NAME Emil /Old/
1 FAMC @F2@
1 FAMS @F4@
0 @I6@ INDI
1 NAME Frida /New/
1 FAMC @F3@
1 FAMS @F4@
0 @F4@ FAM
1 HUSB @I5@
1 WIFE @I6@
1 CHIL @I7@
0 @I7@ INDI
1 NAME Gustav /Old/
1 FAMC @F4@
`

func parse(t *testing.T) *gedcom.Document {
	t.Helper()
	doc, err := gedcom.NewParser(gedcom.Options{Strict: true}).ParseString(collapsed)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func ids(c *Chart) []string {
	out := make([]string, len(c.People))
	for i, p := range c.People {
		out[i] = p.ID
	}
	return out
}

func TestBuildAncestors(t *testing.T) {
	doc := parse(t)
	root, _ := doc.Resolve("@I7@")

	c, err := Build(doc, root, Options{Mode: ModeAncestors})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"@I7@", "@I5@", "@I6@", "@I3@", "@I4@", "@I1@", "@I2@"}
	if got := ids(c); !equal(got, want) {
		t.Errorf("people = %v, want %v", got, want)
	}
	// I1 and I2 each parent both I3 and I4.
	if len(c.Links) != 8 {
		t.Errorf("got %d links, want 8: %v", len(c.Links), c.Links)
	}
	if c.Links[0] != (Link{Parent: "@I5@", Child: "@I7@"}) {
		t.Errorf("first link = %+v", c.Links[0])
	}
	if c.People[5].Generation != 3 || c.People[5].Lifespan != "1850-1920" {
		t.Errorf("I1 = %+v", c.People[5])
	}
}

func TestBuildDescendants(t *testing.T) {
	doc := parse(t)
	root, _ := doc.Resolve("@I1@")

	c, err := Build(doc, root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if c.Mode != ModeDescendants || c.Root != "@I1@" {
		t.Errorf("chart header = %s %s", c.Mode, c.Root)
	}
	want := []string{"@I1@", "@I3@", "@I4@", "@I5@", "@I6@", "@I7@"}
	if got := ids(c); !equal(got, want) {
		t.Errorf("people = %v, want %v", got, want)
	}
	// I7 is reached through both I5 and I6.
	n := 0
	for _, l := range c.Links {
		if l.Child == "@I7@" {
			n++
		}
	}
	if n != 2 {
		t.Errorf("I7 has %d incoming links, want 2", n)
	}
}

func TestBuildMaxDepth(t *testing.T) {
	doc := parse(t)
	root, _ := doc.Resolve("@I1@")

	c, err := Build(doc, root, Options{Mode: ModeDescendants, MaxDepth: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(c); !equal(got, []string{"@I1@", "@I3@", "@I4@"}) {
		t.Errorf("people = %v", got)
	}
}

func TestBuildErrors(t *testing.T) {
	doc := parse(t)
	fam, _ := doc.Resolve("@F1@")
	ind, _ := doc.Resolve("@I1@")

	var wk *gedcom.WrongKindError
	if _, err := Build(doc, fam, Options{}); !errors.As(err, &wk) {
		t.Errorf("expected WrongKindError, got %v", err)
	}
	if _, err := Build(doc, ind, Options{Mode: "sideways"}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("ancestors"); err != nil || m != ModeAncestors {
		t.Errorf("ParseMode(ancestors) = %q, %v", m, err)
	}
	if _, err := ParseMode("tower"); err == nil {
		t.Error("expected error")
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
