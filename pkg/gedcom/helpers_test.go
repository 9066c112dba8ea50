package gedcom

import (
	"strings"
	"testing"
)

// familyGED describes four generations:
//
//	I9 Old + I10 Olga   -> F4: I1
//	I1 John + I2 Jane   -> F1: I3, I4 (and a dangling @I404@)
//	I7 Bob + I8 Sue     -> F3: I5
//	I3 Jim + I5 Mary    -> F2: I6
const familyGED = `0 HEAD
1 CHAR UTF-8
0 @I1@ INDI
1 NAME John /Doe/
1 SEX M
1 OCCU Farmer
1 BIRT
2 DATE 12 MAR 1900
2 PLAC Springfield
1 FAMC @F4@
1 FAMS @F1@
0 @I2@ INDI
1 NAME Jane /Roe/
1 SEX F
1 FAMS @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 CHIL @I404@
1 CHIL @I4@
1 MARR
2 DATE 1 JUN 1925
2 PLAC Shelbyville
0 @I3@ INDI
1 NAME Jim /Doe/
1 FAMC @F1@
1 FAMS @F2@
0 @I4@ INDI
1 NAME Ann /Doe/
1 FAMC @F1@
1 FAMS @F99@
0 @I5@ INDI
1 NAME Mary /Poe/
1 FAMC @F3@
1 FAMS @F2@
0 @F2@ FAM
1 HUSB @I3@
1 WIFE @I5@
1 CHIL @I6@
1 MARR
2 DATE 1950
0 @I6@ INDI
1 NAME Tom /Doe/
1 FAMC @F2@
0 @F3@ FAM
1 HUSB @I7@
1 WIFE @I8@
1 CHIL @I5@
0 @I7@ INDI
1 NAME Bob /Poe/
1 FAMS @F3@
0 @I8@ INDI
1 NAME Sue /Sims/
1 FAMS @F3@
0 @F4@ FAM
1 HUSB @I9@
1 WIFE @I10@
1 CHIL @I1@
0 @I9@ INDI
1 NAME Old /Doe/
1 FAMS @F4@
0 @I10@ INDI
1 NAME Olga /Doe/
1 FAMS @F4@
0 TRLR
`

func mustParse(t *testing.T, src string, strict bool) *Document {
	t.Helper()
	doc, err := NewParser(Options{Strict: strict}).ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func mustResolve(t *testing.T, doc *Document, ptr string) *Element {
	t.Helper()
	e, ok := doc.Resolve(ptr)
	if !ok {
		t.Fatalf("Resolve(%q) not found", ptr)
	}
	return e
}

func pointers(elems []*Element) string {
	ps := make([]string, len(elems))
	for i, e := range elems {
		if e == nil {
			ps[i] = "<nil>"
			continue
		}
		ps[i] = e.Pointer()
	}
	return strings.Join(ps, " ")
}
