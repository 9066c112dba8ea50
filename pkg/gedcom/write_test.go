package gedcom

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	doc := mustParse(t, familyGED, true)
	if got := doc.String(); got != familyGED {
		t.Fatalf("String() differs from input:\n%s", got)
	}

	again := mustParse(t, doc.String(), true)
	a, b := doc.Elements(), again.Elements()
	if len(a) != len(b) {
		t.Fatalf("reparse has %d elements, want %d", len(b), len(a))
	}
	for i := range a {
		if a[i].Level() != b[i].Level() || a[i].Pointer() != b[i].Pointer() ||
			a[i].Tag() != b[i].Tag() || a[i].Value() != b[i].Value() {
			t.Errorf("element %d: %q != %q", i, a[i].GEDCOM(false), b[i].GEDCOM(false))
		}
	}
}

func TestRoundTripRecovered(t *testing.T) {
	doc := mustParse(t, "0 @N1@ NOTE a\nb\n0 TRLR", false)
	want := "0 @N1@ NOTE a\n1 CONC b\n0 TRLR\n"
	if got := doc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	// The normalized text is valid strict input.
	mustParse(t, doc.String(), true)
}

func TestElementGEDCOM(t *testing.T) {
	doc := mustParse(t, "0 @I1@ INDI\n1 BIRT\n2 DATE 1900\n", true)
	i1 := mustResolve(t, doc, "@I1@")
	birt := i1.Birth()

	tests := []struct {
		name      string
		elem      *Element
		recursive bool
		want      string
	}{
		{"single line", i1, false, "0 @I1@ INDI\n"},
		{"subtree", birt, true, "1 BIRT\n2 DATE 1900\n"},
		{"root alone", doc.Root(), false, ""},
		{"root recursive", doc.Root(), true, "0 @I1@ INDI\n1 BIRT\n2 DATE 1900\n"},
		{"detached", NewElement(3, "", TagNote, "x", "\r\n"), false, "3 NOTE x\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.elem.GEDCOM(tt.recursive); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteTo(t *testing.T) {
	doc := mustParse(t, familyGED, true)
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(familyGED)) || buf.String() != familyGED {
		t.Errorf("WriteTo wrote %d bytes, want %d", n, len(familyGED))
	}
}
