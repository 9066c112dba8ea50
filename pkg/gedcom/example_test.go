package gedcom_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/gedtree/pkg/gedcom"
)

func Example() {
	src := `0 @I1@ INDI
1 NAME John /Doe/
1 FAMS @F1@
0 @I2@ INDI
1 NAME Jane /Roe/
1 FAMS @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
0 @I3@ INDI
1 NAME Jim /Doe/
1 FAMC @F1@
`
	doc, err := gedcom.Parse(strings.NewReader(src), gedcom.Options{Strict: true})
	if err != nil {
		panic(err)
	}

	i1, _ := doc.Resolve("@I1@")
	i3, _ := doc.Resolve("@I3@")

	children, _ := doc.Children(i1)
	parents, _ := doc.Parents(i3)
	path, _ := doc.FindPathToAncestor(i3, i1)

	fmt.Println("children:", children[0].Name())
	fmt.Println("parents:", parents.Father.Name(), "and", parents.Mother.Name())
	for _, e := range path {
		fmt.Println("path:", e.Pointer())
	}
	// Output:
	// children: Jim Doe
	// parents: John Doe and Jane Roe
	// path: @I3@
	// path: @I1@
}

func ExampleParseLine() {
	line, _ := gedcom.ParseLine(1, "1 NAME John /Doe/\r\n", nil, true)
	fmt.Printf("%d %s %q %q\n", line.Level, line.Tag, line.Value, line.Terminator)
	// Output: 1 NAME "John /Doe/" "\r\n"
}

func ExampleParseDate() {
	d, _ := gedcom.ParseDate("ABT 12 MAR 1900")
	fmt.Println(d.Qualifier, d)
	// Output: ABT 1900-03-12
}
