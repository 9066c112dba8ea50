// Package gedcom parses GEDCOM 5.5 genealogy files into an element tree and
// answers relationship queries over it.
//
// # Parsing
//
// Every GEDCOM line has the shape
//
//	LEVEL [@POINTER@] TAG [VALUE]
//
// and the level numbers define the tree: a line at level n belongs to the
// nearest preceding line at level n-1. [Parser] reads lines in order and
// keeps a single cursor on the last element added; each new element is
// attached by walking up from the cursor. A line more than one level deeper
// than its predecessor is a [FormatViolationError] in every mode.
//
// Strict parsing rejects any line outside the grammar. Lenient parsing
// (Options.Strict == false) recovers the two defects real exports produce
// most: a last line without a newline, and raw line breaks inside text values,
// where the orphaned text is turned into a CONC continuation.
//
//	doc, err := gedcom.ParseFile("royal92.ged", gedcom.Options{Strict: false})
//	if err != nil {
//	    return err
//	}
//	for _, ind := range doc.Individuals() {
//	    fmt.Println(ind.Pointer(), ind.Name())
//	}
//
// # Pointers
//
// Top-level records may declare a pointer (@I1@) that other records refer to.
// [Document.Resolve] looks pointers up through a lazily built index. The index
// and the flat element list are tied to a generation counter that every
// element mutation bumps, so they are rebuilt on the next read after a change.
// A pointer that does not resolve is not an error.
//
// # Relationships
//
// Individuals (INDI) link to families (FAM) through FAMC (as a child) and
// FAMS (as a spouse); families link back through HUSB, WIFE and CHIL. The
// query methods on [Document] - Parents, Children, Ancestors, Descendants,
// Siblings, Spouses, Marriages and FindPathToAncestor - follow these links
// and skip dangling references. They return a [*WrongKindError] when handed
// anything other than an individual.
//
// Traversals run on an explicit stack. A branch that would revisit an
// individual already on the current path is cut, so files with cyclic family
// links terminate; an individual reachable along different branches
// (pedigree collapse) is still reported once per branch.
package gedcom
