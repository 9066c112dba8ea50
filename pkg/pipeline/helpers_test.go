package pipeline

import (
	"os"
	"strings"

	"github.com/matzehuels/gedtree/pkg/gedcom"
)

func pointers(elems []*gedcom.Element) string {
	ps := make([]string, len(elems))
	for i, e := range elems {
		ps[i] = e.Pointer()
	}
	return strings.Join(ps, " ")
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
