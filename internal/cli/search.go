package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gedtree/pkg/export"
	"github.com/matzehuels/gedtree/pkg/search"
)

// searchHit is the structured form of a search result.
type searchHit struct {
	Pointer  string `json:"pointer" yaml:"pointer"`
	Name     string `json:"name" yaml:"name"`
	Born     string `json:"born,omitempty" yaml:"born,omitempty"`
	Distance int    `json:"distance" yaml:"distance"`
}

// searchCommand creates the search command for finding individuals by name.
func (c *CLI) searchCommand() *cobra.Command {
	var (
		lf     loadFlags
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "search <file> <name...>",
		Short: "Find individuals by approximate name",
		Long: `Find individuals whose name contains the query's characters in order,
ignoring case. Closer names are listed first. A pointer such as @I1@ finds
that individual directly.`,
		Example: `  gedtree search family.ged john doe
  gedtree search family.ged "/Doe/" --limit 5 --format json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutputFormat(format); err != nil {
				return err
			}
			ctx := cmd.Context()
			res, err := c.load(ctx, args[0], lf)
			if err != nil {
				return err
			}

			query := strings.Join(args[1:], " ")
			matches := search.Individuals(res.Document, query, limit)
			opts := export.Options{DateLayout: c.cfg.Export.DateLayout}

			hits := make([]searchHit, len(matches))
			for i, m := range matches {
				hits[i] = searchHit{
					Pointer:  m.Individual.Pointer(),
					Name:     m.Name,
					Born:     export.FormatEventDate(m.Individual.Birth(), opts),
					Distance: m.Distance,
				}
			}

			out := cmd.OutOrStdout()
			if format != formatText {
				return export.Encode(out, format, hits)
			}
			if len(hits) == 0 {
				_, err := fmt.Fprintln(out, StyleDim.Render(fmt.Sprintf("no individuals match %q", query)))
				return err
			}
			t := newTable("Pointer", "Name", "Born", "Distance")
			for _, h := range hits {
				t.Row(h.Pointer, h.Name, h.Born, strconv.Itoa(h.Distance))
			}
			_, err = fmt.Fprintln(out, t.Render())
			return err
		},
	}

	lf.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of results (0 for all)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, yaml")

	return cmd
}
