package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gedtree/pkg/pipeline"
)

// showCommand creates the show command, which re-emits a parsed file (or one
// record of it) as GEDCOM text.
func (c *CLI) showCommand() *cobra.Command {
	var (
		lf      loadFlags
		pointer string
	)

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a parsed file as GEDCOM",
		Long: `Print a parsed file as GEDCOM text. Levels are recomputed from the tree,
so lines recovered by the lenient parser appear in their repaired form.`,
		Example: `  gedtree show family.ged
  gedtree show family.ged --pointer I1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.load(cmd.Context(), args[0], lf)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if pointer == "" {
				_, err := res.Document.WriteTo(out)
				return err
			}
			e, err := pipeline.Lookup(res.Document, pointer)
			if err != nil {
				return err
			}
			_, err = io.WriteString(out, e.GEDCOM(true))
			if err != nil {
				return fmt.Errorf("write: %w", err)
			}
			return nil
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVarP(&pointer, "pointer", "p", "", "print only the record with this pointer")

	return cmd
}
