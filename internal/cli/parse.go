package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gio "github.com/matzehuels/gedtree/pkg/io"
)

// parseCommand creates the parse command, which reads a GEDCOM file, prints
// a summary and optionally writes the element tree as JSON.
func (c *CLI) parseCommand() *cobra.Command {
	var (
		lf     loadFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a GEDCOM file and summarize it",
		Long: `Parse a GEDCOM 5.5 file and print how many records it holds.

Lenient parsing (the default) recovers a missing final newline and raw line
breaks inside text values. Use --strict to reject both. With -o the parsed
element tree is written as JSON; use "-o -" for stdout.`,
		Example: `  gedtree parse family.ged
  gedtree parse family.ged --strict -o family.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			res, err := c.load(ctx, args[0], lf)
			if err != nil {
				return err
			}

			if output == "-" {
				return gio.WriteJSON(res.Document, cmd.OutOrStdout())
			}

			prog.done(fmt.Sprintf("Parsed %s", args[0]))
			printSuccess("%s", args[0])
			printStats(res.Stats.Individuals, res.Stats.Families, res.Stats.Records, res.CacheHit)

			if output != "" {
				if err := gio.ExportJSON(res.Document, output); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printFile(output)
			}
			printNextStep("Explore it", "gedtree browse "+args[0])
			return nil
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the element tree as JSON to this file")

	return cmd
}
