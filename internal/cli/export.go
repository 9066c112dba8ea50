package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gedtree/pkg/export"
	"github.com/matzehuels/gedtree/pkg/pipeline"
)

const formatCSV = "csv"

// exportCommand creates the export command, which writes one summary row per
// individual.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		lf     loadFlags
		output string
		format string
		layout string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export all individuals as CSV, JSON or YAML",
		Long: `Export one row per individual with name, gender, occupation, birth and
death dates, children and parents. Complete dates are reformatted with the
configured layout (Go time layout, default 2006-01-02); partial or
qualified dates are kept as written.`,
		Example: `  gedtree export family.ged -o family.csv
  gedtree export family.ged --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatCSV, formatJSON, formatYAML:
			default:
				return fmt.Errorf("invalid format: %s (must be 'csv', 'json' or 'yaml')", format)
			}

			res, err := c.load(cmd.Context(), args[0], lf)
			if err != nil {
				return err
			}

			opts := export.Options{DateLayout: c.cfg.Export.DateLayout}
			if layout != "" {
				opts.DateLayout = layout
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := writeExport(w, format, res, opts); err != nil {
				return err
			}
			if output != "" && output != "-" {
				printSuccess("Exported %d individuals", res.Stats.Individuals)
				printFile(output)
			}
			return nil
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatCSV, "output format: csv, json, yaml")
	cmd.Flags().StringVar(&layout, "date-layout", "", "Go time layout for complete dates")

	return cmd
}

func writeExport(w io.Writer, format string, res *pipeline.Result, opts export.Options) error {
	if format == formatCSV {
		return export.WriteCSV(w, res.Document, opts)
	}
	people, err := export.SummarizeAll(res.Document, opts)
	if err != nil {
		return err
	}
	return export.Encode(w, format, people)
}
