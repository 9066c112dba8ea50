package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gedtree/pkg/export"
	"github.com/matzehuels/gedtree/pkg/pipeline"
)

var relationHelp = map[string]string{
	pipeline.RelParents:     "Show the father and mother of an individual",
	pipeline.RelChildren:    "Show the children of every family an individual founded",
	pipeline.RelAncestors:   "Show all ancestors, father's line first",
	pipeline.RelDescendants: "Show all descendants, depth first",
	pipeline.RelSiblings:    "Show the other children of an individual's birth family",
	pipeline.RelSpouses:     "Show the partners of an individual",
	pipeline.RelMarriages:   "Show the marriage events of an individual's families",
	pipeline.RelFamilies:    "Show the birth family and founded families of an individual",
}

// queryCommand creates the query command with one subcommand per relation.
func (c *CLI) queryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Answer relationship questions about an individual",
		Long: `Answer relationship questions about an individual.

Pointers may be given with or without their '@' delimiters.`,
		Example: `  gedtree query ancestors family.ged I1
  gedtree query children family.ged @I1@ --format json
  gedtree query path family.ged I6 I9`,
	}

	for _, rel := range pipeline.Relations {
		cmd.AddCommand(c.relationCommand(rel))
	}
	cmd.AddCommand(c.pathCommand())

	return cmd
}

func (c *CLI) relationCommand(relation string) *cobra.Command {
	var (
		lf     loadFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   relation + " <file> <pointer>",
		Short: relationHelp[relation],
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutputFormat(format); err != nil {
				return err
			}
			ctx := cmd.Context()
			res, err := c.load(ctx, args[0], lf)
			if err != nil {
				return err
			}
			q, err := pipeline.Query(ctx, res.Document, args[1], relation)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			opts := export.Options{DateLayout: c.cfg.Export.DateLayout}
			if format == formatText {
				fmt.Fprintln(out, StyleTitle.Render(fmt.Sprintf("%s of %s", relation, describe(q.Individual.Pointer(), q.Individual.Name()))))
			}
			switch relation {
			case pipeline.RelParents:
				return writeParents(out, format, res.Document, q.Parents, opts)
			case pipeline.RelMarriages:
				return writeMarriages(out, format, q.Marriages)
			case pipeline.RelFamilies:
				return writeFamilies(out, format, export.Families(q.People, opts))
			default:
				return writePeople(out, format, res.Document, q.People, opts)
			}
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, yaml")

	return cmd
}

func (c *CLI) pathCommand() *cobra.Command {
	var (
		lf     loadFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "path <file> <descendant> <ancestor>",
		Short: "Show the parent chain from a descendant up to an ancestor",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutputFormat(format); err != nil {
				return err
			}
			ctx := cmd.Context()
			res, err := c.load(ctx, args[0], lf)
			if err != nil {
				return err
			}
			path, err := pipeline.Path(ctx, res.Document, args[1], args[2])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatText {
				fmt.Fprintln(out, StyleTitle.Render(fmt.Sprintf("%d generations", len(path)-1)))
			}
			return writePeople(out, format, res.Document, path, export.Options{DateLayout: c.cfg.Export.DateLayout})
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, yaml")

	return cmd
}

// describe formats an individual as "Name (@I1@)", or the pointer alone.
func describe(pointer, name string) string {
	if name == "" {
		return pointer
	}
	return fmt.Sprintf("%s (%s)", name, pointer)
}
