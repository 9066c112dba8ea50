package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gedtree/pkg/export"
)

// browseCommand creates the browse command, an interactive terminal view of
// a family file.
func (c *CLI) browseCommand() *cobra.Command {
	var lf loadFlags

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Explore a GEDCOM file interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res, err := c.load(ctx, args[0], lf)
			if err != nil {
				return err
			}
			if res.Stats.Individuals == 0 {
				printWarning("%s contains no individuals", args[0])
				return nil
			}

			model := NewBrowseModel(res.Document, export.Options{DateLayout: c.cfg.Export.DateLayout})
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			return nil
		},
	}

	lf.register(cmd)

	return cmd
}
