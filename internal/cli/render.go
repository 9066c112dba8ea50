package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gedtree/pkg/pipeline"
	"github.com/matzehuels/gedtree/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path, "-" for stdout
	mode     string // chart direction: "descendants" or "ancestors"
	depth    int    // generations to include, 0 for all
	format   string // "dot", "svg" or "png"
	detailed bool   // show pointer and lifespan in each box
}

// renderCommand creates the render command for drawing family charts.
func (c *CLI) renderCommand() *cobra.Command {
	var lf loadFlags
	opts := renderOpts{
		mode:   string(pipeline.DefaultMode),
		format: pipeline.DefaultFormat,
	}

	cmd := &cobra.Command{
		Use:   "render <file> <pointer>",
		Short: "Draw a descendant or ancestor chart",
		Long: `Draw a family chart rooted at one individual. Descendant charts follow
children downwards; ancestor charts follow parents upwards. Each person is
drawn once even when reachable along several lines.`,
		Example: `  gedtree render family.ged I1
  gedtree render family.ged I6 --mode ancestors --depth 3 -o pedigree.png --format png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], args[1], lf, &opts)
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <pointer>-<mode>.<format>, - for stdout)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", opts.mode, "chart direction: descendants, ancestors")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 0, "generations to include (0 for all)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show pointer and lifespan in each box")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, file, pointer string, lf loadFlags, opts *renderOpts) error {
	ctx := cmd.Context()
	chart := pipeline.ChartOptions{
		Root:     pointer,
		Mode:     render.Mode(opts.mode),
		Depth:    opts.depth,
		Format:   opts.format,
		Detailed: opts.detailed,
	}
	if err := chart.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, lf.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := c.loadWith(ctx, runner, file, lf)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, os.Stderr, "Rendering chart...")
	spinner.Start()
	out, hit, err := runner.Render(ctx, res, chart)
	spinner.Stop()
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	path := opts.output
	if path == "" {
		path = defaultChartName(pointer, chart)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	status := iconFresh
	if hit {
		status = iconCached
	}
	printSuccess("Rendered %s chart (%s)", chart.Mode, status)
	printFile(path)
	return nil
}

// defaultChartName builds "I1-descendants.svg" from the chart options.
func defaultChartName(pointer string, chart pipeline.ChartOptions) string {
	return fmt.Sprintf("%s-%s.%s", strings.Trim(pointer, "@"), chart.Mode, chart.Format)
}
