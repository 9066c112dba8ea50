package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gedtree/pkg/render"
)

// Output formats understood by [Render].
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the pointer and lifespan under each name.
	// When false, only the name is shown.
	Detailed bool
}

// ToDOT converts a chart to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Ancestor charts are drawn bottom-up so the root sits at the bottom and
// older generations above it.
func ToDOT(c *render.Chart, opts Options) string {
	rankdir := "TB"
	if c.Mode == render.ModeAncestors {
		rankdir = "BT"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range c.People {
		label := fmtLabel(p, opts.Detailed)
		attrs := fmtAttrs(p, label, p.ID == c.Root)
		fmt.Fprintf(&buf, "  %q [%s];\n", p.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, l := range c.Links {
		if c.Mode == render.ModeAncestors {
			fmt.Fprintf(&buf, "  %q -> %q [dir=back];\n", l.Child, l.Parent)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", l.Parent, l.Child)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(p render.Person, detailed bool) string {
	name := p.Name
	if name == "" {
		name = p.ID
	}
	if !detailed {
		return name
	}

	parts := []string{name, p.ID}
	if p.Lifespan != "" {
		parts = append(parts, p.Lifespan)
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(p render.Person, label string, root bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch strings.ToUpper(p.Gender) {
	case "M":
		attrs = append(attrs, "fillcolor=lightblue")
	case "F":
		attrs = append(attrs, "fillcolor=pink")
	}
	if root {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

// Render lays out dot and returns it in the requested format. FormatDOT
// returns the input unchanged.
func Render(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return RenderSVG(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported format %q (want dot, svg or png)", format)
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := layout(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to a PNG image using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return layout(ctx, dot, graphviz.PNG)
}

func layout(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz svg tag, whose viewBox is offset
// and whose size is in points, with one that scales cleanly in a browser.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
