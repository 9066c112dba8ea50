// Package render turns relationship queries into family charts.
//
// # Overview
//
// A [Chart] is the graph of people reached from one individual, either
// downwards through children ([ModeDescendants]) or upwards through parents
// ([ModeAncestors]). Each person appears once even when reachable along
// several lines, so pedigree collapse shows up as a node with several
// incoming links rather than duplicated subtrees.
//
//	chart, err := render.Build(doc, root, render.Options{Mode: render.ModeAncestors, MaxDepth: 4})
//	dot := nodelink.ToDOT(chart, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage writes charts as Graphviz DOT and renders them
// to SVG or PNG in-process.
package render
