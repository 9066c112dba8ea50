// Package nodelink renders family charts as node-link diagrams.
//
// [ToDOT] writes a [render.Chart] as Graphviz DOT with one box per person
// and an arrow from each parent to each child. Boxes are tinted by the
// person's SEX value. [RenderSVG] and [RenderPNG] lay the graph out with
// the WebAssembly build of Graphviz shipped by go-graphviz, so no system
// installation is needed.
//
//	dot := nodelink.ToDOT(chart, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
package nodelink
