// Package pkg provides the core libraries for gedtree genealogy processing.
//
// # Overview
//
// gedtree reads GEDCOM 5.5 files, the plain-text exchange format written by
// genealogy programs, and answers questions about the families they describe.
// The pkg directory is organized into four main areas:
//
//  1. [gedcom] - Domain logic (line grammar, element tree, pointer index, queries)
//  2. [export], [search], [render] - Consumers of a parsed document
//  3. [cache], [store], [config] - Infrastructure
//  4. [pipeline] - Orchestration (load → query → render)
//
// # Architecture
//
// The typical data flow through gedtree:
//
//	GEDCOM file or upload
//	         ↓
//	    [gedcom] package (parse lines, build tree, index pointers)
//	         ↓
//	    [pipeline] package (cache parsed documents, resolve pointers)
//	         ↓
//	    queries / [export] / [search] / [render]
//	         ↓
//	    tables, CSV/JSON/YAML, DOT/SVG/PNG charts
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/gedtree/pkg/gedcom"
//	    "github.com/matzehuels/gedtree/pkg/render"
//	    "github.com/matzehuels/gedtree/pkg/render/nodelink"
//	)
//
//	// 1. Parse leniently
//	doc, _ := gedcom.ParseFile("family.ged", gedcom.Options{})
//
//	// 2. Ask a question
//	ind, _ := doc.Resolve("@I1@")
//	ancestors, _ := doc.Ancestors(ind)
//
//	// 3. Chart the descendants
//	chart, _ := render.Build(doc, ind, render.Options{Mode: render.ModeDescendants})
//	svg, _ := nodelink.RenderSVG(ctx, nodelink.ToDOT(chart, nodelink.Options{}))
//
// # Main Packages
//
// ## Core Domain Logic
//
// [gedcom] - The parser and document model. Strict parsing rejects any line
// outside the grammar; lenient parsing repairs a missing final newline and raw
// line breaks inside values. Documents answer Parents, Children, Ancestors,
// Descendants, Siblings, Spouses, Marriages and FindPathToAncestor.
//
// ## Consumers
//
// [export] - Person summaries with configurable date layout, written as CSV,
// JSON or YAML.
//
// [search] - Fuzzy name search ranked by edit distance.
//
// [render] - Descendant and ancestor charts. [render/nodelink] draws them
// with Graphviz.
//
// [io] - JSON import and export of the raw element tree.
//
// ## Infrastructure
//
// [cache] - Content-addressed caching of parsed documents and rendered charts
// with file, Redis and null backends.
//
// [store] - Persistence of uploaded files for the HTTP API: memory, SQLite and
// MongoDB.
//
// [config] - The TOML configuration file.
//
// [errors] - Structured error codes shared by the CLI and the API.
//
// [observability] - Hooks for parse, query, render and HTTP events.
//
// [pipeline] - Load, query and render, used by both the CLI and the API so
// that every entry point behaves the same.
//
// # Common Workflows
//
// Load through the cache and query by pointer:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, _ := runner.Load(ctx, pipeline.Options{Path: "family.ged"})
//	q, _ := pipeline.Query(ctx, res.Document, "I1", pipeline.RelChildren)
//
// Export everyone as CSV:
//
//	export.WriteCSV(os.Stdout, res.Document, export.Options{DateLayout: "02.01.2006"})
//
// Find a person by name:
//
//	if m, ok := search.Closest(res.Document, "karl berg"); ok {
//	    fmt.Println(m.Individual.Pointer())
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/gedcom/...             # Specific package
//	go test -run Example                 # Examples only
//
// [gedcom]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/gedcom
// [export]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/export
// [search]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/search
// [render]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/observability
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gedtree/pkg/pipeline
package pkg
