// Package pipeline provides the load → query → render pipeline shared by the
// CLI and the HTTP server.
//
// By centralizing this logic, both entry points parse, cache and render
// documents the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read GEDCOM source, reuse a cached parse or run the parser
//  2. Query: Resolve a pointer and follow one relationship
//  3. Render: Build a family chart and lay it out with Graphviz
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Load(ctx, pipeline.Options{Path: "family.ged"})
//	if err != nil {
//	    return err
//	}
//	q, err := pipeline.Query(ctx, res.Document, "@I1@", "ancestors")
//	svg, hit, err := runner.Render(ctx, res, pipeline.ChartOptions{Root: "@I1@"})
package pipeline

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gedtree/pkg/cache"
	"github.com/matzehuels/gedtree/pkg/gedcom"
	"github.com/matzehuels/gedtree/pkg/render"
	"github.com/matzehuels/gedtree/pkg/render/nodelink"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultFormat is the default chart output format.
	DefaultFormat = nodelink.FormatSVG

	// DefaultMode is the default chart direction.
	DefaultMode = render.ModeDescendants
)

// ValidFormats is the set of supported chart formats.
var ValidFormats = map[string]bool{
	nodelink.FormatDOT: true,
	nodelink.FormatSVG: true,
	nodelink.FormatPNG: true,
}

// ValidateFormat checks that a chart format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png)", format)
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// Options configures loading a document.
type Options struct {
	// Path is a GEDCOM file to read. Ignored when Source is set.
	Path string
	// Source is GEDCOM text supplied directly, e.g. an upload.
	Source []byte
	// Name labels Source in logs. Defaults to Path or "<input>".
	Name string

	// Strict rejects any line outside the GEDCOM grammar.
	Strict bool
	// Refresh skips the cache lookup. The fresh parse is still cached.
	Refresh bool

	// Logger overrides the runner's logger for this load.
	Logger *log.Logger
}

// Validate checks that a source is given.
func (o *Options) Validate() error {
	if o.Path == "" && o.Source == nil {
		return fmt.Errorf("path or source is required")
	}
	return nil
}

func (o *Options) name() string {
	switch {
	case o.Name != "":
		return o.Name
	case o.Path != "" && o.Source == nil:
		return o.Path
	default:
		return "<input>"
	}
}

func (o *Options) read() ([]byte, error) {
	if o.Source != nil {
		return o.Source, nil
	}
	return os.ReadFile(o.Path)
}

// ChartOptions configures [Runner.Render].
type ChartOptions struct {
	Root     string      // pointer of the chart's root individual, with or without '@'
	Mode     render.Mode // defaults to DefaultMode
	Depth    int         // generations to include; 0 means all
	Format   string      // dot, svg or png; defaults to DefaultFormat
	Detailed bool        // show pointer and lifespan in each box
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *ChartOptions) ValidateAndSetDefaults() error {
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Depth < 0 {
		return fmt.Errorf("depth must not be negative")
	}
	if _, err := render.ParseMode(string(o.Mode)); err != nil {
		return err
	}
	return ValidateFormat(o.Format)
}

func (o *ChartOptions) keyOpts(root string) cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Chart:    string(o.Mode),
		Root:     root,
		Depth:    o.Depth,
		Format:   o.Format,
		Detailed: o.Detailed,
	}
}

// =============================================================================
// Results
// =============================================================================

// Result is a loaded document.
type Result struct {
	// Document is the parsed element tree.
	Document *gedcom.Document

	// Hash is the content hash of the GEDCOM source.
	Hash string

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the document came from the cache.
	CacheHit bool
}

// Stats contains load statistics.
type Stats struct {
	Records     int
	Elements    int
	Individuals int
	Families    int
	ParseTime   time.Duration
}

func statsOf(doc *gedcom.Document, d time.Duration) Stats {
	return Stats{
		Records:     len(doc.Records()),
		Elements:    len(doc.Elements()),
		Individuals: len(doc.Individuals()),
		Families:    len(doc.FamilyRecords()),
		ParseTime:   d,
	}
}
