package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gedtree/pkg/cache"
	gerrors "github.com/matzehuels/gedtree/pkg/errors"
	"github.com/matzehuels/gedtree/pkg/gedcom"
	gio "github.com/matzehuels/gedtree/pkg/io"
	"github.com/matzehuels/gedtree/pkg/observability"
	"github.com/matzehuels/gedtree/pkg/render"
	"github.com/matzehuels/gedtree/pkg/render/nodelink"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store documents. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// DocumentTTL is the lifetime of cached parses.
	DocumentTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:       c,
		Keyer:       keyer,
		Logger:      logger,
		DocumentTTL: cache.TTLDocument,
	}
}

// Load parses a GEDCOM source, consulting the cache first unless
// opts.Refresh is set. Parsed documents are stored in the cache in the
// JSON tree format of the io package.
func (r *Runner) Load(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "invalid options")
	}
	logger := r.logger(opts.Logger)
	name := opts.name()

	src, err := opts.read()
	if err != nil {
		return nil, gerrors.Wrap(gerrors.Classify(err), err, "read %s", name)
	}

	hash := cache.Hash(src)
	key := r.Keyer.DocumentKey(hash, cache.DocumentKeyOpts{Strict: opts.Strict})

	if !opts.Refresh {
		if doc, ok := r.cached(ctx, key, logger); ok {
			logger.Debug("loaded document from cache", "source", name, "key", key)
			return &Result{Document: doc, Hash: hash, Stats: statsOf(doc, 0), CacheHit: true}, nil
		}
	}

	observability.Pipeline().OnParseStart(ctx, name)
	start := time.Now()
	parser := gedcom.NewParser(gedcom.Options{
		Strict: opts.Strict,
		Logger: func(msg string, args ...any) { logger.Warnf(msg, args...) },
	})
	doc, err := parser.ParseReader(bytes.NewReader(src))
	elapsed := time.Since(start)

	count := 0
	if doc != nil {
		count = len(doc.Elements())
	}
	observability.Pipeline().OnParseComplete(ctx, name, count, elapsed, err)
	if err != nil {
		return nil, gerrors.Wrap(gerrors.Classify(err), err, "parse %s", name)
	}

	res := &Result{Document: doc, Hash: hash, Stats: statsOf(doc, elapsed)}
	logger.Info("parsed document",
		"source", name,
		"individuals", res.Stats.Individuals,
		"families", res.Stats.Families,
		"duration", elapsed)

	if data, err := gio.Marshal(doc); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.DocumentTTL); err != nil {
			logger.Warn("cache write failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "doc", len(data))
		}
	}
	return res, nil
}

func (r *Runner) cached(ctx context.Context, key string, logger *log.Logger) (*gedcom.Document, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "key", key, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "doc")
		return nil, false
	}
	doc, err := gio.Unmarshal(data)
	if err != nil {
		// Stale format; fall through to a fresh parse.
		logger.Debug("discarding cached document", "key", key, "err", err)
		observability.Cache().OnCacheMiss(ctx, "doc")
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "doc")
	return doc, true
}

// Render draws a family chart of a loaded document. Rendered charts are
// cached by document hash and chart options. The boolean reports a cache hit.
func (r *Runner) Render(ctx context.Context, res *Result, opts ChartOptions) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "invalid chart options")
	}
	root, err := Lookup(res.Document, opts.Root)
	if err != nil {
		return nil, false, err
	}

	key := r.Keyer.RenderKey(res.Hash, opts.keyOpts(root.Pointer()))
	if res.Hash != "" {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	observability.Pipeline().OnRenderStart(ctx, string(opts.Mode), opts.Format)
	start := time.Now()
	out, err := renderChart(ctx, res.Document, root, opts)
	elapsed := time.Since(start)
	observability.Pipeline().OnRenderComplete(ctx, string(opts.Mode), opts.Format, elapsed, err)
	if err != nil {
		return nil, false, err
	}

	r.Logger.Debug("rendered chart", "root", root.Pointer(), "mode", opts.Mode, "format", opts.Format, "duration", elapsed)
	if res.Hash != "" {
		if err := r.Cache.Set(ctx, key, out, cache.TTLRender); err != nil {
			r.Logger.Warn("cache write failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "render", len(out))
		}
	}
	return out, false, nil
}

func renderChart(ctx context.Context, doc *gedcom.Document, root *gedcom.Element, opts ChartOptions) ([]byte, error) {
	chart, err := render.Build(doc, root, render.Options{Mode: opts.Mode, MaxDepth: opts.Depth})
	if err != nil {
		return nil, gerrors.Wrap(gerrors.Classify(err), err, "build chart")
	}
	dot := nodelink.ToDOT(chart, nodelink.Options{Detailed: opts.Detailed})
	out, err := nodelink.Render(ctx, dot, opts.Format)
	if err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeInternal, err, "render %s", opts.Format)
	}
	return out, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(override *log.Logger) *log.Logger {
	if override != nil {
		return override
	}
	return r.Logger
}
