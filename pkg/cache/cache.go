// Package cache stores parsed documents and rendered charts between runs.
//
// A [Cache] is a byte-oriented key/value store with per-entry TTL. Three
// backends are provided: [FileCache] for the CLI, [RedisCache] for the HTTP
// server, and [NullCache] to disable caching. Keys are produced by a
// [Keyer] so that every backend sees the same key layout:
//
//	doc:v1:<sha256 of source hash and parse options>
//	render:v1:<sha256 of document hash and chart options>
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store for serialized artifacts.
//
// Get reports a miss as (nil, false, nil); an error means the backend itself
// failed. A ttl of zero means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// DocumentKey addresses a parsed document by the hash of its source.
	DocumentKey(sourceHash string, opts DocumentKeyOpts) string
	// RenderKey addresses a rendered chart of a cached document.
	RenderKey(documentHash string, opts RenderKeyOpts) string
}

// DocumentKeyOpts holds the parse options that change the parsed result.
type DocumentKeyOpts struct {
	Strict bool `json:"strict"`
}

// RenderKeyOpts holds the options that change a rendered chart.
type RenderKeyOpts struct {
	Chart    string `json:"chart"`
	Root     string `json:"root"`
	Depth    int    `json:"depth"`
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DocumentKey returns "doc:" followed by a hash of the inputs.
func (DefaultKeyer) DocumentKey(sourceHash string, opts DocumentKeyOpts) string {
	return hashKey("doc", sourceHash, opts)
}

// RenderKey returns "render:" followed by a hash of the inputs.
func (DefaultKeyer) RenderKey(documentHash string, opts RenderKeyOpts) string {
	return hashKey("render", documentHash, opts)
}

// Default entry lifetimes.
const (
	// TTLDocument keeps parsed documents for a week; the key already changes
	// whenever the source file does.
	TTLDocument = 7 * 24 * time.Hour

	// TTLRender keeps rendered charts for a day.
	TTLRender = 24 * time.Hour
)
