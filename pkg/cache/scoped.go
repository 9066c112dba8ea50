package cache

// ScopedKeyer wraps a Keyer with a prefix so that several tools or server
// instances can share one backend without their keys colliding.
//
// Example usage:
//
//	// Keys of the HTTP server
//	serverKeyer := NewScopedKeyer(NewDefaultKeyer(), "gedtree:serve:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DocumentKey generates a prefixed key for parsed documents.
func (k *ScopedKeyer) DocumentKey(sourceHash string, opts DocumentKeyOpts) string {
	return k.prefix + k.inner.DocumentKey(sourceHash, opts)
}

// RenderKey generates a prefixed key for rendered charts.
func (k *ScopedKeyer) RenderKey(documentHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(documentHash, opts)
}
