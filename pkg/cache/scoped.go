package cache

// ScopedKeyer wraps a Keyer with a prefix so that unrelated key spaces can
// share one store. The CLI scopes keys by release so that an upgrade never
// serves artifacts rendered by older code.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
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

// ArtifactKey generates a prefixed key for diagram caching.
func (k *ScopedKeyer) ArtifactKey(from, to string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(from, to, opts)
}
