package cache

// ScopedKeyer prefixes every key of an inner Keyer, giving callers that
// share one backend separate namespaces.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "bench:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ResultKey implements Keyer.
func (k *ScopedKeyer) ResultKey(treeHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(treeHash, opts)
}
