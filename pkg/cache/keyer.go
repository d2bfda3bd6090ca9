package cache

// Keyer generates cache keys for rendered artifacts.
// An interface so deployments can namespace keys (see ScopedKeyer).
type Keyer interface {
	// DrawingKey generates a key for a rendered drawing artifact.
	DrawingKey(opts DrawingKeyOpts) string
}

// DrawingKeyOpts captures everything that influences a rendered drawing.
// Two renders with identical opts produce identical bytes, so the full
// parameter set must be part of the key.
type DrawingKeyOpts struct {
	Seed       uint64
	Width      float64
	Height     float64
	Separation float64
	Quantity   int
	Format     string
	Style      string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DrawingKey generates a key for a rendered drawing artifact.
func (k *DefaultKeyer) DrawingKey(opts DrawingKeyOpts) string {
	return hashKey("drawing", opts)
}

// ScopedKeyer wraps a Keyer with a prefix so separate deployments can
// share one cache backend without key collisions.
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

// DrawingKey generates a prefixed key for a rendered drawing artifact.
func (k *ScopedKeyer) DrawingKey(opts DrawingKeyOpts) string {
	return k.prefix + k.inner.DrawingKey(opts)
}
