package fifo

// Options define options for a Container.
type Options[K comparable] struct {
	// hash computes the bucket hash of a key; nil selects the built-in map.
	hash func(K) uint64
	// equals decides key identity; nil falls back to ==.
	equals func(a, b K) bool
}

// applies the given Option.
func (o *Options[K]) apply(opts ...Option[K]) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithStrategy makes the container index its keys through the given hash and
// equality functions instead of the language's built-in semantics for K.
// A nil equals falls back to ==.
func WithStrategy[K comparable](hash func(K) uint64, equals func(a, b K) bool) Option[K] {
	return func(opts *Options[K]) {
		opts.hash = hash
		opts.equals = equals
	}
}

// Option is a function setting an Options option.
type Option[K comparable] func(opts *Options[K])
