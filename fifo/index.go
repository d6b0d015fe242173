package fifo

// index abstracts the hash table that maps the key of every live entry to the
// node preceding it in the ordered sequence. Storing predecessors instead of
// the nodes themselves is deliberate: every mutation of a forward-linked
// sequence happens "after" a held node, so the predecessor is the one handle
// all operations need.
type index[K comparable, E any] interface {
	get(key K) (pred *node[E], exists bool)
	set(key K, pred *node[E])
	delete(key K) bool
	size() int
}

// indexConstructor picks the index implementation matching the configured
// options: the built-in map unless a hashing strategy was supplied.
func indexConstructor[K comparable, E any](opts *Options[K]) func() index[K, E] {
	if opts.hash == nil {
		return func() index[K, E] {
			return make(nativeIndex[K, E])
		}
	}

	equals := opts.equals
	if equals == nil {
		equals = func(a, b K) bool { return a == b }
	}

	return func() index[K, E] {
		return newStrategyIndex[K, E](opts.hash, equals)
	}
}

// nativeIndex indexes predecessors with a built-in map, relying on the
// language's hashing and equality for K.
type nativeIndex[K comparable, E any] map[K]*node[E]

func (n nativeIndex[K, E]) get(key K) (pred *node[E], exists bool) {
	pred, exists = n[key]

	return pred, exists
}

func (n nativeIndex[K, E]) set(key K, pred *node[E]) {
	n[key] = pred
}

func (n nativeIndex[K, E]) delete(key K) bool {
	if _, exists := n[key]; !exists {
		return false
	}
	delete(n, key)

	return true
}

func (n nativeIndex[K, E]) size() int {
	return len(n)
}

const (
	// initial number of buckets of a strategyIndex, always a power of two.
	initialBucketCount = 16

	// average chain length that triggers doubling of the bucket table.
	maxBucketLoad = 4
)

// strategyIndex indexes predecessors with a chained bucket table driven by
// caller-supplied hash and equality functions, for keys whose identity differs
// from the language's built-in semantics for K.
type strategyIndex[K comparable, E any] struct {
	hash    func(K) uint64
	equals  func(a, b K) bool
	buckets []*indexSlot[K, E]
	count   int
}

// indexSlot is a single link of a bucket chain.
type indexSlot[K comparable, E any] struct {
	key  K
	pred *node[E]
	next *indexSlot[K, E]
}

func newStrategyIndex[K comparable, E any](hash func(K) uint64, equals func(a, b K) bool) *strategyIndex[K, E] {
	return &strategyIndex[K, E]{
		hash:    hash,
		equals:  equals,
		buckets: make([]*indexSlot[K, E], initialBucketCount),
	}
}

func (s *strategyIndex[K, E]) get(key K) (pred *node[E], exists bool) {
	for slot := s.buckets[s.bucketOf(key)]; slot != nil; slot = slot.next {
		if s.equals(slot.key, key) {
			return slot.pred, true
		}
	}

	return nil, false
}

func (s *strategyIndex[K, E]) set(key K, pred *node[E]) {
	bucket := s.bucketOf(key)
	for slot := s.buckets[bucket]; slot != nil; slot = slot.next {
		if s.equals(slot.key, key) {
			slot.pred = pred

			return
		}
	}

	s.buckets[bucket] = &indexSlot[K, E]{
		key:  key,
		pred: pred,
		next: s.buckets[bucket],
	}
	s.count++

	if s.count > len(s.buckets)*maxBucketLoad {
		s.grow()
	}
}

func (s *strategyIndex[K, E]) delete(key K) bool {
	bucket := s.bucketOf(key)
	for slotRef := &s.buckets[bucket]; *slotRef != nil; slotRef = &(*slotRef).next {
		if s.equals((*slotRef).key, key) {
			*slotRef = (*slotRef).next
			s.count--

			return true
		}
	}

	return false
}

func (s *strategyIndex[K, E]) size() int {
	return s.count
}

func (s *strategyIndex[K, E]) bucketOf(key K) uint64 {
	return s.hash(key) & uint64(len(s.buckets)-1)
}

// grow doubles the bucket table and rehashes all slots into it.
func (s *strategyIndex[K, E]) grow() {
	oldBuckets := s.buckets
	s.buckets = make([]*indexSlot[K, E], 2*len(oldBuckets))

	for _, slot := range oldBuckets {
		for slot != nil {
			next := slot.next
			bucket := s.bucketOf(slot.key)
			slot.next = s.buckets[bucket]
			s.buckets[bucket] = slot
			slot = next
		}
	}
}
