// Package fifo implements the engine behind the FIFO-ordered collections: a
// forward-linked sequence of entries combined with a hash index that maps the
// key of every entry to the position preceding it. The predecessor indirection
// is what makes O(1) removal possible on a forward-only sequence, since such a
// sequence can only splice and unlink "after" a position that is already held.
//
// The Container is not concurrent-safe; callers that share one across
// goroutines must synchronize externally.
package fifo

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// ErrStalePosition is the panic value raised when a position that does not
// denote a live entry is handed to DeletePosition.
var ErrStalePosition = ierrors.New("position does not denote a live entry of this container")

// Container is an insertion-ordered collection of entries with hash-indexed
// access. Entries are keyed by the caller-supplied extractor; the map variant
// extracts the key of a pair, the set variant uses the entry itself.
type Container[K comparable, E any] struct {
	keyOf    func(E) K
	index    index[K, E]
	newIndex func() index[K, E]
	sentinel *node[E]
	back     *node[E]
}

// New returns a new *Container that keys its entries with the given extractor.
func New[K comparable, E any](keyOf func(E) K, opts ...Option[K]) *Container[K, E] {
	containerOpts := &Options[K]{}
	containerOpts.apply(opts...)

	c := &Container[K, E]{
		keyOf:    keyOf,
		newIndex: indexConstructor[K, E](containerOpts),
	}
	c.Clear()

	return c
}

// PushBack appends a new entry behind the last one. If an entry with the same
// key is already present, the position of that entry is returned together with
// inserted=false and the container is left untouched; the present entry is
// never overwritten.
func (c *Container[K, E]) PushBack(entry E) (position Position[E], inserted bool) {
	key := c.keyOf(entry)
	if pred, exists := c.index.get(key); exists {
		return Position[E]{node: pred.next}, false
	}

	// The cached back node is the position every append happens after, so it
	// becomes the predecessor recorded for the new entry.
	pred := c.back
	pred.next = &node[E]{entry: entry}
	c.back = pred.next
	c.index.set(key, pred)

	return Position[E]{node: c.back}, true
}

// PushFront splices a new entry in front of the first one. Like PushBack it
// refuses duplicates and returns the position of the already present entry
// instead.
func (c *Container[K, E]) PushFront(entry E) (position Position[E], inserted bool) {
	key := c.keyOf(entry)
	if pred, exists := c.index.get(key); exists {
		return Position[E]{node: pred.next}, false
	}

	newNode := &node[E]{next: c.sentinel.next, entry: entry}
	c.sentinel.next = newNode

	if newNode.next == nil {
		// The container was empty, the new entry is also the last one.
		c.back = newNode
	} else {
		// The former first entry is now preceded by the new node.
		c.index.set(c.keyOf(newNode.next.entry), newNode)
	}
	c.index.set(key, c.sentinel)

	return Position[E]{node: newNode}, true
}

// Find returns the position of the entry with the given key, or the zero
// Position if no such entry exists.
func (c *Container[K, E]) Find(key K) (position Position[E], exists bool) {
	pred, exists := c.index.get(key)
	if !exists {
		return Position[E]{}, false
	}

	return Position[E]{node: pred.next}, true
}

// Delete removes the entry with the given key. It returns false if the key is
// not present, leaving the container untouched.
func (c *Container[K, E]) Delete(key K) (deleted bool) {
	pred, exists := c.index.get(key)
	if !exists {
		return false
	}
	c.unlink(key, pred)

	return true
}

// DeletePosition removes the entry at the given position, saving the hash
// probe a Delete by key would spend. The position must denote a live entry of
// this container; passing a stale or foreign position is a contract breach
// and panics.
func (c *Container[K, E]) DeletePosition(position Position[E]) {
	if position.node == nil {
		panic(ErrStalePosition)
	}

	key := c.keyOf(position.node.entry)
	pred, exists := c.index.get(key)
	if !exists || pred.next != position.node {
		panic(ErrStalePosition)
	}
	c.unlink(key, pred)
}

// unlink removes the entry after pred from the sequence and drops its index
// slot, keeping index, sequence and the cached back node in sync.
func (c *Container[K, E]) unlink(key K, pred *node[E]) {
	removed := pred.next
	pred.next = removed.next
	removed.next = nil
	c.index.delete(key)

	if pred.next == nil {
		// The tail was removed, appends now happen after its predecessor.
		c.back = pred
	} else {
		// The successor moved up by one, its recorded predecessor follows.
		c.index.set(c.keyOf(pred.next.entry), pred)
	}
}

// Head returns the position of the first entry.
func (c *Container[K, E]) Head() (position Position[E], exists bool) {
	return Position[E]{node: c.sentinel.next}, c.sentinel.next != nil
}

// Tail returns the position of the last entry.
func (c *Container[K, E]) Tail() (position Position[E], exists bool) {
	if c.back == c.sentinel {
		return Position[E]{}, false
	}

	return Position[E]{node: c.back}, true
}

// ForEach iterates through the container in insertion order and calls the
// consumer function for every entry. The iteration can be aborted by returning
// false in the consumer.
func (c *Container[K, E]) ForEach(consumer func(entry E) bool) bool {
	if c == nil {
		return true
	}

	for currentNode := c.sentinel.next; currentNode != nil; currentNode = currentNode.next {
		if !consumer(currentNode.entry) {
			return false
		}
	}

	return true
}

// Size returns the number of entries in the container.
func (c *Container[K, E]) Size() int {
	if c == nil {
		return 0
	}

	return c.index.size()
}

// Count returns how many entries carry the given key (0 or 1, duplicate keys
// never coexist).
func (c *Container[K, E]) Count(key K) int {
	_, exists := c.index.get(key)

	return lo.Cond(exists, 1, 0)
}

// IsEmpty returns a boolean value indicating whether the container is empty.
func (c *Container[K, E]) IsEmpty() bool {
	return c.Size() == 0
}

// Clear removes all entries from the container. All previously obtained
// positions become invalid.
func (c *Container[K, E]) Clear() {
	c.index = c.newIndex()
	c.sentinel = new(node[E])
	c.back = c.sentinel
}

// Move transfers all entries to a freshly constructed container and resets the
// receiver to empty, ready for reuse. The sequence and index are handed over
// wholesale; since the before-first sentinel lives on the heap, the recorded
// predecessor of the first entry stays valid without fixups.
func (c *Container[K, E]) Move() (moved *Container[K, E]) {
	moved = &Container[K, E]{
		keyOf:    c.keyOf,
		index:    c.index,
		newIndex: c.newIndex,
		sentinel: c.sentinel,
		back:     c.back,
	}
	c.Clear()

	return moved
}

// Clone returns a copy of the container, built by replaying every entry
// through PushBack (which reproduces the iteration order exactly). The
// optional cloneEntry function produces the copied entries; if nil, entries
// are copied by assignment.
func (c *Container[K, E]) Clone(cloneEntry func(E) E) (cloned *Container[K, E]) {
	cloned = &Container[K, E]{
		keyOf:    c.keyOf,
		newIndex: c.newIndex,
	}
	cloned.Clear()

	c.ForEach(func(entry E) bool {
		if cloneEntry != nil {
			entry = cloneEntry(entry)
		}
		cloned.PushBack(entry)

		return true
	})

	return cloned
}
