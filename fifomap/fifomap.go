// Package fifomap provides a hash map that guarantees iteration in insertion
// order while keeping lookup, insertion and removal at the usual hash map
// cost. It is a thin instantiation of the fifo.Container engine with key/value
// pair entries.
package fifomap

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/cjxgm/fifo-map/fifo"
)

// ErrKeyNotFound is returned by At when the required key is absent.
var ErrKeyNotFound = ierrors.New("key not found")

// Entry is a single key/value pair of a FIFOMap.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// FIFOMap is a non concurrent-safe map that iterates its entries in the order
// they were first inserted. A FIFOMap is movable but deliberately not
// copyable; duplicating one would silently deep-copy every entry, which the
// caller has to spell out explicitly instead.
type FIFOMap[K comparable, V any] struct {
	container *fifo.Container[K, Entry[K, V]]
}

// New returns a new *FIFOMap.
func New[K comparable, V any]() *FIFOMap[K, V] {
	return newMap[K, V]()
}

// NewWithStrategy returns a new *FIFOMap that indexes its keys through the
// given hash and equality functions instead of the language's built-in
// semantics for K. A nil equals falls back to ==.
func NewWithStrategy[K comparable, V any](hash func(K) uint64, equals func(a, b K) bool) *FIFOMap[K, V] {
	return newMap[K, V](fifo.WithStrategy(hash, equals))
}

func newMap[K comparable, V any](opts ...fifo.Option[K]) *FIFOMap[K, V] {
	return &FIFOMap[K, V]{
		container: fifo.New[K, Entry[K, V]](func(entry Entry[K, V]) K {
			return entry.Key
		}, opts...),
	}
}

// Insert appends a key/value pair behind the last entry. If the key is
// already present, the map is left untouched and the live value is returned
// together with inserted=false; the present value is never overwritten.
func (f *FIFOMap[K, V]) Insert(key K, value V) (liveValue V, inserted bool) {
	position, inserted := f.container.PushBack(Entry[K, V]{Key: key, Value: value})

	return position.Entry().Value, inserted
}

// Get returns the value mapped to the given key if it exists.
func (f *FIFOMap[K, V]) Get(key K) (value V, exists bool) {
	position, exists := f.container.Find(key)
	if !exists {
		return value, false
	}

	return position.Entry().Value, true
}

// GetOrCreate returns the value mapped to the given key and a flag indicating
// whether the value was created. If the key is absent, defaultValueFunc
// provides the value to insert at the back; a nil func inserts the zero
// value.
func (f *FIFOMap[K, V]) GetOrCreate(key K, defaultValueFunc func() V) (value V, created bool) {
	if position, exists := f.container.Find(key); exists {
		return position.Entry().Value, false
	}

	if defaultValueFunc != nil {
		value = defaultValueFunc()
	}
	f.container.PushBack(Entry[K, V]{Key: key, Value: value})

	return value, true
}

// Ref returns a pointer to the value stored for the given key, or nil if the
// key is absent. The pointer stays valid until the entry is removed or the
// map is cleared.
func (f *FIFOMap[K, V]) Ref(key K) *V {
	position, exists := f.container.Find(key)
	if !exists {
		return nil
	}

	return &position.EntryRef().Value
}

// At returns the value mapped to the given key, or ErrKeyNotFound if the key
// is absent. It is the lookup for callers that assert the key must exist.
func (f *FIFOMap[K, V]) At(key K) (value V, err error) {
	position, exists := f.container.Find(key)
	if !exists {
		return value, ierrors.Wrapf(ErrKeyNotFound, "no entry for key %v", key)
	}

	return position.Entry().Value, nil
}

// Has returns if an entry with the given key exists.
func (f *FIFOMap[K, V]) Has(key K) (has bool) {
	_, has = f.container.Find(key)

	return has
}

// Count returns how many entries carry the given key (0 or 1).
func (f *FIFOMap[K, V]) Count(key K) int {
	return f.container.Count(key)
}

// Find returns the position of the entry with the given key.
func (f *FIFOMap[K, V]) Find(key K) (position fifo.Position[Entry[K, V]], exists bool) {
	return f.container.Find(key)
}

// Delete removes the given key (and related value) from the map. It returns
// false if the key is not found.
func (f *FIFOMap[K, V]) Delete(key K) (deleted bool) {
	return f.container.Delete(key)
}

// DeleteAt removes the entry at the given position, saving the hash probe a
// Delete by key would spend. The position must denote a live entry of this
// map; passing a stale or foreign position panics.
func (f *FIFOMap[K, V]) DeleteAt(position fifo.Position[Entry[K, V]]) {
	f.container.DeletePosition(position)
}

// Head returns the first map entry.
func (f *FIFOMap[K, V]) Head() (key K, value V, exists bool) {
	position, exists := f.container.Head()
	if !exists {
		return key, value, false
	}
	entry := position.Entry()

	return entry.Key, entry.Value, true
}

// Tail returns the last map entry.
func (f *FIFOMap[K, V]) Tail() (key K, value V, exists bool) {
	position, exists := f.container.Tail()
	if !exists {
		return key, value, false
	}
	entry := position.Entry()

	return entry.Key, entry.Value, true
}

// ForEach iterates through the map in insertion order and calls the consumer
// function for every entry. The iteration can be aborted by returning false
// in the consumer.
func (f *FIFOMap[K, V]) ForEach(consumer func(key K, value V) bool) bool {
	if f == nil {
		return true
	}

	return f.container.ForEach(func(entry Entry[K, V]) bool {
		return consumer(entry.Key, entry.Value)
	})
}

// Keys returns the keys of the map in insertion order.
func (f *FIFOMap[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, f.Size())
	f.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)

		return true
	})

	return keys
}

// Size returns the number of entries in the map.
func (f *FIFOMap[K, V]) Size() int {
	if f == nil {
		return 0
	}

	return f.container.Size()
}

// IsEmpty returns a boolean value indicating whether the map is empty.
func (f *FIFOMap[K, V]) IsEmpty() bool {
	return f.Size() == 0
}

// Clear removes all entries from the map. All previously obtained positions
// and value pointers become invalid.
func (f *FIFOMap[K, V]) Clear() {
	f.container.Clear()
}

// Move transfers all entries to a freshly constructed map and resets the
// receiver to empty, ready for reuse.
func (f *FIFOMap[K, V]) Move() (moved *FIFOMap[K, V]) {
	return &FIFOMap[K, V]{container: f.container.Move()}
}

// String returns a human-readable version of the map.
func (f *FIFOMap[K, V]) String() string {
	fields := make([]*stringify.StructField, 0, f.Size())
	f.ForEach(func(key K, value V) bool {
		fields = append(fields, stringify.NewStructField(fmt.Sprintf("%v", key), value))

		return true
	})

	return stringify.Struct("FIFOMap", fields...)
}
