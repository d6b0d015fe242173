// Package fifoset provides a hash set that guarantees iteration in insertion
// order while keeping membership tests, insertion and removal at the usual
// hash set cost. It is a thin instantiation of the fifo.Container engine with
// bare value entries.
package fifoset

import (
	"fmt"

	"github.com/iotaledger/hive.go/stringify"

	"github.com/cjxgm/fifo-map/fifo"
)

// FIFOSet is a non concurrent-safe collection of unique elements that
// iterates them in the order they were first added. In contrast to FIFOMap,
// a FIFOSet is copyable through Clone.
type FIFOSet[T comparable] struct {
	container *fifo.Container[T, T]
}

// New creates a new FIFOSet with the given elements.
func New[T comparable](elements ...T) *FIFOSet[T] {
	return newSet[T]().AddAll(elements...)
}

// NewWithStrategy creates a new FIFOSet that indexes its elements through the
// given hash and equality functions instead of the language's built-in
// semantics for T. A nil equals falls back to ==.
func NewWithStrategy[T comparable](hash func(T) uint64, equals func(a, b T) bool, elements ...T) *FIFOSet[T] {
	return newSet[T](fifo.WithStrategy(hash, equals)).AddAll(elements...)
}

func newSet[T comparable](opts ...fifo.Option[T]) *FIFOSet[T] {
	return &FIFOSet[T]{
		container: fifo.New[T, T](func(element T) T {
			return element
		}, opts...),
	}
}

// Add adds a new element behind the last one and returns true if the element
// was not present in the set before.
func (f *FIFOSet[T]) Add(element T) (added bool) {
	_, added = f.container.PushBack(element)

	return added
}

// AddFront adds a new element in front of the first one and returns true if
// the element was not present in the set before. An already present element
// keeps its position.
func (f *FIFOSet[T]) AddFront(element T) (added bool) {
	_, added = f.container.PushFront(element)

	return added
}

// AddAll adds all elements behind the last one and returns the set itself for
// chaining.
func (f *FIFOSet[T]) AddAll(elements ...T) *FIFOSet[T] {
	for _, element := range elements {
		f.container.PushBack(element)
	}

	return f
}

// Has returns if the given element exists in the set.
func (f *FIFOSet[T]) Has(element T) (has bool) {
	_, has = f.container.Find(element)

	return has
}

// Count returns how many times the given element is present (0 or 1).
func (f *FIFOSet[T]) Count(element T) int {
	return f.container.Count(element)
}

// Find returns the position of the given element.
func (f *FIFOSet[T]) Find(element T) (position fifo.Position[T], exists bool) {
	return f.container.Find(element)
}

// Delete removes the given element from the set. It returns false if the
// element is not found.
func (f *FIFOSet[T]) Delete(element T) (deleted bool) {
	return f.container.Delete(element)
}

// DeleteAt removes the element at the given position, saving the hash probe a
// Delete by element would spend. The position must denote a live element of
// this set; passing a stale or foreign position panics.
func (f *FIFOSet[T]) DeleteAt(position fifo.Position[T]) {
	f.container.DeletePosition(position)
}

// Head returns the first element of the set.
func (f *FIFOSet[T]) Head() (element T, exists bool) {
	position, exists := f.container.Head()

	return position.Entry(), exists
}

// Tail returns the last element of the set.
func (f *FIFOSet[T]) Tail() (element T, exists bool) {
	position, exists := f.container.Tail()

	return position.Entry(), exists
}

// ForEach iterates through the set in insertion order and calls the consumer
// function for every element. The iteration can be aborted by returning false
// in the consumer.
func (f *FIFOSet[T]) ForEach(consumer func(element T) bool) bool {
	if f == nil {
		return true
	}

	return f.container.ForEach(consumer)
}

// ToSlice returns the elements of the set as a slice, in insertion order.
func (f *FIFOSet[T]) ToSlice() (elements []T) {
	elements = make([]T, 0, f.Size())
	f.ForEach(func(element T) bool {
		elements = append(elements, element)

		return true
	})

	return elements
}

// Size returns the number of elements in the set.
func (f *FIFOSet[T]) Size() int {
	if f == nil {
		return 0
	}

	return f.container.Size()
}

// IsEmpty returns a boolean value indicating whether the set is empty.
func (f *FIFOSet[T]) IsEmpty() bool {
	return f.Size() == 0
}

// Clear removes all elements from the set. All previously obtained positions
// become invalid.
func (f *FIFOSet[T]) Clear() {
	f.container.Clear()
}

// Clone returns a copy of the set, built by re-adding every element behind
// the last one. Replaying the insertions reproduces the iteration order of
// the source exactly.
func (f *FIFOSet[T]) Clone() (cloned *FIFOSet[T]) {
	return &FIFOSet[T]{container: f.container.Clone(nil)}
}

// Move transfers all elements to a freshly constructed set and resets the
// receiver to empty, ready for reuse.
func (f *FIFOSet[T]) Move() (moved *FIFOSet[T]) {
	return &FIFOSet[T]{container: f.container.Move()}
}

// String returns a human-readable version of the set.
func (f *FIFOSet[T]) String() string {
	fields := make([]*stringify.StructField, 0, f.Size())
	f.ForEach(func(element T) bool {
		fields = append(fields, stringify.NewStructField(fmt.Sprintf("%d", len(fields)), element))

		return true
	})

	return stringify.Struct("FIFOSet", fields...)
}
