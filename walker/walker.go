// Package walker implements a data structure that simplifies walks over
// collections or graphs. Scheduled and visited elements are tracked in
// FIFO-ordered sets, which makes the visiting order deterministic and keeps
// every element from being visited twice.
package walker

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/cjxgm/fifo-map/fifoset"
)

// ErrNoNextElement is the panic value raised when Next is called on a drained
// Walker.
var ErrNoNextElement = ierrors.New("no next element in the walk, check HasNext first")

// Walker implements a generic data structure that simplifies walks over
// collections or data structures. Every element is visited at most once.
type Walker[T comparable] struct {
	frontier    *fifoset.FIFOSet[T]
	visited     *fifoset.FIFOSet[T]
	walkStopped bool
}

// New is the constructor of the Walker.
func New[T comparable]() *Walker[T] {
	return &Walker[T]{
		frontier: fifoset.New[T](),
		visited:  fifoset.New[T](),
	}
}

// HasNext returns true if the Walker has another element that shall be
// visited.
func (w *Walker[T]) HasNext() bool {
	return !w.frontier.IsEmpty() && !w.walkStopped
}

// Next returns the next element of the walk and marks it as visited.
func (w *Walker[T]) Next() (nextElement T) {
	nextElement, exists := w.frontier.Head()
	if !exists {
		panic(ErrNoNextElement)
	}

	w.frontier.Delete(nextElement)
	w.visited.Add(nextElement)

	return nextElement
}

// Push schedules a new element for the walk, which can consequently be
// retrieved by calling the Next method. Elements that were already visited or
// are already scheduled are skipped.
func (w *Walker[T]) Push(nextElement T) (walker *Walker[T]) {
	if !w.visited.Has(nextElement) {
		w.frontier.Add(nextElement)
	}

	return w
}

// PushAll schedules new elements for the walk, which can consequently be
// retrieved by calling the Next method.
func (w *Walker[T]) PushAll(nextElements ...T) (walker *Walker[T]) {
	for _, nextElement := range nextElements {
		w.Push(nextElement)
	}

	return w
}

// PushFront schedules new elements at the front of the walk so they are
// visited before everything scheduled earlier. An element that is already
// scheduled keeps its current place in line.
func (w *Walker[T]) PushFront(nextElements ...T) (walker *Walker[T]) {
	for _, nextElement := range nextElements {
		if !w.visited.Has(nextElement) {
			w.frontier.AddFront(nextElement)
		}
	}

	return w
}

// Pushed returns true if the passed element was pushed to the Walker (either
// still scheduled or already visited).
func (w *Walker[T]) Pushed(element T) bool {
	return w.frontier.Has(element) || w.visited.Has(element)
}

// Visited returns the elements visited so far, in visiting order.
func (w *Walker[T]) Visited() []T {
	return w.visited.ToSlice()
}

// StopWalk aborts the walk and forces HasNext to always return false.
func (w *Walker[T]) StopWalk() {
	w.walkStopped = true
}

// WalkStopped returns true if the Walk has been stopped.
func (w *Walker[T]) WalkStopped() bool {
	return w.walkStopped
}

// Reset removes all scheduled and visited elements and makes the Walker
// usable for a fresh walk.
func (w *Walker[T]) Reset() {
	w.frontier.Clear()
	w.visited.Clear()
	w.walkStopped = false
}
