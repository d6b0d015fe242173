package fifo

// node is a single link of the ordered sequence. A node is owned by its
// predecessor (the sentinel owns the first one); the index references nodes
// but never owns them.
type node[E any] struct {
	next  *node[E]
	entry E
}

// Position is a handle to a single entry of a Container. The zero value is the
// end position that denotes no entry. A position stays valid until the entry
// it denotes is removed or its container is cleared; positions obtained before
// a structural change must not be trusted for entries at or after the changed
// point.
type Position[E any] struct {
	node *node[E]
}

// Exists returns true if the position denotes a live entry rather than the
// end of the sequence.
func (p Position[E]) Exists() bool {
	return p.node != nil
}

// Entry returns the entry at the position, or the zero entry for the end
// position.
func (p Position[E]) Entry() (entry E) {
	if p.node != nil {
		entry = p.node.entry
	}

	return entry
}

// EntryRef returns a pointer to the entry storage at the position, or nil for
// the end position. The pointer stays valid as long as the position does.
func (p Position[E]) EntryRef() *E {
	if p.node == nil {
		return nil
	}

	return &p.node.entry
}

// Next returns the position of the entry that follows this one, stepping
// forward by a single link.
func (p Position[E]) Next() (next Position[E], exists bool) {
	if p.node == nil || p.node.next == nil {
		return Position[E]{}, false
	}

	return Position[E]{node: p.node.next}, true
}
