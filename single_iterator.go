package list

// SingleIterator is a mutable forward cursor over a Single. With no prev
// link in the chain there is no reverse variant and no way to step backward;
// the only conversion is dropping mutability with Const.
//
// A nil node is the past-the-end sentinel. Like DoubleIterator, the iterator
// is a bare node reference and dangles if its node is removed.
type SingleIterator[T any] struct {
	node *snode[T]
}

// Valid reports whether the iterator references an element rather than the
// sentinel.
func (it SingleIterator[T]) Valid() bool {
	return it.node != nil
}

// Value returns the referenced value. Unchecked: Value on the sentinel
// dereferences a nil node.
func (it SingleIterator[T]) Value() T {
	return it.node.value
}

// Set replaces the referenced value. Unchecked, like Value.
func (it SingleIterator[T]) Set(value T) {
	it.node.value = value
}

// Next steps to the following element. Stepping off the end lands on the
// sentinel; stepping from the sentinel does nothing.
func (it *SingleIterator[T]) Next() {
	if it.node != nil {
		it.node = it.node.next
	}
}

// Advance steps forward n times, one element at a time.
func (it *SingleIterator[T]) Advance(n int) {
	for i := 0; i < n; i++ {
		it.Next()
	}
}

// Equal reports whether both iterators reference the same node.
func (it SingleIterator[T]) Equal(other SingleIterator[T]) bool {
	return it.node == other.node
}

// Const drops mutability, keeping the position. There is no conversion back.
func (it SingleIterator[T]) Const() SingleConstIterator[T] {
	return SingleConstIterator[T]{node: it.node}
}

// SingleConstIterator is the read-only counterpart of SingleIterator.
type SingleConstIterator[T any] struct {
	node *snode[T]
}

// Valid reports whether the iterator references an element rather than the
// sentinel.
func (it SingleConstIterator[T]) Valid() bool {
	return it.node != nil
}

// Value returns the referenced value. Unchecked: Value on the sentinel
// dereferences a nil node.
func (it SingleConstIterator[T]) Value() T {
	return it.node.value
}

// Next steps to the following element, with the sentinel rules of
// SingleIterator.Next.
func (it *SingleConstIterator[T]) Next() {
	if it.node != nil {
		it.node = it.node.next
	}
}

// Advance steps forward n times, one element at a time.
func (it *SingleConstIterator[T]) Advance(n int) {
	for i := 0; i < n; i++ {
		it.Next()
	}
}

// Equal reports whether both iterators reference the same node.
func (it SingleConstIterator[T]) Equal(other SingleConstIterator[T]) bool {
	return it.node == other.node
}

// Begin returns a forward iterator on the first element. On an empty list it
// equals End.
func (l *Single[T]) Begin() SingleIterator[T] {
	return SingleIterator[T]{node: l.head}
}

// End returns the past-the-end sentinel.
func (l *Single[T]) End() SingleIterator[T] {
	return SingleIterator[T]{}
}

// CBegin returns a read-only forward iterator on the first element.
func (l *Single[T]) CBegin() SingleConstIterator[T] {
	return SingleConstIterator[T]{node: l.head}
}

// CEnd returns the read-only past-the-end sentinel.
func (l *Single[T]) CEnd() SingleConstIterator[T] {
	return SingleConstIterator[T]{}
}
