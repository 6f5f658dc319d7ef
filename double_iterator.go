package list

// DoubleIterator is a mutable cursor over a Double. One type covers forward
// and reverse iteration: a reverse iterator walks the chain along prev when
// stepped with Next.
//
// The iterator holds a bare node reference. It does not keep the node alive
// and it dangles if the node is removed while the iterator is held; using a
// dangling iterator is undefined. A nil node is the sentinel, standing for
// both past-the-end and pre-the-beginning.
type DoubleIterator[T any] struct {
	node    *dnode[T]
	reverse bool
}

// Valid reports whether the iterator references an element rather than the
// sentinel.
func (it DoubleIterator[T]) Valid() bool {
	return it.node != nil
}

// Value returns the referenced value. Unchecked: Value on the sentinel
// dereferences a nil node.
func (it DoubleIterator[T]) Value() T {
	return it.node.value
}

// Set replaces the referenced value. Unchecked, like Value.
func (it DoubleIterator[T]) Set(value T) {
	it.node.value = value
}

// Next steps one element in iteration order. Stepping off either end lands
// on the sentinel; stepping from the sentinel does nothing.
func (it *DoubleIterator[T]) Next() {
	if it.node == nil {
		return
	}
	if it.reverse {
		it.node = it.node.prev
	} else {
		it.node = it.node.next
	}
}

// Prev steps one element against iteration order, with the same sentinel
// rules as Next.
func (it *DoubleIterator[T]) Prev() {
	if it.node == nil {
		return
	}
	if it.reverse {
		it.node = it.node.next
	} else {
		it.node = it.node.prev
	}
}

// Advance steps forward n times, one element at a time.
func (it *DoubleIterator[T]) Advance(n int) {
	for i := 0; i < n; i++ {
		it.Next()
	}
}

// Retreat steps backward n times, one element at a time.
func (it *DoubleIterator[T]) Retreat(n int) {
	for i := 0; i < n; i++ {
		it.Prev()
	}
}

// Equal reports whether both iterators reference the same node. Direction is
// not part of the comparison: a forward and a reverse iterator on the same
// element compare equal, as do any two sentinels.
func (it DoubleIterator[T]) Equal(other DoubleIterator[T]) bool {
	return it.node == other.node
}

// Const drops mutability, keeping position and direction. There is no
// conversion back: the const iterator types have no method that yields a
// mutable iterator, so regaining write access does not compile.
func (it DoubleIterator[T]) Const() DoubleConstIterator[T] {
	return DoubleConstIterator[T]{node: it.node, reverse: it.reverse}
}

// Reversed flips the iteration direction, keeping the referenced node.
func (it DoubleIterator[T]) Reversed() DoubleIterator[T] {
	return DoubleIterator[T]{node: it.node, reverse: !it.reverse}
}

// DoubleConstIterator is the read-only counterpart of DoubleIterator. It has
// the same stepping and sentinel behavior but no Set, and it can only
// convert to other const iterators.
type DoubleConstIterator[T any] struct {
	node    *dnode[T]
	reverse bool
}

// Valid reports whether the iterator references an element rather than the
// sentinel.
func (it DoubleConstIterator[T]) Valid() bool {
	return it.node != nil
}

// Value returns the referenced value. Unchecked: Value on the sentinel
// dereferences a nil node.
func (it DoubleConstIterator[T]) Value() T {
	return it.node.value
}

// Next steps one element in iteration order, with the sentinel rules of
// DoubleIterator.Next.
func (it *DoubleConstIterator[T]) Next() {
	if it.node == nil {
		return
	}
	if it.reverse {
		it.node = it.node.prev
	} else {
		it.node = it.node.next
	}
}

// Prev steps one element against iteration order.
func (it *DoubleConstIterator[T]) Prev() {
	if it.node == nil {
		return
	}
	if it.reverse {
		it.node = it.node.next
	} else {
		it.node = it.node.prev
	}
}

// Advance steps forward n times, one element at a time.
func (it *DoubleConstIterator[T]) Advance(n int) {
	for i := 0; i < n; i++ {
		it.Next()
	}
}

// Retreat steps backward n times, one element at a time.
func (it *DoubleConstIterator[T]) Retreat(n int) {
	for i := 0; i < n; i++ {
		it.Prev()
	}
}

// Equal reports whether both iterators reference the same node, ignoring
// direction.
func (it DoubleConstIterator[T]) Equal(other DoubleConstIterator[T]) bool {
	return it.node == other.node
}

// Reversed flips the iteration direction, keeping the referenced node.
func (it DoubleConstIterator[T]) Reversed() DoubleConstIterator[T] {
	return DoubleConstIterator[T]{node: it.node, reverse: !it.reverse}
}

// Begin returns a forward iterator on the first element. On an empty list it
// equals End.
func (l *Double[T]) Begin() DoubleIterator[T] {
	return DoubleIterator[T]{node: l.head}
}

// End returns the past-the-end sentinel.
func (l *Double[T]) End() DoubleIterator[T] {
	return DoubleIterator[T]{}
}

// RBegin returns a reverse iterator on the last element. On an empty list it
// equals REnd.
func (l *Double[T]) RBegin() DoubleIterator[T] {
	return DoubleIterator[T]{node: l.tail, reverse: true}
}

// REnd returns the pre-the-beginning sentinel.
func (l *Double[T]) REnd() DoubleIterator[T] {
	return DoubleIterator[T]{reverse: true}
}

// CBegin returns a read-only forward iterator on the first element.
func (l *Double[T]) CBegin() DoubleConstIterator[T] {
	return DoubleConstIterator[T]{node: l.head}
}

// CEnd returns the read-only past-the-end sentinel.
func (l *Double[T]) CEnd() DoubleConstIterator[T] {
	return DoubleConstIterator[T]{}
}

// CRBegin returns a read-only reverse iterator on the last element.
func (l *Double[T]) CRBegin() DoubleConstIterator[T] {
	return DoubleConstIterator[T]{node: l.tail, reverse: true}
}

// CREnd returns the read-only pre-the-beginning sentinel.
func (l *Double[T]) CREnd() DoubleConstIterator[T] {
	return DoubleConstIterator[T]{reverse: true}
}
