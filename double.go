// Package list implements two node-based sequential containers: Double, a
// doubly-linked list, and Single, a singly-linked list. Both support
// positional access by index, insertion and removal at arbitrary positions,
// deep copying, O(1) ownership transfer, and iterator families over the
// underlying node chain.
//
// The containers deliberately expose the mechanics that production containers
// hide. Linkage is raw pointers, positional access is a pointer chase, and
// each operation follows one of three documented policies:
//
//   - unchecked: Front, Back, Get, Set and iterator dereferences perform no
//     bounds check; misuse dereferences a nil node.
//   - checked: At returns an *OutOfRangeError when the index is not less
//     than Len.
//   - silent no-op: Insert past the end, Remove out of range, and PopBack /
//     PopFront on an empty list do nothing and report nothing.
//
// Neither container is safe for concurrent use.
package list

// Double is a doubly-linked list of T.
//
// The zero value is an empty list ready to use. A Double owns its nodes
// exclusively: values move in and out by copy and nodes are never shared
// between lists, so no external code can re-link or outlive the chain.
type Double[T any] struct {
	head *dnode[T]
	tail *dnode[T]
	size int
}

type dnode[T any] struct {
	value T
	next  *dnode[T]
	prev  *dnode[T]
}

func NewDouble[T any]() *Double[T] {
	return &Double[T]{}
}

// Len returns the number of elements in the list.
func (l *Double[T]) Len() int {
	return l.size
}

// Empty reports whether the list holds no elements.
func (l *Double[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first value. Unchecked: calling Front on an empty list
// dereferences a nil head.
func (l *Double[T]) Front() T {
	return l.head.value
}

// Back returns the last value. Unchecked, like Front.
func (l *Double[T]) Back() T {
	return l.tail.value
}

// locate walks to the node at index from whichever end is closer: indexes in
// the tail half walk backward from tail, everything else (including the
// exact midpoint) walks forward from head. hops is the number of links
// followed, at most size/2.
func (l *Double[T]) locate(index int) (n *dnode[T], hops int) {
	if l.size-1-index < index {
		n = l.tail
		for i := l.size - 1; i > index; i-- {
			n = n.prev
			hops++
		}
		return n, hops
	}
	n = l.head
	for i := 0; i < index; i++ {
		n = n.next
		hops++
	}
	return n, hops
}

// Get returns the value at index, walking from the nearest end. Unchecked:
// index must be in [0, Len).
func (l *Double[T]) Get(index int) T {
	n, _ := l.locate(index)
	return n.value
}

// Set replaces the value at index. Unchecked, like Get.
func (l *Double[T]) Set(index int, value T) {
	n, _ := l.locate(index)
	n.value = value
}

// At returns the value at index. It is the checked counterpart of Get: an
// index outside [0, Len) yields the zero value and an *OutOfRangeError
// carrying the index and the current size.
func (l *Double[T]) At(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, &OutOfRangeError{Index: index, Size: l.size}
	}
	return l.Get(index), nil
}

// Clear removes every element, resetting the list to empty. Links are
// severed node by node so a node held elsewhere does not keep the rest of
// the old chain reachable.
func (l *Double[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		n.next = nil
		n.prev = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// PushBack appends value at the end of the list.
func (l *Double[T]) PushBack(value T) {
	n := &dnode[T]{value: value, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PushFront prepends value at the beginning of the list.
func (l *Double[T]) PushFront(value T) {
	n := &dnode[T]{value: value, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// PopBack removes the last element. On an empty list it does nothing.
func (l *Double[T]) PopBack() {
	if l.size == 0 {
		return
	}
	old := l.tail
	l.tail = old.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	old.prev = nil
	l.size--
}

// PopFront removes the first element. On an empty list it does nothing.
func (l *Double[T]) PopFront() {
	if l.size == 0 {
		return
	}
	old := l.head
	l.head = old.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	old.next = nil
	l.size--
}

// Insert splices value in so that it becomes the element at index, shifting
// later elements back. The boundary indexes delegate to PushFront and
// PushBack. An index outside [0, Len] is ignored.
func (l *Double[T]) Insert(index int, value T) {
	if index < 0 || index > l.size {
		return
	}
	switch index {
	case 0:
		l.PushFront(value)
	case l.size:
		l.PushBack(value)
	default:
		at, _ := l.locate(index)
		n := &dnode[T]{value: value, next: at, prev: at.prev}
		at.prev.next = n
		at.prev = n
		l.size++
	}
}

// Remove unlinks the element at index, shifting later elements forward. The
// boundary indexes delegate to PopFront and PopBack. An index outside
// [0, Len) is ignored.
func (l *Double[T]) Remove(index int) {
	if index < 0 || index >= l.size {
		return
	}
	switch index {
	case 0:
		l.PopFront()
	case l.size - 1:
		l.PopBack()
	default:
		n, _ := l.locate(index)
		n.prev.next = n.next
		n.next.prev = n.prev
		n.next = nil
		n.prev = nil
		l.size--
	}
}

// Clone returns a deep copy: a new list with its own nodes holding the same
// values in the same order. Mutating either list never affects the other.
func (l *Double[T]) Clone() *Double[T] {
	c := NewDouble[T]()
	for n := l.head; n != nil; n = n.next {
		c.PushBack(n.value)
	}
	return c
}

// Take moves the contents of src into l, dropping whatever l held. src is
// left valid and empty. Taking from itself does nothing. O(1) beyond
// clearing the receiver.
func (l *Double[T]) Take(src *Double[T]) {
	if l == src {
		return
	}
	l.Clear()
	l.head = src.head
	l.tail = src.tail
	l.size = src.size
	src.head = nil
	src.tail = nil
	src.size = 0
}
