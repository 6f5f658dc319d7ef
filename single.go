package list

// Single is a singly-linked list of T. It carries the same operation set and
// policies as Double, minus everything that needs a prev link: positional
// walks always start at head, PopBack is O(n) because the new tail must be
// found by walking, and there are no reverse iterators.
//
// The zero value is an empty list ready to use.
type Single[T any] struct {
	head *snode[T]
	tail *snode[T]
	size int
}

type snode[T any] struct {
	value T
	next  *snode[T]
}

func NewSingle[T any]() *Single[T] {
	return &Single[T]{}
}

// Len returns the number of elements in the list.
func (l *Single[T]) Len() int {
	return l.size
}

// Empty reports whether the list holds no elements.
func (l *Single[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first value. Unchecked: calling Front on an empty list
// dereferences a nil head.
func (l *Single[T]) Front() T {
	return l.head.value
}

// Back returns the last value. Unchecked, like Front.
func (l *Single[T]) Back() T {
	return l.tail.value
}

// nodeAt walks forward from head to the node at index, following exactly
// index links.
func (l *Single[T]) nodeAt(index int) *snode[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// Get returns the value at index. Unchecked: index must be in [0, Len).
func (l *Single[T]) Get(index int) T {
	return l.nodeAt(index).value
}

// Set replaces the value at index. Unchecked, like Get.
func (l *Single[T]) Set(index int, value T) {
	l.nodeAt(index).value = value
}

// At returns the value at index. It is the checked counterpart of Get: an
// index outside [0, Len) yields the zero value and an *OutOfRangeError
// carrying the index and the current size.
func (l *Single[T]) At(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, &OutOfRangeError{Index: index, Size: l.size}
	}
	return l.Get(index), nil
}

// Clear removes every element, resetting the list to empty.
func (l *Single[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// PushBack appends value at the end of the list.
func (l *Single[T]) PushBack(value T) {
	n := &snode[T]{value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PushFront prepends value at the beginning of the list.
func (l *Single[T]) PushFront(value T) {
	n := &snode[T]{value: value, next: l.head}
	if l.head == nil {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PopBack removes the last element, walking the chain to find the node that
// becomes the new tail. O(n), unlike Double.PopBack. On an empty list it
// does nothing.
func (l *Single[T]) PopBack() {
	switch l.size {
	case 0:
		return
	case 1:
		l.head = nil
		l.tail = nil
		l.size = 0
	default:
		n := l.head
		for n.next != l.tail {
			n = n.next
		}
		n.next = nil
		l.tail = n
		l.size--
	}
}

// PopFront removes the first element. On an empty list it does nothing.
func (l *Single[T]) PopFront() {
	if l.size == 0 {
		return
	}
	old := l.head
	l.head = old.next
	if l.head == nil {
		l.tail = nil
	}
	old.next = nil
	l.size--
}

// Insert splices value in so that it becomes the element at index, shifting
// later elements back. The boundary indexes delegate to PushFront and
// PushBack. An index outside [0, Len] is ignored.
func (l *Single[T]) Insert(index int, value T) {
	if index < 0 || index > l.size {
		return
	}
	switch index {
	case 0:
		l.PushFront(value)
	case l.size:
		l.PushBack(value)
	default:
		prev := l.nodeAt(index - 1)
		prev.next = &snode[T]{value: value, next: prev.next}
		l.size++
	}
}

// Remove unlinks the element at index, shifting later elements forward. The
// boundary indexes delegate to PopFront and PopBack. An index outside
// [0, Len) is ignored.
func (l *Single[T]) Remove(index int) {
	if index < 0 || index >= l.size {
		return
	}
	switch index {
	case 0:
		l.PopFront()
	case l.size - 1:
		l.PopBack()
	default:
		prev := l.nodeAt(index - 1)
		old := prev.next
		prev.next = old.next
		old.next = nil
		l.size--
	}
}

// Clone returns a deep copy: a new list with its own nodes holding the same
// values in the same order.
func (l *Single[T]) Clone() *Single[T] {
	c := NewSingle[T]()
	for n := l.head; n != nil; n = n.next {
		c.PushBack(n.value)
	}
	return c
}

// Take moves the contents of src into l, dropping whatever l held. src is
// left valid and empty. Taking from itself does nothing.
func (l *Single[T]) Take(src *Single[T]) {
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
