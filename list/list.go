// Package list implements a persistent singly-linked list.
//
// A List value is immutable: Cons and Tail return new List values that
// share the receiver's node chain instead of copying it. Sharing is
// safe because nodes are never written after construction; independent
// List values may therefore be read concurrently without locking.
// Dead chains are reclaimed by the garbage collector, which walks them
// iteratively, so discarding an arbitrarily long list never risks
// stack exhaustion.
package list

import (
	"fmt"
	"strings"
)

// List is a persistent list of elements of type T. The zero value is
// an empty list ready to use.
type List[T any] struct {
	head *node[T]
}

type node[T any] struct {
	elem  T
	next  *node[T]
	count int
}

// New returns an empty list.
func New[T any]() List[T] {
	return List[T]{}
}

// Cons returns a new list whose head is elem and whose tail is l. The
// receiver is unchanged and keeps working independently; only one new
// node is allocated.
func (l List[T]) Cons(elem T) List[T] {
	return List[T]{head: &node[T]{
		elem:  elem,
		next:  l.head,
		count: l.Len() + 1,
	}}
}

// Head returns the first element of the list. The second return value
// is false if the list is empty.
func (l List[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.elem, true
}

// Tail returns the list without its first element, sharing the
// receiver's chain. The tail of an empty list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return List[T]{}
	}
	return List[T]{head: l.head.next}
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements in the list.
func (l List[T]) Len() int {
	if l.head == nil {
		return 0
	}
	return l.head.count
}

// Iter returns a cursor over the list from head to end. Each call
// returns an independent cursor; iterating does not consume or mutate
// the list.
func (l List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{next: l.head}
}

// Iterator walks a list front to back.
type Iterator[T any] struct {
	next *node[T]
}

// Next returns the next element, or false when the list is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	elem := it.next.elem
	it.next = it.next.next
	return elem, true
}

// FromSlice builds a list holding the elements of s in order,
// equivalent to folding Cons over s in reverse.
func FromSlice[T any](s []T) List[T] {
	var l List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = l.Cons(s[i])
	}
	return l
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether a and b have the same length and pairwise
// elements satisfying eq.
func EqualFunc[T, U any](a List[T], b List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	na, nb := a.head, b.head
	for na != nil {
		if !eq(na.elem, nb.elem) {
			return false
		}
		na, nb = na.next, nb.next
	}
	return true
}

func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.elem)
	}
	sb.WriteByte(')')
	return sb.String()
}
