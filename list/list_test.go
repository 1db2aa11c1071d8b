package list

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsHeadTail(t *testing.T) {
	l1 := New[int]()
	_, ok := l1.Head()
	assert.False(t, ok)

	l2 := l1.Cons(1).Cons(2).Cons(3)
	head, ok := l2.Head()
	assert.True(t, ok)
	assert.Equal(t, 3, head)

	l3 := l2.Tail()
	head, _ = l3.Head()
	assert.Equal(t, 2, head)

	l4 := l3.Tail()
	head, _ = l4.Head()
	assert.Equal(t, 1, head)

	l5 := l4.Tail()
	_, ok = l5.Head()
	assert.False(t, ok)

	// tail of an empty list stays empty
	l6 := l5.Tail()
	_, ok = l6.Head()
	assert.False(t, ok)
}

func TestListsPersistAfterCons(t *testing.T) {
	l1 := New[int]().Cons(1).Cons(2)

	l2 := l1.Cons(3)
	assert.Equal(t, []int{3, 2, 1}, collect(l2))
	assert.Equal(t, []int{2, 1}, collect(l1))

	l3 := l1.Cons(4)
	assert.Equal(t, []int{4, 2, 1}, collect(l3))
	assert.Equal(t, []int{3, 2, 1}, collect(l2))
	assert.Equal(t, []int{2, 1}, collect(l1))
}

func TestIsEmpty(t *testing.T) {
	l := New[string]()
	assert.True(t, l.IsEmpty())
	assert.False(t, l.Cons("x").IsEmpty())
	assert.True(t, l.Cons("x").Tail().IsEmpty())
}

func TestLen(t *testing.T) {
	l := New[int]()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 3, l.Cons(1).Cons(2).Cons(3).Len())
	assert.Equal(t, 2, l.Cons(1).Cons(2).Cons(3).Tail().Len())
}

func TestFromSlicePreservesOrder(t *testing.T) {
	testCases := [][]int{
		{},
		{1},
		{1, 2, 3},
		{5, 4, 3, 2, 1, 0},
	}

	for _, in := range testCases {
		assert.Equal(t, in, collect(FromSlice(in)))
	}
}

func TestIterIndependentCursors(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c"})

	it1 := l.Iter()
	elem, ok := it1.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", elem)

	// a second cursor starts from the head again
	it2 := l.Iter()
	elem, ok = it2.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", elem)

	elem, _ = it1.Next()
	assert.Equal(t, "b", elem)

	// iterating does not consume the list
	assert.Equal(t, []string{"a", "b", "c"}, collect(l))
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		A, B  []int
		Equal bool
	}{
		{[]int{}, []int{}, true},
		{[]int{1}, []int{1}, true},
		{[]int{1, 2, 3}, []int{1, 2, 3}, true},
		{[]int{1, 2, 3}, []int{3, 2, 1}, false},
		{[]int{1, 2}, []int{1, 2, 3}, false},
		{[]int{1, 2, 3}, []int{1, 2}, false},
		{[]int{}, []int{1}, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Equal, Equal(FromSlice(tc.A), FromSlice(tc.B)), "%v vs %v", tc.A, tc.B)
	}
}

func TestEqualSharedTail(t *testing.T) {
	base := FromSlice([]int{2, 3})
	a := base.Cons(1)
	b := FromSlice([]int{1, 2, 3})
	assert.True(t, Equal(a, b))
}

func TestEqualFunc(t *testing.T) {
	a := FromSlice([]string{"A", "B"})
	b := FromSlice([]string{"a", "b"})
	assert.True(t, EqualFunc(a, b, strings.EqualFold))
	assert.False(t, EqualFunc(a, b, func(x, y string) bool { return x == y }))
}

func TestString(t *testing.T) {
	assert.Equal(t, "()", New[int]().String())
	assert.Equal(t, "(1 2 3)", FromSlice([]int{1, 2, 3}).String())
	assert.Equal(t, "(a b)", FromSlice([]string{"a", "b"}).String())
}

func collect[T any](l List[T]) []T {
	out := []T{}
	for it := l.Iter(); ; {
		elem, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, elem)
	}
}
