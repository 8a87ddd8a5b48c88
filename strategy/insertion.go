package strategy

import (
	"cmp"
	"slices"
)

// InsertionSort sorts with insertion sort. It is stable in both
// directions: equal elements keep their input order.
type InsertionSort[T any] struct {
	list[T]
}

var _ Algorithm[int] = (*InsertionSort[int])(nil)

// NewInsertion creates an insertion sort strategy over a copy of seq.
func NewInsertion[T cmp.Ordered](seq []T) *InsertionSort[T] {
	return NewInsertionFunc(seq, cmp.Compare[T])
}

// NewInsertionFunc is NewInsertion with a custom comparison.
func NewInsertionFunc[T any](seq []T, compare func(a, b T) int) *InsertionSort[T] {
	return &InsertionSort[T]{list: newList(seq, compare)}
}

// Name implements Algorithm.
func (s *InsertionSort[T]) Name() Variant { return Insertion }

// Sort implements Algorithm.
func (s *InsertionSort[T]) Sort() []T {
	return s.sort(ascending)
}

// ReverseSort implements Algorithm.
func (s *InsertionSort[T]) ReverseSort() []T {
	return s.sort(descending)
}

func (s *InsertionSort[T]) sort(o order) []T {
	compare := s.oriented(o)
	a := slices.Clone(s.items)

	for i := 1; i < len(a); i++ {
		curr := a[i]
		j := i - 1
		// strictly greater keeps equal elements in place
		for j >= 0 && compare(a[j], curr) > 0 {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = curr
	}

	return a
}
