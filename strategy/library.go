package strategy

import (
	"cmp"
	"slices"
)

// LibrarySort sorts with slices.SortFunc (pattern-defeating quicksort).
// The relative order of equal elements is unspecified.
type LibrarySort[T any] struct {
	list[T]
}

var _ Algorithm[int] = (*LibrarySort[int])(nil)

// NewLibrary creates a library sort strategy over a copy of seq.
func NewLibrary[T cmp.Ordered](seq []T) *LibrarySort[T] {
	return NewLibraryFunc(seq, cmp.Compare[T])
}

// NewLibraryFunc is NewLibrary with a custom comparison.
func NewLibraryFunc[T any](seq []T, compare func(a, b T) int) *LibrarySort[T] {
	return &LibrarySort[T]{list: newList(seq, compare)}
}

// Name implements Algorithm.
func (s *LibrarySort[T]) Name() Variant { return Library }

// Sort implements Algorithm.
func (s *LibrarySort[T]) Sort() []T {
	return s.sort(ascending)
}

// ReverseSort implements Algorithm.
func (s *LibrarySort[T]) ReverseSort() []T {
	return s.sort(descending)
}

func (s *LibrarySort[T]) sort(o order) []T {
	a := slices.Clone(s.items)
	slices.SortFunc(a, s.oriented(o))
	return a
}
