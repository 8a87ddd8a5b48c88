package strategy

import (
	"slices"
	"strings"
)

// Algorithm is the capability set every list handling strategy exposes.
// Implementations work on their own copy of the input and never mutate it.
type Algorithm[T any] interface {
	// Name returns the variant implemented.
	Name() Variant
	// Sort returns the elements in ascending order.
	Sort() []T
	// ReverseSort returns the elements in descending order.
	ReverseSort() []T
	// Evens returns the elements at even positions of the original input.
	Evens() []T
	// Odds returns the elements at odd positions of the original input.
	Odds() []T
}

// Variant identifies an algorithm implementation.
type Variant string

const (
	// Insertion is a stable O(n²) insertion sort meant for short inputs.
	Insertion Variant = "insertion"
	// Library delegates to the standard library sort, O(n log n), meant
	// for long inputs.
	Library Variant = "library"
	// Auto picks Insertion or Library from the input length and
	// Config.Threshold.
	Auto Variant = "auto"
)

// aliases maps alternative spellings to a Variant.
var aliases = map[string]Variant{
	"insertion": Insertion,
	"short":     Insertion,
	"library":   Library,
	"long":      Library,
	"auto":      Auto,
}

// Variants lists the canonical variant names.
func Variants() []Variant {
	return []Variant{Insertion, Library, Auto}
}

// Valid reports whether v is one of the canonical variants.
func (v Variant) Valid() bool {
	switch v {
	case Insertion, Library, Auto:
		return true
	}
	return false
}

// ParseVariant resolves a case-insensitive variant name. "short" and
// "long" are accepted as aliases for Insertion and Library.
func ParseVariant(name string) (Variant, error) {
	if v, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v, nil
	}
	return "", &UnknownStrategyError{Variant: name}
}

// order is the single comparison direction flag shared by both variants.
type order int

const (
	ascending  order = 1
	descending order = -1
)

// list holds the input copy and the element comparison. The positional
// views live here so they are identical for every variant.
type list[T any] struct {
	items   []T
	compare func(a, b T) int
}

func newList[T any](seq []T, compare func(a, b T) int) list[T] {
	return list[T]{items: slices.Clone(seq), compare: compare}
}

// Evens returns the elements at even 0-based positions of the input.
func (l list[T]) Evens() []T {
	return l.stride(0)
}

// Odds returns the elements at odd 0-based positions of the input.
func (l list[T]) Odds() []T {
	return l.stride(1)
}

func (l list[T]) stride(start int) []T {
	out := make([]T, 0, (len(l.items)+1-start)/2)
	for i := start; i < len(l.items); i += 2 {
		out = append(out, l.items[i])
	}
	return out
}

func (l list[T]) oriented(o order) func(a, b T) int {
	if o == descending {
		return func(a, b T) int { return l.compare(b, a) }
	}
	return l.compare
}
