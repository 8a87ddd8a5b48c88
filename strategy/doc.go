// Package strategy wraps a sequence with an interchangeable sorting
// algorithm chosen when the wrapper is built.
//
// # Overview
//
// Two algorithms implement the Algorithm interface:
//
//   - Insertion: stable insertion sort, O(n²), for short inputs
//   - Library: slices.SortFunc, O(n log n), for long inputs
//
// A Context binds one of them by Variant and forwards every call to it:
//
//	ctx, err := strategy.NewContext([]int{5, 3, 1, 4, 1, 5, 9, 2, 6}, strategy.Insertion)
//	if err != nil {
//		return err // *UnknownStrategyError for an unrecognized variant
//	}
//	ctx.Sort()        // [1 1 2 3 4 5 5 6 9]
//	ctx.ReverseSort() // [9 6 5 5 4 3 2 1 1]
//	ctx.Evens()       // [5 1 9 6]
//	ctx.Odds()        // [3 4 5 2]
//
// The Auto variant chooses Insertion when the input has at most
// Config.Threshold elements and Library otherwise.
//
// # Input ownership
//
// Every constructor copies its input. Sorting never mutates the caller's
// slice nor the stored copy, so Evens and Odds always describe the
// original order.
//
// # Direction
//
// Sort and ReverseSort run the same algorithm; ReverseSort flips the
// comparison. For Insertion both directions are stable. For inputs without
// duplicates ReverseSort equals Sort reversed, for either variant.
//
// # Delegation
//
// Context implements Algorithm with explicit forwarding methods. Call
// dispatches a capability by name (sort, reverse_sort, evens, odds) and
// reports *UnsupportedOperationError for anything else.
package strategy
