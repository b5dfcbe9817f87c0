// Package policy provides selectors that choose by the order of the offered
// candidates rather than by a preference list. They are typically placed last
// in a paramselect.FirstAvailable chain as a fallback.
package policy

import (
	"cmp"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// HighestPolicy selects the greatest candidate.
type HighestPolicy[T cmp.Ordered] struct{}

// Highest returns a HighestPolicy.
func Highest[T cmp.Ordered]() HighestPolicy[T] {
	return HighestPolicy[T]{}
}

// Select returns the maximum of candidates, or None when there are none.
func (HighestPolicy[T]) Select(candidates []T) mo.Option[T] {
	if len(candidates) == 0 {
		return mo.None[T]()
	}
	return mo.Some(lo.Max(candidates))
}

// LowestPolicy selects the smallest candidate.
type LowestPolicy[T cmp.Ordered] struct{}

// Lowest returns a LowestPolicy.
func Lowest[T cmp.Ordered]() LowestPolicy[T] {
	return LowestPolicy[T]{}
}

// Select returns the minimum of candidates, or None when there are none.
func (LowestPolicy[T]) Select(candidates []T) mo.Option[T] {
	if len(candidates) == 0 {
		return mo.None[T]()
	}
	return mo.Some(lo.Min(candidates))
}
