package policy

import "github.com/samber/mo"

// FirstPolicy selects whatever the caller offered first.
type FirstPolicy[T comparable] struct{}

// First returns a FirstPolicy.
func First[T comparable]() FirstPolicy[T] {
	return FirstPolicy[T]{}
}

// Select returns candidates[0], or None for an empty collection.
func (FirstPolicy[T]) Select(candidates []T) mo.Option[T] {
	if len(candidates) == 0 {
		return mo.None[T]()
	}
	return mo.Some(candidates[0])
}
