package paramselect

import "github.com/samber/mo"

// Selector picks at most one item from a candidate collection.
//
// A present result is always a member of candidates. Absence (mo.None) is the
// normal "nothing acceptable" outcome, not an error. Selectors are immutable
// once built and may be shared between goroutines.
type Selector[T comparable] interface {
	// Select returns the chosen candidate, or None if no candidate is acceptable.
	// candidates is only read and never retained.
	Select(candidates []T) mo.Option[T]
}

// SelectorFunc adapts an ordinary function to the Selector interface.
type SelectorFunc[T comparable] func(candidates []T) mo.Option[T]

// Select calls f(candidates).
func (f SelectorFunc[T]) Select(candidates []T) mo.Option[T] {
	return f(candidates)
}
