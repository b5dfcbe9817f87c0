package paramselect

import (
	"slices"
	"strconv"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// FirstAvailable returns a selector that tries first and then each of rest
// in order, returning the first present result. If every selector reports
// absence, so does the chain.
//
// All selectors see the same candidates; an empty collection is still passed
// to each of them. Requiring first makes an empty chain impossible to build.
func FirstAvailable[T comparable](first Selector[T], rest ...Selector[T]) Selector[T] {
	chain := make([]Selector[T], 0, len(rest)+1)
	chain = append(chain, first)
	chain = append(chain, rest...)

	for i, s := range chain {
		if s == nil {
			panic(nilSelectorMessage(i))
		}
	}

	return SelectorFunc[T](func(candidates []T) mo.Option[T] {
		for _, s := range chain {
			if result := s.Select(candidates); result.IsPresent() {
				return result
			}
		}
		return mo.None[T]()
	})
}

// FirstAvailableOf returns a selector that walks preferences in order of
// importance and returns the first one offered in candidates.
//
// Membership uses ==. An empty preference list always selects nothing.
// The preferences are copied, so later changes to the caller's slice have no
// effect.
func FirstAvailableOf[T comparable](preferences ...T) Selector[T] {
	prefs := slices.Clone(preferences)

	return SelectorFunc[T](func(candidates []T) mo.Option[T] {
		for _, p := range prefs {
			if lo.Contains(candidates, p) {
				return mo.Some(p)
			}
		}
		return mo.None[T]()
	})
}

// Single returns a selector that picks preference when it is offered.
func Single[T comparable](preference T) Selector[T] {
	return SelectorFunc[T](func(candidates []T) mo.Option[T] {
		if lo.Contains(candidates, preference) {
			return mo.Some(preference)
		}
		return mo.None[T]()
	})
}

// Nothing returns a selector that never selects anything.
func Nothing[T comparable]() Selector[T] {
	return SelectorFunc[T](func([]T) mo.Option[T] {
		return mo.None[T]()
	})
}

// FirstAvailableOfFunc is FirstAvailableOf with a caller supplied equality.
// The matching candidate is returned, not the preference, so the result is
// always drawn from candidates.
func FirstAvailableOfFunc[T comparable](eq func(preference, candidate T) bool, preferences ...T) Selector[T] {
	if eq == nil {
		panic("paramselect: FirstAvailableOfFunc: nil equality func")
	}
	prefs := slices.Clone(preferences)

	return SelectorFunc[T](func(candidates []T) mo.Option[T] {
		for _, p := range prefs {
			if match, ok := findMatch(candidates, p, eq); ok {
				return mo.Some(match)
			}
		}
		return mo.None[T]()
	})
}

// SingleFunc is Single with a caller supplied equality.
func SingleFunc[T comparable](preference T, eq func(preference, candidate T) bool) Selector[T] {
	if eq == nil {
		panic("paramselect: SingleFunc: nil equality func")
	}

	return SelectorFunc[T](func(candidates []T) mo.Option[T] {
		if match, ok := findMatch(candidates, preference, eq); ok {
			return mo.Some(match)
		}
		return mo.None[T]()
	})
}

func findMatch[T comparable](candidates []T, preference T, eq func(preference, candidate T) bool) (T, bool) {
	return lo.Find(candidates, func(c T) bool {
		return eq(preference, c)
	})
}

func nilSelectorMessage(i int) string {
	if i == 0 {
		return "paramselect: FirstAvailable: first selector is nil"
	}
	return "paramselect: FirstAvailable: selector " + strconv.Itoa(i) + " is nil"
}
