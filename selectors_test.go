package paramselect_test

import (
	"strings"
	"testing"

	ps "github.com/ineyio/paramselect"
	"github.com/ineyio/paramselect/selector/mock"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSelected[T comparable](t *testing.T, want T, got mo.Option[T]) {
	t.Helper()
	v, ok := got.Get()
	require.True(t, ok, "expected a selection")
	assert.Equal(t, want, v)
}

func TestSingle(t *testing.T) {
	requireSelected(t, 5, ps.Single(5).Select([]int{3, 5, 7}))
	assert.True(t, ps.Single(5).Select([]int{3, 7}).IsAbsent())
	assert.True(t, ps.Single(5).Select(nil).IsAbsent())
}

func TestNothing(t *testing.T) {
	assert.True(t, ps.Nothing[int]().Select(nil).IsAbsent())
	assert.True(t, ps.Nothing[int]().Select([]int{}).IsAbsent())
	assert.True(t, ps.Nothing[int]().Select([]int{1, 2, 3}).IsAbsent())
}

func TestFirstAvailableOf_EarliestPreferenceWins(t *testing.T) {
	requireSelected(t, 2, ps.FirstAvailableOf(1, 2, 3).Select([]int{2, 3}))
	requireSelected(t, 3, ps.FirstAvailableOf(1, 3, 2).Select([]int{2, 3}))
}

func TestFirstAvailableOf_CandidateOrderIrrelevant(t *testing.T) {
	s := ps.FirstAvailableOf("auto", "macro")
	requireSelected(t, "auto", s.Select([]string{"macro", "auto"}))
	requireSelected(t, "auto", s.Select([]string{"auto", "macro"}))
}

func TestFirstAvailableOf_NoMatch(t *testing.T) {
	assert.True(t, ps.FirstAvailableOf(1, 2, 3).Select([]int{4, 5}).IsAbsent())
	assert.True(t, ps.FirstAvailableOf[int]().Select([]int{1, 2}).IsAbsent())
	assert.True(t, ps.FirstAvailableOf(1).Select(nil).IsAbsent())
}

func TestFirstAvailableOf_Duplicates(t *testing.T) {
	requireSelected(t, 2, ps.FirstAvailableOf(2, 2, 1, 2).Select([]int{1, 2}))
}

func TestFirstAvailableOf_PreferencesCopied(t *testing.T) {
	prefs := []int{1, 2}
	s := ps.FirstAvailableOf(prefs...)
	prefs[0] = 9

	requireSelected(t, 1, s.Select([]int{1, 9}))
}

func TestFirstAvailable_FallsThrough(t *testing.T) {
	s := ps.FirstAvailable(ps.Single(5), ps.Single(7))
	requireSelected(t, 7, s.Select([]int{7}))
	requireSelected(t, 5, s.Select([]int{5, 7}))
	assert.True(t, s.Select([]int{1}).IsAbsent())
}

func TestFirstAvailable_OrderSensitive(t *testing.T) {
	c := []int{5, 7}
	requireSelected(t, 5, ps.FirstAvailable(ps.Single(5), ps.Single(7)).Select(c))
	requireSelected(t, 7, ps.FirstAvailable(ps.Single(7), ps.Single(5)).Select(c))
}

func TestFirstAvailable_SingleSelector(t *testing.T) {
	requireSelected(t, 3, ps.FirstAvailable(ps.Single(3)).Select([]int{3}))
	assert.True(t, ps.FirstAvailable(ps.Nothing[int]()).Select([]int{3}).IsAbsent())
}

func TestFirstAvailable_StopsAtFirstSelection(t *testing.T) {
	a := mock.New(mock.WithResult(1))
	b := mock.New(mock.WithResult(2))

	requireSelected(t, 1, ps.FirstAvailable[int](a, b).Select([]int{1, 2}))
	assert.Equal(t, int64(1), a.CallCount())
	assert.Equal(t, int64(0), b.CallCount())
}

func TestFirstAvailable_EmptyCandidatesReachEverySelector(t *testing.T) {
	a := mock.New[int]()
	b := mock.New[int]()
	c := mock.New[int]()

	assert.True(t, ps.FirstAvailable[int](a, b, c).Select(nil).IsAbsent())
	for _, m := range []*mock.Selector[int]{a, b, c} {
		assert.Equal(t, int64(1), m.CallCount())
		assert.Equal(t, int64(0), m.LastOffered())
	}
}

func TestFirstAvailable_NilSelectorPanics(t *testing.T) {
	assert.PanicsWithValue(t, "paramselect: FirstAvailable: first selector is nil", func() {
		ps.FirstAvailable[int](nil)
	})
	assert.PanicsWithValue(t, "paramselect: FirstAvailable: selector 2 is nil", func() {
		ps.FirstAvailable[int](ps.Single(1), ps.Single(2), nil)
	})
}

func TestFirstAvailable_Nested(t *testing.T) {
	s := ps.FirstAvailable(
		ps.FirstAvailable(ps.Single("4k"), ps.Single("1080p")),
		ps.FirstAvailableOf("720p", "480p"),
		ps.Nothing[string](),
	)
	requireSelected(t, "1080p", s.Select([]string{"480p", "1080p"}))
	requireSelected(t, "480p", s.Select([]string{"480p"}))
	assert.True(t, s.Select([]string{"240p"}).IsAbsent())
}

func TestSelectorFunc(t *testing.T) {
	var s ps.Selector[int] = ps.SelectorFunc[int](func(c []int) mo.Option[int] {
		if len(c) == 0 {
			return mo.None[int]()
		}
		return mo.Some(c[len(c)-1])
	})
	requireSelected(t, 3, s.Select([]int{1, 2, 3}))
}

func TestSingleFunc_ReturnsCandidate(t *testing.T) {
	s := ps.SingleFunc("AUTO", strings.EqualFold)
	requireSelected(t, "auto", s.Select([]string{"macro", "auto"}))
	assert.True(t, s.Select([]string{"macro"}).IsAbsent())
}

func TestFirstAvailableOfFunc(t *testing.T) {
	s := ps.FirstAvailableOfFunc(strings.EqualFold, "Torch", "On", "Auto")
	requireSelected(t, "on", s.Select([]string{"auto", "on"}))
	assert.True(t, s.Select([]string{"off"}).IsAbsent())
}

func TestFuncVariants_NilEqualityPanics(t *testing.T) {
	assert.Panics(t, func() { ps.SingleFunc[string]("a", nil) })
	assert.Panics(t, func() { ps.FirstAvailableOfFunc[string](nil, "a") })
}

func TestIdempotent(t *testing.T) {
	s := ps.FirstAvailable(ps.FirstAvailableOf(4, 2), ps.Single(1))
	c := []int{1, 2}
	first := s.Select(c)
	second := s.Select(c)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{1, 2}, c)
}

func TestFirstAvailable_MockFallback(t *testing.T) {
	fallback := mock.New(mock.WithFirstOffered[string]())
	s := ps.FirstAvailable[string](ps.Single("hdr"), fallback)

	requireSelected(t, "hdr", s.Select([]string{"auto", "hdr"}))
	assert.Equal(t, int64(0), fallback.CallCount())

	requireSelected(t, "auto", s.Select([]string{"auto", "night"}))
	assert.Equal(t, int64(1), fallback.CallCount())
	assert.Equal(t, int64(2), fallback.LastOffered())
}
