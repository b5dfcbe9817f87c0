// Package mock provides a recording Selector for tests.
package mock

import (
	"sync/atomic"

	"github.com/samber/mo"
)

// Selector is a mock selector that returns a fixed result and counts calls.
type Selector[T comparable] struct {
	result     mo.Option[T]
	fromOffer  bool
	callCount  atomic.Int64
	lastOffers atomic.Int64
}

// Option configures a mock Selector.
type Option[T comparable] func(*Selector[T])

// New creates a mock selector. Without options it always reports absence.
func New[T comparable](opts ...Option[T]) *Selector[T] {
	s := &Selector[T]{result: mo.None[T]()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithResult makes the selector return v whenever v is offered.
func WithResult[T comparable](v T) Option[T] {
	return func(s *Selector[T]) { s.result = mo.Some(v) }
}

// WithFirstOffered makes the selector return the first offered candidate.
func WithFirstOffered[T comparable]() Option[T] {
	return func(s *Selector[T]) { s.fromOffer = true }
}

// Select records the call and returns the configured result.
func (s *Selector[T]) Select(candidates []T) mo.Option[T] {
	s.callCount.Add(1)
	s.lastOffers.Store(int64(len(candidates)))

	if s.fromOffer {
		if len(candidates) == 0 {
			return mo.None[T]()
		}
		return mo.Some(candidates[0])
	}

	v, ok := s.result.Get()
	if !ok {
		return mo.None[T]()
	}
	for _, c := range candidates {
		if c == v {
			return mo.Some(v)
		}
	}
	return mo.None[T]()
}

// CallCount returns the number of Select calls.
func (s *Selector[T]) CallCount() int64 {
	return s.callCount.Load()
}

// LastOffered returns the number of candidates passed to the latest call.
func (s *Selector[T]) LastOffered() int64 {
	return s.lastOffers.Load()
}
