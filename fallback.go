package choose

import (
	"context"
	"errors"
)

// FallbackFunc is the generic completion prompt a Selector delegates to when
// single-key shortcuts are not viable (too many candidates) or when the user
// declines them. It receives the original request untouched, so fallback
// behaves as if shortcut mode had never been attempted, and returns the
// value the user committed to.
//
// The function is injected at construction time with WithFallback and is
// only read during an invocation; swap it between invocations only.
type FallbackFunc func(ctx context.Context, req Request) (string, error)

// delegate hands the original request to the configured fallback (or the
// built-in search prompt) and wraps the result as a fallback outcome. The
// user dismissing the fallback is a normal Cancelled outcome; genuine
// fallback faults propagate unchanged.
func (s *Selector) delegate(ctx context.Context, req Request) (Result, error) {
	fallback := s.fallback
	if fallback == nil {
		fallback = s.searchFallback
	}

	value, err := fallback(ctx, req)
	if err != nil {
		if errors.Is(err, ErrInterrupted) || errors.Is(err, ErrEOF) {
			return Result{Outcome: OutcomeCancelled}, nil
		}
		return Result{}, err
	}

	s.remember(value)
	return Result{Outcome: OutcomeFallback, Value: value}, nil
}
