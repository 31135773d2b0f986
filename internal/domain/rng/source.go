// Package rng is a deterministic random source keyed by a string seed.
//
// Every method that returns a random value consumes exactly one draw, in call
// order, so a fixed seed and a fixed sequence of calls always yield the same
// values regardless of which methods are interleaved. Methods that fail on bad
// arguments return before drawing.
//
// A Source is not safe for concurrent use; create one per generation.
package rng

import (
	"math"

	"hexforge/internal/domain/apperr"
)

type Source struct {
	seed  string
	state *arc4
	draws int64
}

// New accepts any seed, the empty string included.
func New(seed string) *Source {
	return &Source{seed: seed, state: newARC4(mixKey(seed))}
}

func (s *Source) Seed() string {
	return s.seed
}

// Draws reports how many values have been drawn so far.
func (s *Source) Draws() int64 {
	return s.draws
}

// Float returns a value in [0, 1).
func (s *Source) Float() float64 {
	s.draws++
	return s.state.float()
}

// Int returns an integer in [min, max] inclusive.
func (s *Source) Int(min, max int) (int, error) {
	if max < min {
		return 0, apperr.New(apperr.CodeInvalidRange, "rng.int called with max < min", apperr.Context{
			"seed": s.seed,
			"min":  min,
			"max":  max,
		})
	}
	return int(math.Floor(s.Float()*float64(max-min+1))) + min, nil
}

// Chance reports whether a single draw falls below probability.
func (s *Source) Chance(probability float64) bool {
	return s.Float() < probability
}

// index returns an index in [0, n).
func (s *Source) index(n int, ctx apperr.Context) (int, error) {
	if n <= 0 {
		return 0, apperr.New(apperr.CodeEmptyCollection, "rng.pick called with empty slice", withSeed(ctx, s.seed))
	}
	return int(math.Floor(s.Float() * float64(n))), nil
}

// Pick returns one element of items. An empty slice is a programming error and
// yields apperr.ErrEmptyCollection carrying the seed and ctx.
func Pick[T any](s *Source, items []T, ctx apperr.Context) (T, error) {
	i, err := s.index(len(items), ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return items[i], nil
}

func withSeed(ctx apperr.Context, seed string) apperr.Context {
	out := make(apperr.Context, len(ctx)+2)
	for k, v := range ctx {
		out[k] = v
	}
	out["seed"] = seed
	if _, ok := out["system"]; !ok {
		out["system"] = "RNG"
	}
	return out
}
