// Package rng provides the single random source every randomized game
// decision is routed through.
package rng

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the simulation relies on.
// Tests substitute scripted implementations to pin exact roll sequences.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// New returns a deterministic source for the given seed.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeeded returns a source seeded from the wall clock along with
// the seed used, so a run can be reproduced later.
func NewTimeSeeded() (Source, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// Shuffle permutes n elements in place using swap (Fisher-Yates).
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}

// Pick returns a uniformly chosen element of items.
// Returns the zero value when items is empty.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.Intn(len(items))]
}
