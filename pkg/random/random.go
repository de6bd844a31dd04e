// Package random holds the single random source threaded through every
// generator, plus the weighted-choice primitive built on it.
package random

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Source is the random handle passed explicitly to generators.
type Source = gofakeit.Faker

// New returns a source seeded with seed. A zero seed draws from the clock,
// so only non-zero seeds give reproducible runs.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return gofakeit.New(seed)
}

// Outcome is one row of a probability table.
type Outcome[T any] struct {
	Value  T
	Weight float64
}

// Choose draws one value from table, proportionally to the weights.
// Rows are scanned in order, so the table order is part of the contract for
// seeded runs. Non-positive weights never win. Panics on an empty table.
func Choose[T any](src *Source, table []Outcome[T]) T {
	if len(table) == 0 {
		panic("random: empty outcome table")
	}

	var total float64
	for _, o := range table {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	if total <= 0 {
		return table[0].Value
	}

	r := src.Float64() * total
	for _, o := range table {
		if o.Weight <= 0 {
			continue
		}
		if r < o.Weight {
			return o.Value
		}
		r -= o.Weight
	}

	// Float rounding can leave r marginally above the last bucket.
	for i := len(table) - 1; i >= 0; i-- {
		if table[i].Weight > 0 {
			return table[i].Value
		}
	}
	return table[0].Value
}

// Chance returns true with probability p.
func Chance(src *Source, p float64) bool {
	return src.Float64() < p
}

// Between returns an int uniformly drawn from [lo, hi].
func Between(src *Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return src.IntRange(lo, hi)
}

// Pick returns one element of pool uniformly. Panics on an empty pool.
func Pick[T any](src *Source, pool []T) T {
	return pool[src.IntRange(0, len(pool)-1)]
}

// Sample returns n distinct elements of pool in random order, never more than len(pool).
// A negative n is treated as zero. The input slice is left untouched.
func Sample[T any](src *Source, pool []T, n int) []T {
	n = max(n, 0)
	out := Shuffled(src, pool)
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Shuffled returns a shuffled copy of pool.
func Shuffled[T any](src *Source, pool []T) []T {
	out := make([]T, len(pool))
	copy(out, pool)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntRange(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Digits returns n random decimal digits.
func Digits(src *Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + src.IntRange(0, 9))
	}
	return string(b)
}
