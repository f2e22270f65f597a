// Package anyhash provides hash functions for use with
// the hash containers in this module.
//
// A [Hasher] maps a key to an unsigned 64-bit integer. Hashers are
// small values: containers store them by value and copy them freely,
// so a Hasher must not depend on its own address.
package anyhash

import (
	"hash/maphash"
)

// A Hasher defines a hash function over values of type T.
//
// Hash must be deterministic for the lifetime of the Hasher value:
// calling it twice with equal arguments must return the same
// result, and copies of the Hasher must agree with the original.
type Hasher[T any] interface {
	Hash(T) uint64
}

// defaultSeed is used by the zero Comparable.
var defaultSeed = maphash.MakeSeed()

// Comparable is an implementation of [Hasher] for comparable types
// using [maphash.Comparable].
//
// The zero value is ready to use; all zero Comparable values in a
// process share the same seed. Use [NewComparable] to obtain a
// hasher with its own random seed.
type Comparable[T comparable] struct {
	_    [0]func(T) // disallow conversion between Comparable[X] and Comparable[Y]
	seed maphash.Seed
}

// NewComparable returns a Comparable hasher with a fresh random seed.
func NewComparable[T comparable]() Comparable[T] {
	return Comparable[T]{seed: maphash.MakeSeed()}
}

// Hash implements [Hasher.Hash].
func (h Comparable[T]) Hash(v T) uint64 {
	seed := h.seed
	if seed == (maphash.Seed{}) {
		seed = defaultSeed
	}
	return maphash.Comparable(seed, v)
}

// Func adapts an ordinary function to the [Hasher] interface.
type Func[T any] func(T) uint64

// Hash implements [Hasher.Hash] by calling f(v).
func (f Func[T]) Hash(v T) uint64 {
	return f(v)
}
