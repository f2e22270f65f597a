package anyhash

import "golang.org/x/exp/constraints"

// Integer is a [Hasher] for integer types that returns
// the value itself, reinterpreted as an unsigned integer.
//
// It is deterministic across processes, which makes bucket
// placement predictable: with n buckets, key k lands in
// bucket uint64(k) % n.
type Integer[T constraints.Integer] struct{}

// Hash implements [Hasher.Hash].
func (Integer[T]) Hash(v T) uint64 {
	return uint64(v)
}
