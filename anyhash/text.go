package anyhash

import "github.com/cespare/xxhash/v2"

// Text is a [Hasher] for string-like keys using the 64-bit
// xxHash algorithm. It is deterministic across processes.
type Text[T ~string] struct{}

// Hash implements [Hasher.Hash].
func (Text[T]) Hash(s T) uint64 {
	return xxhash.Sum64String(string(s))
}

// SeededText is like [Text] but starts the digest from Seed,
// so that two SeededText values with different seeds
// distribute the same keys differently.
type SeededText[T ~string] struct {
	Seed uint64
}

// Hash implements [Hasher.Hash].
func (h SeededText[T]) Hash(s T) uint64 {
	d := xxhash.NewWithSeed(h.Seed)
	d.WriteString(string(s))
	return d.Sum64()
}
