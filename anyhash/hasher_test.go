package anyhash_test

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/chainmap/anyhash"
)

type point struct {
	x, y int
}

func TestComparableZeroValue(t *testing.T) {
	var h1, h2 anyhash.Comparable[string]
	// Zero values share a seed so they must agree.
	qt.Assert(t, qt.Equals(h1.Hash("hello"), h2.Hash("hello")))
	qt.Assert(t, qt.Equals(h1.Hash("hello"), h1.Hash("hello")))
}

func TestComparableCopiesAgree(t *testing.T) {
	h := anyhash.NewComparable[point]()
	h1 := h
	for i := range 100 {
		p := point{i, -i}
		qt.Assert(t, qt.Equals(h1.Hash(p), h.Hash(p)))
	}
}

func TestComparableSpreadsKeys(t *testing.T) {
	h := anyhash.NewComparable[int]()
	seen := make(map[uint64]bool)
	for i := range 1000 {
		seen[h.Hash(i)] = true
	}
	// Collisions in 64 bits over 1000 keys would be remarkable.
	qt.Assert(t, qt.Equals(len(seen), 1000))
}

func TestInteger(t *testing.T) {
	qt.Assert(t, qt.Equals(anyhash.Integer[int]{}.Hash(42), uint64(42)))
	qt.Assert(t, qt.Equals(anyhash.Integer[uint8]{}.Hash(255), uint64(255)))
	qt.Assert(t, qt.Equals(anyhash.Integer[int64]{}.Hash(-1), ^uint64(0)))
}

type name string

func TestText(t *testing.T) {
	qt.Assert(t, qt.Equals(anyhash.Text[string]{}.Hash("foo"), xxhash.Sum64String("foo")))
	qt.Assert(t, qt.Equals(anyhash.Text[name]{}.Hash("foo"), xxhash.Sum64String("foo")))
	qt.Assert(t, qt.Not(qt.Equals(anyhash.Text[string]{}.Hash("foo"), anyhash.Text[string]{}.Hash("bar"))))
}

func TestSeededText(t *testing.T) {
	h0 := anyhash.SeededText[string]{}
	h1 := anyhash.SeededText[string]{Seed: 1}
	qt.Assert(t, qt.Equals(h0.Hash("foo"), xxhash.Sum64String("foo")))
	qt.Assert(t, qt.Equals(h1.Hash("foo"), h1.Hash("foo")))
	qt.Assert(t, qt.Not(qt.Equals(h0.Hash("foo"), h1.Hash("foo"))))
}

func TestFunc(t *testing.T) {
	calls := 0
	h := anyhash.Func[string](func(s string) uint64 {
		calls++
		return uint64(len(s))
	})
	var hi anyhash.Hasher[string] = h
	qt.Assert(t, qt.Equals(hi.Hash("abc"), uint64(3)))
	qt.Assert(t, qt.Equals(calls, 1))
}
