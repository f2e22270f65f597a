// Package hashmap implements a hash table with separate chaining.
//
// A [Map] keeps an ordered sequence of buckets, each an ordered
// sequence of (key, value) entries; a key lives in bucket
// hash(key) % BucketCount(). The bucket count is kept between
// two and four times the number of entries by doubling or halving
// it, with a full rehash, after each insertion or removal.
//
// Iterators obtained from a Map, and pointers returned by
// [Map.Index] or [Iterator.Ptr], are valid only until the next
// call that modifies the same Map.
package hashmap

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/rogpeppe/chainmap/anyhash"
)

// ErrNotFound is returned, wrapped with the offending key,
// by [Map.At] when the key is not present.
var ErrNotFound = errors.New("key not found")

// minBuckets is the bucket count of a new or cleared Map.
const minBuckets = 1

// Pair holds a key and its associated value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// entry is an association in a hash bucket.
type entry[K, V any] struct {
	key K
	val V
}

// bucket holds the entries whose keys hash to the same
// index, in insertion order.
type bucket[K, V any] []entry[K, V]

// Map is a hash-table-based mapping from keys K to values V,
// parameterized by the hash function H. Keys are compared with ==.
//
// Just as with map[K]V, a nil *Map is a valid empty map for
// read-only operations.
//
// A Map is not safe for concurrent use when any goroutine
// modifies it.
type Map[K comparable, V any, H anyhash.Hasher[K]] struct {
	hasher  H
	buckets []bucket[K, V]
	size    int
}

// New returns a new empty Map that hashes keys with h.
func New[K comparable, V any, H anyhash.Hasher[K]](h H) *Map[K, V, H] {
	m := &Map[K, V, H]{
		hasher: h,
	}
	m.reset()
	return m
}

// NewDefault returns a new empty Map using the zero [anyhash.Comparable]
// hasher.
func NewDefault[K comparable, V any]() *Map[K, V, anyhash.Comparable[K]] {
	return New[K, V](anyhash.Comparable[K]{})
}

// Collect returns a new Map holding the pairs produced by seq.
// When seq produces a key more than once, the first value wins.
func Collect[K comparable, V any, H anyhash.Hasher[K]](seq iter.Seq2[K, V], h H) *Map[K, V, H] {
	m := New[K, V](h)
	for k, v := range seq {
		m.Insert(k, v)
	}
	return m
}

// Of returns a new Map holding the given pairs.
// As with [Collect], the first of any duplicate keys wins.
func Of[K comparable, V any, H anyhash.Hasher[K]](h H, pairs ...Pair[K, V]) *Map[K, V, H] {
	m := New[K, V](h)
	for _, p := range pairs {
		m.InsertPair(p)
	}
	return m
}

// Len returns the number of entries in the map.
func (m *Map[K, V, H]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// Empty reports whether the map has no entries.
func (m *Map[K, V, H]) Empty() bool {
	return m.Len() == 0
}

// BucketCount returns the current number of buckets.
func (m *Map[K, V, H]) BucketCount() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// LoadFactor returns the average number of entries per bucket.
func (m *Map[K, V, H]) LoadFactor() float64 {
	if m.BucketCount() == 0 {
		return 0
	}
	return float64(m.size) / float64(len(m.buckets))
}

// HashFunction returns a copy of the hasher used by the map.
func (m *Map[K, V, H]) HashFunction() H {
	return m.hasher
}

// Insert adds an entry for k with value v if k is not already
// present, and reports whether it did so. An existing value
// is never overwritten.
func (m *Map[K, V, H]) Insert(k K, v V) bool {
	if m == nil {
		panic("(*Map).Insert called on nil *Map")
	}
	b, e := m.lookup(k)
	if e >= 0 {
		return false
	}
	m.buckets[b] = append(m.buckets[b], entry[K, V]{key: k, val: v})
	m.size++
	m.rebalance()
	return true
}

// InsertPair is like [Map.Insert] but takes its arguments as a Pair.
func (m *Map[K, V, H]) InsertPair(p Pair[K, V]) bool {
	return m.Insert(p.Key, p.Value)
}

// Erase removes the entry for k, if present, and reports
// whether it was found.
func (m *Map[K, V, H]) Erase(k K) bool {
	if m == nil {
		return false
	}
	b, e := m.lookup(k)
	if e < 0 {
		return false
	}
	m.buckets[b] = slices.Delete(m.buckets[b], e, e+1)
	m.size--
	m.rebalance()
	return true
}

// Index returns a pointer to the value for k, first adding an
// entry holding the zero value of V if k is not present.
// Like Go's m[k] on the left hand side of an assignment.
func (m *Map[K, V, H]) Index(k K) *V {
	if m == nil {
		panic("(*Map).Index called on nil *Map")
	}
	b, e := m.lookup(k)
	if e < 0 {
		m.buckets[b] = append(m.buckets[b], entry[K, V]{key: k})
		m.size++
		m.rebalance()
		// The rehash may have moved the new entry.
		b, e = m.lookup(k)
	}
	return &m.buckets[b][e].val
}

// At returns the value for k. If k is not present, it returns
// the zero value and an error satisfying errors.Is(err, ErrNotFound).
func (m *Map[K, V, H]) At(k K) (V, error) {
	if v, ok := m.Get(k); ok {
		return v, nil
	}
	return *new(V), fmt.Errorf("%w: %v", ErrNotFound, k)
}

// Get returns the value for k and reports whether it was found.
func (m *Map[K, V, H]) Get(k K) (V, bool) {
	if m.Empty() {
		return *new(V), false
	}
	b, e := m.lookup(k)
	if e < 0 {
		return *new(V), false
	}
	return m.buckets[b][e].val, true
}

// Contains reports whether k is present in the map.
func (m *Map[K, V, H]) Contains(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Find returns an iterator positioned at the entry for k,
// or [Map.End] if there is none.
func (m *Map[K, V, H]) Find(k K) Iterator[K, V] {
	if m.Empty() {
		return m.End()
	}
	b, e := m.lookup(k)
	if e < 0 {
		return m.End()
	}
	return Iterator[K, V]{cursorAt(m.buckets, b, e)}
}

// FindConst is like [Map.Find] but returns a read-only iterator.
func (m *Map[K, V, H]) FindConst(k K) ConstIterator[K, V] {
	return m.Find(k).Const()
}

// Clear removes all entries and returns the map to its
// initial bucket count.
func (m *Map[K, V, H]) Clear() {
	if m == nil {
		return
	}
	m.reset()
}

// Assign makes m an independent copy of src: it clears m,
// takes src's hasher and inserts every entry of src.
// The bucket count of m follows from its own insertions
// and need not match src.
func (m *Map[K, V, H]) Assign(src *Map[K, V, H]) {
	if m == src {
		return
	}
	if m == nil {
		panic("(*Map).Assign called on nil *Map")
	}
	m.Clear()
	if src == nil {
		return
	}
	m.hasher = src.hasher
	for k, v := range src.All() {
		m.Insert(k, v)
	}
}

// Clone returns a copy of m. Clone of a nil map returns nil.
func (m *Map[K, V, H]) Clone() *Map[K, V, H] {
	if m == nil {
		return nil
	}
	c := New[K, V](m.hasher)
	c.Assign(m)
	return c
}

// Begin returns an iterator at the first entry of the map.
func (m *Map[K, V, H]) Begin() Iterator[K, V] {
	return Iterator[K, V]{newCursor(m.store(), 0)}
}

// End returns the iterator just past the last entry of the map.
func (m *Map[K, V, H]) End() Iterator[K, V] {
	s := m.store()
	return Iterator[K, V]{newCursor(s, len(s))}
}

// CBegin returns a read-only iterator at the first entry of the map.
func (m *Map[K, V, H]) CBegin() ConstIterator[K, V] {
	return m.Begin().Const()
}

// CEnd returns the read-only iterator just past the last entry of the map.
func (m *Map[K, V, H]) CEnd() ConstIterator[K, V] {
	return m.End().Const()
}

// All returns an iterator over all (key, value) pairs in the map,
// in bucket order.
//
// If the map is modified during iteration, the pairs produced
// from then on are unspecified.
func (m *Map[K, V, H]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := m.CBegin(); !c.Done(); c.Next() {
			if !yield(c.Key(), c.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in the map, in the same
// order as [Map.All].
func (m *Map[K, V, H]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in the map, in the same
// order as [Map.All].
func (m *Map[K, V, H]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// String returns the map's entries formatted like a Go map,
// in iteration order.
func (m *Map[K, V, H]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// reset replaces the bucket store with an empty one of minimal size.
func (m *Map[K, V, H]) reset() {
	m.buckets = make([]bucket[K, V], minBuckets)
	m.size = 0
}

// store returns the bucket slice, or nil for a nil map.
func (m *Map[K, V, H]) store() []bucket[K, V] {
	if m == nil {
		return nil
	}
	return m.buckets
}

// index returns the bucket index for k.
func (m *Map[K, V, H]) index(k K) int {
	return int(m.hasher.Hash(k) % uint64(len(m.buckets)))
}

// lookup returns the bucket index for k and the position of k
// within that bucket, or -1 if k is not present.
func (m *Map[K, V, H]) lookup(k K) (int, int) {
	b := m.index(k)
	for i := range m.buckets[b] {
		if m.buckets[b][i].key == k {
			return b, i
		}
	}
	return b, -1
}
