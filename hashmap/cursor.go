package hashmap

// cursor is a position within a bucket store: entry e of
// bucket b. Any b >= len(buckets) is the end position.
type cursor[K, V any] struct {
	buckets []bucket[K, V]
	b, e    int
}

// newCursor returns a cursor at the first entry of the first
// non-empty bucket at or after index start, or at the end
// position if there is no such bucket.
func newCursor[K, V any](buckets []bucket[K, V], start int) cursor[K, V] {
	c := cursor[K, V]{
		buckets: buckets,
		b:       start,
	}
	c.skipEmpty()
	return c
}

// cursorAt returns a cursor at entry e of bucket b,
// which must exist.
func cursorAt[K, V any](buckets []bucket[K, V], b, e int) cursor[K, V] {
	return cursor[K, V]{
		buckets: buckets,
		b:       b,
		e:       e,
	}
}

func (c *cursor[K, V]) skipEmpty() {
	for c.b < len(c.buckets) && len(c.buckets[c.b]) == 0 {
		c.b++
	}
	c.e = 0
}

func (c *cursor[K, V]) next() {
	if c.done() {
		panic("hashmap: Next called on end iterator")
	}
	if c.e+1 < len(c.buckets[c.b]) {
		c.e++
		return
	}
	c.b++
	c.skipEmpty()
}

func (c cursor[K, V]) done() bool {
	return c.b >= len(c.buckets)
}

// equal reports whether c and c1 are the same position in
// the same bucket store. All end positions are equal.
func (c cursor[K, V]) equal(c1 cursor[K, V]) bool {
	if !sameStore(c.buckets, c1.buckets) {
		return false
	}
	if c.done() || c1.done() {
		return c.done() && c1.done()
	}
	return c.b == c1.b && c.e == c1.e
}

func (c cursor[K, V]) entry() *entry[K, V] {
	if c.done() {
		panic("hashmap: dereference of end iterator")
	}
	return &c.buckets[c.b][c.e]
}

func sameStore[K, V any](s1, s2 []bucket[K, V]) bool {
	if len(s1) != len(s2) {
		return false
	}
	return len(s1) == 0 || &s1[0] == &s2[0]
}

// Iterator is a forward iterator over the entries of a [Map]
// that allows values to be changed in place.
//
// The zero Iterator is at its end and belongs to no map.
//
// Typical use:
//
//	for it := m.Begin(); !it.Done(); it.Next() {
//		*it.Ptr() += 1
//	}
type Iterator[K, V any] struct {
	c cursor[K, V]
}

// Next advances the iterator to the next entry.
// It panics if the iterator is already at the end.
func (it *Iterator[K, V]) Next() {
	it.c.next()
}

// Done reports whether the iterator is at the end.
func (it Iterator[K, V]) Done() bool {
	return it.c.done()
}

// Equal reports whether it and it1 are at the same position.
// Iterators from different maps are never equal.
func (it Iterator[K, V]) Equal(it1 Iterator[K, V]) bool {
	return it.c.equal(it1.c)
}

// Key returns the key of the current entry.
func (it Iterator[K, V]) Key() K {
	return it.c.entry().key
}

// Value returns the value of the current entry.
func (it Iterator[K, V]) Value() V {
	return it.c.entry().val
}

// Ptr returns a pointer to the value of the current entry.
func (it Iterator[K, V]) Ptr() *V {
	return &it.c.entry().val
}

// Set sets the value of the current entry to v.
func (it Iterator[K, V]) Set(v V) {
	it.c.entry().val = v
}

// Const returns a read-only iterator at the same position.
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{it.c}
}

// ConstIterator is a forward iterator over the entries of a [Map]
// that does not allow modification.
//
// The zero ConstIterator is at its end and belongs to no map.
type ConstIterator[K, V any] struct {
	c cursor[K, V]
}

// Next advances the iterator to the next entry.
// It panics if the iterator is already at the end.
func (it *ConstIterator[K, V]) Next() {
	it.c.next()
}

// Done reports whether the iterator is at the end.
func (it ConstIterator[K, V]) Done() bool {
	return it.c.done()
}

// Equal reports whether it and it1 are at the same position.
func (it ConstIterator[K, V]) Equal(it1 ConstIterator[K, V]) bool {
	return it.c.equal(it1.c)
}

// Key returns the key of the current entry.
func (it ConstIterator[K, V]) Key() K {
	return it.c.entry().key
}

// Value returns the value of the current entry.
func (it ConstIterator[K, V]) Value() V {
	return it.c.entry().val
}
