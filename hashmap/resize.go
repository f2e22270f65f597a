package hashmap

// rebalance restores the load invariant
//
//	2*Len() <= BucketCount() <= 4*Len()
//
// after a successful insertion or removal. Both bounds are
// inclusive. A single insertion or removal moves the bucket
// count by at most one doubling or halving, so one step is
// always enough. An empty map keeps at least minBuckets buckets.
func (m *Map[K, V, H]) rebalance() {
	if n := targetBuckets(len(m.buckets), m.size); n != len(m.buckets) {
		m.rehash(n)
	}
}

// targetBuckets returns the bucket count that a map holding size
// entries in n buckets should move to.
func targetBuckets(n, size int) int {
	switch {
	case n < 2*size:
		return n * 2
	case n > 4*size:
		return max(n/2, minBuckets)
	}
	return n
}

// rehash replaces the bucket store with one of n buckets
// and reinserts every entry at its recomputed index.
// Entries that share a bucket after the rehash keep their
// relative order from the old store.
func (m *Map[K, V, H]) rehash(n int) {
	old := m.buckets
	m.reset()
	m.buckets = append(m.buckets, make([]bucket[K, V], n-len(m.buckets))...)
	for _, b := range old {
		for _, e := range b {
			i := m.index(e.key)
			m.buckets[i] = append(m.buckets[i], e)
			m.size++
		}
	}
}
