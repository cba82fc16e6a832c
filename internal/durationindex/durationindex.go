// Package durationindex implements the day-count bucket described in
// spec.md section 4.3: offers are grouped by their exact rental day count so
// a query can cheaply narrow candidates before the time-window predicate
// and the remaining per-offer filters run.
package durationindex

// Index maps a day count to the set of offer indices with that exact
// duration. It carries no locking of its own; package engine serializes
// writers against readers alongside the region index, under the same lock.
type Index struct {
	buckets map[int64]map[uint32]struct{}
}

// New builds an empty Index. Buckets are created lazily on first Register.
func New() *Index {
	return &Index{buckets: make(map[int64]map[uint32]struct{})}
}

// Register adds offerIdx to the bucket for days.
func (idx *Index) Register(days int64, offerIdx uint32) {
	bucket, ok := idx.buckets[days]
	if !ok {
		bucket = make(map[uint32]struct{})
		idx.buckets[days] = bucket
	}
	bucket[offerIdx] = struct{}{}
}

// Contains reports whether offerIdx was registered under days. Candidate
// enumeration uses this as a set-membership test against the region
// subtree's offer indices, rather than iterating the bucket itself, since
// the subtree is typically far smaller than a popular duration's bucket.
func (idx *Index) Contains(days int64, offerIdx uint32) bool {
	bucket, ok := idx.buckets[days]
	if !ok {
		return false
	}
	_, ok = bucket[offerIdx]
	return ok
}

// Clear empties every bucket.
func (idx *Index) Clear() {
	idx.buckets = make(map[int64]map[uint32]struct{})
}
