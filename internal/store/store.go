// Package store holds the dense, ordinal-addressed offer vector described
// in spec.md section 4.1. It has no internal locking of its own — the
// concurrency envelope in package engine owns the exclusive/shared lock
// guarding it, per spec.md section 4.5.
package store

import "iaros/offer_engine/internal/offer"

// Store is an append-only dense vector of offers. idx is the insertion
// ordinal; it is stable until Clear.
type Store struct {
	offers []offer.Offer
}

// New builds a Store pre-reserved to initialCapacity, amortizing growth for
// the large offer volumes spec.md section 5 describes.
func New(initialCapacity int) *Store {
	return &Store{offers: make([]offer.Offer, 0, initialCapacity)}
}

// Insert stamps o.Idx with its dense index, appends it, and returns that
// index so the caller can register it in the indexes.
func (s *Store) Insert(o offer.Offer) uint32 {
	idx := uint32(len(s.offers))
	o.Idx = idx
	s.offers = append(s.offers, o)
	return idx
}

// Get returns the offer at idx. The caller must ensure idx < s.Len(); this
// is an internal component invoked only with indices the indexes produced
// themselves, so it panics on an out-of-bounds idx rather than returning an
// error — a mismatch there is an invariant violation (spec.md section 7's
// InternalError), not a condition callers are expected to recover from.
func (s *Store) Get(idx uint32) *offer.Offer {
	return &s.offers[idx]
}

// Len returns the number of offers currently held.
func (s *Store) Len() int {
	return len(s.offers)
}

// Clear empties the store. Every previously issued idx is invalidated.
func (s *Store) Clear() {
	s.offers = s.offers[:0]
}
