package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iaros/offer_engine/internal/offer"
)

func TestInsert_AssignsSequentialIndices(t *testing.T) {
	s := New(0)
	i0 := s.Insert(offer.Offer{ID: "a"})
	i1 := s.Insert(offer.Offer{ID: "b"})

	assert.EqualValues(t, 0, i0)
	assert.EqualValues(t, 1, i1)
	assert.Equal(t, 2, s.Len())
}

func TestGet_ReturnsStoredOffer(t *testing.T) {
	s := New(0)
	idx := s.Insert(offer.Offer{ID: "a", Price: 42})

	got := s.Get(idx)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
	assert.EqualValues(t, 42, got.Price)
}

func TestClear_ResetsLengthAndInvalidatesIndices(t *testing.T) {
	s := New(0)
	s.Insert(offer.Offer{ID: "a"})
	s.Clear()

	assert.Equal(t, 0, s.Len())

	idx := s.Insert(offer.Offer{ID: "b"})
	assert.EqualValues(t, 0, idx)
}
