package region

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubtreeOffers_EmptyBeforeInsert mirrors the reference traversal test:
// before any registration, every region's subtree is empty.
func TestSubtreeOffers_EmptyBeforeInsert(t *testing.T) {
	idx := NewIndex()
	assert.Empty(t, idx.SubtreeOffers(RootID))
}

// TestSubtreeOffers_PreOrderAcrossSiblings exercises the same scenario as
// the original implementation's region-hierarchy test: one offer directly
// registered at each of the root and its first four children in declared
// order. Subtree(root) must yield them in pre-order across siblings, since
// none of these nodes' descendants carry any offers of their own.
func TestSubtreeOffers_PreOrderAcrossSiblings(t *testing.T) {
	idx := NewIndex()
	idx.Register(0, 1)
	idx.Register(1, 2)
	idx.Register(2, 3)
	idx.Register(3, 4)
	idx.Register(4, 5)

	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, idx.SubtreeOffers(0))
	assert.Equal(t, []uint32{2}, idx.SubtreeOffers(1))
	assert.Equal(t, []uint32{3}, idx.SubtreeOffers(2))
	assert.Equal(t, []uint32{4}, idx.SubtreeOffers(3))
	assert.Equal(t, []uint32{5}, idx.SubtreeOffers(4))
	assert.Empty(t, idx.SubtreeOffers(5))
}

// TestSubtreeOffers_Transitivity is scenario S4 from spec.md section 8:
// region 7 (Berlin) holds two direct offers, its descendant region 21
// (Mitte) holds one more, and an unrelated sibling region 8 (Munich) holds
// none of them.
func TestSubtreeOffers_Transitivity(t *testing.T) {
	idx := NewIndex()
	idx.Register(7, 100)
	idx.Register(7, 101)
	idx.Register(21, 200)

	require.ElementsMatch(t, []uint32{100, 101, 200}, idx.SubtreeOffers(7))
	assert.Equal(t, []uint32{200}, idx.SubtreeOffers(21))
	assert.Empty(t, idx.SubtreeOffers(8))
}

// TestSubtreeOffers_DeepDescendant walks all the way to a leaf (58,
// Brandenburg Gate) and confirms it is reachable transitively from every
// ancestor up to the root.
func TestSubtreeOffers_DeepDescendant(t *testing.T) {
	idx := NewIndex()
	idx.Register(58, 999)

	for _, ancestor := range []uint8{0, 1, 7, 21, 58} {
		assert.Contains(t, idx.SubtreeOffers(ancestor), uint32(999), "ancestor %d should see offer 999", ancestor)
	}
	assert.Empty(t, idx.SubtreeOffers(59))
}

func TestClear_EmptiesDirectOffersButKeepsTopology(t *testing.T) {
	idx := NewIndex()
	idx.Register(58, 999)
	idx.Clear()

	assert.Empty(t, idx.SubtreeOffers(0))
	assert.Empty(t, idx.SubtreeOffers(58))
	// topology itself is untouched by Clear: 58 remains a descendant of 0.
	idx.Register(58, 5)
	assert.Equal(t, []uint32{5}, idx.SubtreeOffers(0))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(0))
	assert.True(t, InRange(124))
	assert.False(t, InRange(125))
	assert.False(t, InRange(-1))
}

func TestTopology_HasExactlyNodeCountEntries(t *testing.T) {
	assert.Equal(t, 125, len(topology))
	assert.True(t, reflect.DeepEqual(topology[0], []uint8{1, 2, 3, 4, 5, 6}))
}
