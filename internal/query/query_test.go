package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iaros/offer_engine/internal/offer"
)

func baseOffer(id string, price int64) *offer.Offer {
	return &offer.Offer{
		ID:             id,
		NumberSeats:    4,
		Price:          price,
		CarType:        offer.Small,
		HasVollkasko:   true,
		FreeKilometers: 100,
	}
}

func baseRequest() Request {
	return Request{
		SortOrder:             PriceAsc,
		Page:                  0,
		PageSize:              10,
		PriceRangeWidth:       100,
		MinFreeKilometerWidth: 50,
	}
}

// TestExecute_AllBestSelfRule_FullMatchCountsEveryFacet is scenario S2/S3
// from spec.md section 8: an offer matching every filter contributes to the
// result list and to every facet counter.
func TestExecute_AllBestSelfRule_FullMatchCountsEveryFacet(t *testing.T) {
	seats := 4
	o := baseOffer("a", 150)
	o.NumberSeats = seats

	req := baseRequest()
	req.MinNumberSeats = &seats

	resp := Execute(req, []*offer.Offer{o})

	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "a", resp.Offers[0].ID)
	assert.EqualValues(t, 1, resp.CarTypeCounts.Small)
	assert.EqualValues(t, 1, resp.VollkaskoCount.TrueCount)
	require.Len(t, resp.PriceRanges, 1)
	assert.EqualValues(t, 1, resp.PriceRanges[0].Count)
}

// TestExecute_AllBestSelfRule_SingleMismatchCountsOnlyItsOwnFacet is the
// heart of the all-but-self law: an offer failing exactly one predicate is
// excluded from the result list but still increments the counter for the
// facet it failed, and none other.
func TestExecute_AllBestSelfRule_SingleMismatchCountsOnlyItsOwnFacet(t *testing.T) {
	o := baseOffer("a", 150)
	o.CarType = offer.Luxury // fails the carType filter only

	carType := offer.Small
	req := baseRequest()
	req.CarType = &carType

	resp := Execute(req, []*offer.Offer{o})

	assert.Empty(t, resp.Offers)
	assert.EqualValues(t, 1, resp.CarTypeCounts.Luxury)
	assert.EqualValues(t, 0, resp.CarTypeCounts.Small)
	// no other facet observed this offer
	assert.EqualValues(t, 0, resp.VollkaskoCount.TrueCount)
	assert.EqualValues(t, 0, resp.VollkaskoCount.FalseCount)
	assert.Empty(t, resp.PriceRanges)
}

// TestExecute_TwoMismatches_ContributesNothing confirms an offer failing two
// or more predicates is invisible to every facet and the result list.
func TestExecute_TwoMismatches_ContributesNothing(t *testing.T) {
	o := baseOffer("a", 150)
	o.CarType = offer.Luxury
	o.HasVollkasko = false

	carType := offer.Small
	onlyVK := true
	req := baseRequest()
	req.CarType = &carType
	req.OnlyVollkasko = &onlyVK

	resp := Execute(req, []*offer.Offer{o})

	assert.Empty(t, resp.Offers)
	assert.EqualValues(t, 0, resp.CarTypeCounts.Luxury)
	assert.EqualValues(t, 0, resp.VollkaskoCount.FalseCount)
}

// TestExecute_PriceBounds_MinInclusiveMaxStrict pins down the asymmetric
// bound semantics: minPrice is inclusive, maxPrice excludes the boundary.
func TestExecute_PriceBounds_MinInclusiveMaxStrict(t *testing.T) {
	min := int64(100)
	max := int64(200)
	req := baseRequest()
	req.MinPrice = &min
	req.MaxPrice = &max

	atMin := baseOffer("min", 100)
	atMax := baseOffer("max", 200)
	inside := baseOffer("mid", 150)

	resp := Execute(req, []*offer.Offer{atMin, atMax, inside})

	ids := make([]string, 0, len(resp.Offers))
	for _, o := range resp.Offers {
		ids = append(ids, o.ID)
	}
	assert.ElementsMatch(t, []string{"min", "mid"}, ids)
}

// TestExecute_SortAndTiebreak is scenario S6: offers are sorted by price per
// the requested order, ties broken by id ascending regardless of direction.
func TestExecute_SortAndTiebreak(t *testing.T) {
	o1 := baseOffer("b", 100)
	o2 := baseOffer("a", 100)
	o3 := baseOffer("c", 50)

	req := baseRequest()
	req.SortOrder = PriceAsc
	resp := Execute(req, []*offer.Offer{o1, o2, o3})
	require.Len(t, resp.Offers, 3)
	assert.Equal(t, []string{"c", "a", "b"}, idsOf(resp.Offers))

	req.SortOrder = PriceDesc
	resp = Execute(req, []*offer.Offer{o1, o2, o3})
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(resp.Offers))
}

func TestExecute_Pagination(t *testing.T) {
	offers := make([]*offer.Offer, 0, 5)
	for i := int64(0); i < 5; i++ {
		offers = append(offers, baseOffer(string(rune('a'+i)), i*10))
	}
	req := baseRequest()
	req.PageSize = 2
	req.Page = 1

	resp := Execute(req, offers)
	require.Len(t, resp.Offers, 2)
	assert.Equal(t, []string{"c", "d"}, idsOf(resp.Offers))
}

func TestExecute_PageBeyondResults_IsEmptyNotError(t *testing.T) {
	req := baseRequest()
	req.Page = 5
	resp := Execute(req, []*offer.Offer{baseOffer("a", 10)})
	assert.Empty(t, resp.Offers)
}

func idsOf(offers []ResultOffer) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.ID)
	}
	return out
}
