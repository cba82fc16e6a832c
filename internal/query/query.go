package query

import (
	"sort"

	"iaros/offer_engine/internal/offer"
)

// Execute applies the five independent predicates to candidates, aggregates
// facets under the all-but-self rule (spec.md section 4.4.3), and returns
// the sorted, paginated response. candidates must already satisfy region
// subtree membership, exact duration match, and time-window containment —
// Execute only applies the five optional filters and the facet/sort/page
// machinery.
func Execute(req Request, candidates []*offer.Offer) *Response {
	var matched []*offer.Offer

	priceBuckets := make(map[int64]int64)
	kmBuckets := make(map[int64]int64)
	seats := make(map[int]int64)
	var cars CarTypeCounts
	var vk VollkaskoCounts

	for _, o := range candidates {
		seatsOK := req.MinNumberSeats == nil || o.NumberSeats >= *req.MinNumberSeats
		carOK := req.CarType == nil || o.CarType == *req.CarType
		vkOK := req.OnlyVollkasko == nil || !*req.OnlyVollkasko || o.HasVollkasko
		kmOK := req.MinFreeKilometer == nil || o.FreeKilometers >= *req.MinFreeKilometer
		priceOK := true
		if req.MinPrice != nil && o.Price < *req.MinPrice {
			priceOK = false
		}
		if req.MaxPrice != nil && o.Price >= *req.MaxPrice {
			priceOK = false
		}

		trueCount := 0
		for _, ok := range [5]bool{seatsOK, carOK, vkOK, kmOK, priceOK} {
			if ok {
				trueCount++
			}
		}

		switch trueCount {
		case 5:
			matched = append(matched, o)
			addCarType(&cars, o.CarType)
			addVollkasko(&vk, o.HasVollkasko)
			kmBuckets[Bucket(o.FreeKilometers, req.MinFreeKilometerWidth)]++
			priceBuckets[Bucket(o.Price, req.PriceRangeWidth)]++
			seats[o.NumberSeats]++
		case 4:
			switch {
			case !priceOK:
				priceBuckets[Bucket(o.Price, req.PriceRangeWidth)]++
			case !kmOK:
				kmBuckets[Bucket(o.FreeKilometers, req.MinFreeKilometerWidth)]++
			case !vkOK:
				addVollkasko(&vk, o.HasVollkasko)
			case !carOK:
				addCarType(&cars, o.CarType)
			case !seatsOK:
				seats[o.NumberSeats]++
			}
		}
	}

	return &Response{
		Offers:             paginate(sortMatched(matched, req.SortOrder), req.Page, req.PageSize),
		PriceRanges:        sortedRanges(priceBuckets, req.PriceRangeWidth),
		CarTypeCounts:      cars,
		SeatsCount:         seatCounts(seats),
		FreeKilometerRange: sortedRanges(kmBuckets, req.MinFreeKilometerWidth),
		VollkaskoCount:     vk,
	}
}

func addCarType(c *CarTypeCounts, t offer.CarType) {
	switch t {
	case offer.Small:
		c.Small++
	case offer.Sports:
		c.Sports++
	case offer.Luxury:
		c.Luxury++
	case offer.Family:
		c.Family++
	}
}

func addVollkasko(v *VollkaskoCounts, has bool) {
	if has {
		v.TrueCount++
	} else {
		v.FalseCount++
	}
}

// sortMatched sorts by price per SortOrder, tie-breaking by id ascending in
// both directions, per spec.md section 4.4.4.
func sortMatched(offers []*offer.Offer, order SortOrder) []*offer.Offer {
	sort.SliceStable(offers, func(i, j int) bool {
		a, b := offers[i], offers[j]
		if a.Price == b.Price {
			return a.ID < b.ID
		}
		if order == PriceDesc {
			return a.Price > b.Price
		}
		return a.Price < b.Price
	})
	return offers
}

// paginate drops page*pageSize items and takes the next pageSize, emitting
// only {id, data} pairs per spec.md section 4.4.4.
func paginate(offers []*offer.Offer, page, pageSize int) []ResultOffer {
	start := page * pageSize
	if start >= len(offers) {
		return []ResultOffer{}
	}
	end := start + pageSize
	if end > len(offers) {
		end = len(offers)
	}

	out := make([]ResultOffer, 0, end-start)
	for _, o := range offers[start:end] {
		out = append(out, ResultOffer{ID: o.ID, Data: o.Data})
	}
	return out
}
