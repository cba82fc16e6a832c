// Package query implements the predicate evaluation, all-but-self facet
// aggregation, and sort/paginate algorithm described in spec.md section
// 4.4; candidate enumeration happens in package engine before Execute is
// called. It has no HTTP or JSON import surface;
// translating wire formats is package httpapi's job.
package query

import (
	"iaros/offer_engine/internal/apierr"
	"iaros/offer_engine/internal/offer"
)

// SortOrder selects the result ordering.
type SortOrder string

const (
	PriceAsc  SortOrder = "price-asc"
	PriceDesc SortOrder = "price-desc"
)

// Request is the validated, engine-internal form of spec.md's RequestOffer.
type Request struct {
	RegionID              uint8
	TimeRangeStart        int64
	TimeRangeEnd          int64
	NumberDays            int64
	SortOrder             SortOrder
	Page                  int
	PageSize              int
	PriceRangeWidth       int64
	MinFreeKilometerWidth int64

	MinNumberSeats   *int
	MinPrice         *int64
	MaxPrice         *int64
	CarType          *offer.CarType
	OnlyVollkasko    *bool
	MinFreeKilometer *int64
}

// Validate checks the structural constraints spec.md section 4.4 requires:
// page_size > 0, price_range_width > 0, min_free_kilometer_width > 0,
// number_days >= 0, page >= 0, and a recognized sort order. It does not
// validate RegionID range — an out-of-range region is handled as an empty
// result, not a validation failure, per spec.md section 4.4.5.
func (r Request) Validate() error {
	const op = "query.Validate"
	switch {
	case r.PageSize <= 0:
		return apierr.Validationf(op, "pageSize must be positive")
	case r.Page < 0:
		return apierr.Validationf(op, "page must not be negative")
	case r.PriceRangeWidth <= 0:
		return apierr.Validationf(op, "priceRangeWidth must be positive")
	case r.MinFreeKilometerWidth <= 0:
		return apierr.Validationf(op, "minFreeKilometerWidth must be positive")
	case r.NumberDays < 0:
		return apierr.Validationf(op, "numberDays must not be negative")
	case r.SortOrder != PriceAsc && r.SortOrder != PriceDesc:
		return apierr.Validationf(op, "sortOrder must be price-asc or price-desc")
	case r.TimeRangeStart > r.TimeRangeEnd:
		return apierr.Validationf(op, "timeRangeStart must not be after timeRangeEnd")
	}
	return nil
}
