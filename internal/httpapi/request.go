package httpapi

import (
	"fmt"
	"net/url"
	"strconv"

	"iaros/offer_engine/internal/offer"
	"iaros/offer_engine/internal/query"
)

// parseRequest translates the camelCase query parameters of GET
// /api/offers (spec.md section 6) into an engine query.Request. Structural
// validation (page_size > 0, etc.) happens in query.Request.Validate,
// called by the engine; this function only rejects parameters that cannot
// be parsed into the right Go type at all.
func parseRequest(q url.Values) (query.Request, error) {
	var req query.Request

	regionID, err := parseUint8(q, "regionId")
	if err != nil {
		return req, err
	}
	req.RegionID = regionID

	if req.TimeRangeStart, err = parseInt64(q, "timeRangeStart"); err != nil {
		return req, err
	}
	if req.TimeRangeEnd, err = parseInt64(q, "timeRangeEnd"); err != nil {
		return req, err
	}
	if req.NumberDays, err = parseInt64(q, "numberDays"); err != nil {
		return req, err
	}

	sortOrder := q.Get("sortOrder")
	switch query.SortOrder(sortOrder) {
	case query.PriceAsc, query.PriceDesc:
		req.SortOrder = query.SortOrder(sortOrder)
	default:
		return req, fmt.Errorf("sortOrder: must be price-asc or price-desc, got %q", sortOrder)
	}

	page, err := parseInt(q, "page")
	if err != nil {
		return req, err
	}
	req.Page = page

	pageSize, err := parseInt(q, "pageSize")
	if err != nil {
		return req, err
	}
	req.PageSize = pageSize

	if req.PriceRangeWidth, err = parseInt64(q, "priceRangeWidth"); err != nil {
		return req, err
	}
	if req.MinFreeKilometerWidth, err = parseInt64(q, "minFreeKilometerWidth"); err != nil {
		return req, err
	}

	if v := q.Get("minNumberSeats"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("minNumberSeats: %w", err)
		}
		req.MinNumberSeats = &n
	}
	if v := q.Get("minPrice"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fmt.Errorf("minPrice: %w", err)
		}
		req.MinPrice = &n
	}
	if v := q.Get("maxPrice"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fmt.Errorf("maxPrice: %w", err)
		}
		req.MaxPrice = &n
	}
	if v := q.Get("carType"); v != "" {
		ct, err := offer.ParseCarType(v)
		if err != nil {
			return req, fmt.Errorf("carType: %w", err)
		}
		req.CarType = &ct
	}
	if v := q.Get("onlyVollkasko"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, fmt.Errorf("onlyVollkasko: %w", err)
		}
		req.OnlyVollkasko = &b
	}
	if v := q.Get("minFreeKilometer"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fmt.Errorf("minFreeKilometer: %w", err)
		}
		req.MinFreeKilometer = &n
	}

	return req, nil
}

func parseInt64(q url.Values, key string) (int64, error) {
	v := q.Get(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func parseInt(q url.Values, key string) (int, error) {
	v := q.Get(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func parseUint8(q url.Values, key string) (uint8, error) {
	v := q.Get(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return uint8(n), nil
}
