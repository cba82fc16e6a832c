// Package httpapi is the thin HTTP transport collaborator spec.md section
// 6 describes: it translates the three JSON schemas to and from the
// engine's internal types and maps apierr.Kind to HTTP status codes. It
// carries no query or facet logic of its own.
package httpapi

import (
	"encoding/base64"
	"fmt"

	"github.com/go-playground/validator/v10"

	"iaros/offer_engine/internal/offer"
	"iaros/offer_engine/internal/query"
)

var validate = validator.New()

// offerDTO is the ingest wire schema from spec.md section 6.
type offerDTO struct {
	ID                   string `json:"id" validate:"required"`
	Data                 string `json:"data" validate:"required,base64"`
	MostSpecificRegionID int    `json:"mostSpecificRegionID" validate:"gte=0,lte=124"`
	StartDate            int64  `json:"startDate"`
	EndDate              int64  `json:"endDate" validate:"required,gtfield=StartDate"`
	NumberSeats          int    `json:"numberSeats" validate:"gt=0"`
	Price                int64  `json:"price" validate:"gte=0"`
	FreeKilometers       int64  `json:"freeKilometers" validate:"gte=0"`
	CarType              string `json:"carType" validate:"required,oneof=small sports luxury family"`
	HasVollkasko         bool   `json:"hasVollkasko"`
}

func (d offerDTO) toOffer() (offer.Offer, error) {
	if err := validate.Struct(d); err != nil {
		return offer.Offer{}, err
	}
	data, err := base64.StdEncoding.DecodeString(d.Data)
	if err != nil {
		return offer.Offer{}, fmt.Errorf("data: invalid base64: %w", err)
	}
	carType, err := offer.ParseCarType(d.CarType)
	if err != nil {
		return offer.Offer{}, err
	}
	return offer.Offer{
		ID:             d.ID,
		Data:           data,
		RegionID:       uint8(d.MostSpecificRegionID),
		StartTS:        d.StartDate,
		EndTS:          d.EndDate,
		NumberSeats:    d.NumberSeats,
		Price:          d.Price,
		CarType:        carType,
		HasVollkasko:   d.HasVollkasko,
		FreeKilometers: d.FreeKilometers,
	}, nil
}

// postOffersRequest is the POST /api/offers body. Each element is validated
// individually by toOffer, so no struct tag is needed here.
type postOffersRequest struct {
	Offers []offerDTO `json:"offers"`
}

// responseOffer is the {id, data} pair emitted per spec.md section 6.
type responseOffer struct {
	ID   string `json:"ID"`
	Data string `json:"data"`
}

type priceRangeDTO struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
	Count int64 `json:"count"`
}

type carTypeCountsDTO struct {
	Small  int64 `json:"small"`
	Sports int64 `json:"sports"`
	Luxury int64 `json:"luxury"`
	Family int64 `json:"family"`
}

type seatsCountDTO struct {
	NumberSeats int   `json:"numberSeats"`
	Count       int64 `json:"count"`
}

type freeKilometerRangeDTO struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
	Count int64 `json:"count"`
}

type vollkaskoCountDTO struct {
	TrueCount  int64 `json:"trueCount"`
	FalseCount int64 `json:"falseCount"`
}

// getResponseBody is the GET /api/offers response schema.
type getResponseBody struct {
	Offers             []responseOffer         `json:"offers"`
	PriceRanges        []priceRangeDTO         `json:"priceRanges"`
	CarTypeCounts      carTypeCountsDTO        `json:"carTypeCounts"`
	SeatsCount         []seatsCountDTO         `json:"seatsCount"`
	FreeKilometerRange []freeKilometerRangeDTO `json:"freeKilometerRange"`
	VollkaskoCount     vollkaskoCountDTO       `json:"vollkaskoCount"`
}

func toResponseBody(r *query.Response) getResponseBody {
	offers := make([]responseOffer, 0, len(r.Offers))
	for _, o := range r.Offers {
		offers = append(offers, responseOffer{
			ID:   o.ID,
			Data: base64.StdEncoding.EncodeToString(o.Data),
		})
	}

	priceRanges := make([]priceRangeDTO, 0, len(r.PriceRanges))
	for _, rg := range r.PriceRanges {
		priceRanges = append(priceRanges, priceRangeDTO{Start: rg.Start, End: rg.End, Count: rg.Count})
	}

	kmRanges := make([]freeKilometerRangeDTO, 0, len(r.FreeKilometerRange))
	for _, rg := range r.FreeKilometerRange {
		kmRanges = append(kmRanges, freeKilometerRangeDTO{Start: rg.Start, End: rg.End, Count: rg.Count})
	}

	seats := make([]seatsCountDTO, 0, len(r.SeatsCount))
	for _, s := range r.SeatsCount {
		seats = append(seats, seatsCountDTO{NumberSeats: s.NumberSeats, Count: s.Count})
	}

	return getResponseBody{
		Offers:      offers,
		PriceRanges: priceRanges,
		CarTypeCounts: carTypeCountsDTO{
			Small:  r.CarTypeCounts.Small,
			Sports: r.CarTypeCounts.Sports,
			Luxury: r.CarTypeCounts.Luxury,
			Family: r.CarTypeCounts.Family,
		},
		SeatsCount:         seats,
		FreeKilometerRange: kmRanges,
		VollkaskoCount: vollkaskoCountDTO{
			TrueCount:  r.VollkaskoCount.TrueCount,
			FalseCount: r.VollkaskoCount.FalseCount,
		},
	}
}
