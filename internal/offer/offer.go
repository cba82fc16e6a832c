// Package offer defines the data model shared by the store, the indexes
// and the query engine.
package offer

import "fmt"

// CarType is one of the four car categories a rental offer can belong to.
type CarType string

const (
	Small  CarType = "small"
	Sports CarType = "sports"
	Luxury CarType = "luxury"
	Family CarType = "family"
)

// ParseCarType validates a textual car type against the four known values.
func ParseCarType(s string) (CarType, error) {
	switch CarType(s) {
	case Small, Sports, Luxury, Family:
		return CarType(s), nil
	default:
		return "", fmt.Errorf("unknown car type %q", s)
	}
}

// Offer is immutable after insertion into the store. Idx is assigned by the
// store at insertion time and equals the offer's position in the dense
// store. A cleanup empties the store, so indices restart at 0 afterwards.
type Offer struct {
	ID             string
	Data           []byte
	RegionID       uint8
	StartTS        int64
	EndTS          int64
	NumberSeats    int
	Price          int64
	CarType        CarType
	HasVollkasko   bool
	FreeKilometers int64
	Idx            uint32
}

// Days returns the rental duration in whole days, per spec.md section 3:
// floor((end_ts - start_ts) / 86_400_000). StartTS < EndTS is guaranteed by
// validation at ingest, so integer division truncates equivalently to floor.
func (o Offer) Days() int64 {
	const msPerDay = 86_400_000
	return (o.EndTS - o.StartTS) / msPerDay
}
