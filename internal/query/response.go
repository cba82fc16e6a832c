package query

import "sort"

// ResultOffer is the paginated, wire-agnostic form of a matching offer.
type ResultOffer struct {
	ID   string
	Data []byte
}

// Range is one bucket of a histogram facet.
type Range struct {
	Start int64
	End   int64
	Count int64
}

// CarTypeCounts is the fixed-shape car-type facet.
type CarTypeCounts struct {
	Small  int64
	Sports int64
	Luxury int64
	Family int64
}

// SeatCount is one observed seat count and how many offers have it.
type SeatCount struct {
	NumberSeats int
	Count       int64
}

// VollkaskoCounts is the fixed-shape insurance facet.
type VollkaskoCounts struct {
	TrueCount  int64
	FalseCount int64
}

// Response is the engine-internal form of spec.md's GetResponseBodyModel.
type Response struct {
	Offers             []ResultOffer
	PriceRanges        []Range
	CarTypeCounts      CarTypeCounts
	SeatsCount         []SeatCount
	FreeKilometerRange []Range
	VollkaskoCount     VollkaskoCounts
}

// sortedRanges turns a lower-bound -> count map into Range entries sorted
// by Start ascending, per spec.md section 4.4.3.
func sortedRanges(buckets map[int64]int64, width int64) []Range {
	keys := make([]int64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	ranges := make([]Range, 0, len(keys))
	for _, k := range keys {
		ranges = append(ranges, Range{Start: k, End: k + width, Count: buckets[k]})
	}
	return ranges
}

// seatCounts turns a seat-count -> occurrence map into SeatCount entries.
// Order is unspecified per spec.md section 4.4.3; emitted sorted by seat
// count for deterministic output and easier testing.
func seatCounts(counts map[int]int64) []SeatCount {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]SeatCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, SeatCount{NumberSeats: k, Count: counts[k]})
	}
	return out
}
