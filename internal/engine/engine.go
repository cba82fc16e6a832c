// Package engine implements the concurrency envelope of spec.md section
// 4.5: it owns the offer store and the region/duration indexes behind two
// sync.RWMutex locks, and is the only component that acquires them.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"iaros/offer_engine/internal/apierr"
	"iaros/offer_engine/internal/durationindex"
	"iaros/offer_engine/internal/logging"
	"iaros/offer_engine/internal/metrics"
	"iaros/offer_engine/internal/offer"
	"iaros/offer_engine/internal/query"
	"iaros/offer_engine/internal/region"
	"iaros/offer_engine/internal/store"
)

// Engine is the offer index and query engine: the region hierarchy index,
// the duration/time-window index, the dense offer store, and the
// concurrency envelope guarding them.
type Engine struct {
	storeMu sync.RWMutex
	store   *store.Store

	indexMu  sync.RWMutex
	regions  *region.Index
	duration *durationindex.Index

	metrics          *metrics.Metrics
	logger           *logging.Logger
	cancelCheckEvery int
}

// Options configures a new Engine.
type Options struct {
	StoreInitialCapacity int
	CancelCheckEvery     int
	Metrics              *metrics.Metrics
	Logger               *logging.Logger
}

// New builds an Engine with empty store and indexes.
func New(opts Options) *Engine {
	if opts.CancelCheckEvery <= 0 {
		opts.CancelCheckEvery = 4096
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	return &Engine{
		store:            store.New(opts.StoreInitialCapacity),
		regions:          region.NewIndex(),
		duration:         durationindex.New(),
		metrics:          opts.Metrics,
		logger:           opts.Logger,
		cancelCheckEvery: opts.CancelCheckEvery,
	}
}

// Insert validates and appends a batch of offers atomically with respect to
// readers: the whole batch is rejected, with no state change, if any offer
// fails validation, per spec.md section 3 and section 7.
func (e *Engine) Insert(_ context.Context, offers []offer.Offer) error {
	const op = "engine.Insert"

	for i := range offers {
		if err := validateOffer(offers[i]); err != nil {
			if e.metrics != nil {
				e.metrics.IngestErrors.Inc()
			}
			return apierr.Validationf(op, "offer %d: %v", i, err)
		}
	}

	// Lock order: store before index, consistently, so insert and cleanup
	// (the only two operations needing both locks) can never deadlock
	// against each other.
	e.storeMu.Lock()
	e.indexMu.Lock()
	for _, o := range offers {
		idx := e.store.Insert(o)
		e.regions.Register(o.RegionID, idx)
		e.duration.Register(o.Days(), idx)
	}
	e.indexMu.Unlock()
	e.storeMu.Unlock()

	if e.metrics != nil {
		e.metrics.IngestBatches.Inc()
		e.metrics.OffersIngested.Add(float64(len(offers)))
		e.metrics.StoreSize.Add(float64(len(offers)))
	}
	return nil
}

// Query runs the full candidate-enumeration, predicate, facet, sort and
// paginate pipeline described in spec.md section 4.4, holding shared access
// to both locks for the full duration of the query per section 4.5.
func (e *Engine) Query(ctx context.Context, req query.Request) (*query.Response, error) {
	const op = "engine.Query"
	start := time.Now()

	if err := req.Validate(); err != nil {
		if e.metrics != nil {
			e.metrics.QueryErrors.Inc()
		}
		return nil, err
	}

	if !region.InRange(int(req.RegionID)) {
		// Not an error: spec.md section 4.4.5 treats an out-of-range region
		// the same as an empty candidate set.
		if e.metrics != nil {
			e.metrics.QueriesTotal.Inc()
		}
		return query.Execute(req, nil), nil
	}

	e.storeMu.RLock()
	defer e.storeMu.RUnlock()
	e.indexMu.RLock()
	defer e.indexMu.RUnlock()

	candidateIdx := e.regions.SubtreeOffers(req.RegionID)

	candidates := make([]*offer.Offer, 0, len(candidateIdx))
	for i, idx := range candidateIdx {
		if i%e.cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, apierr.Internalf(op, err, "query canceled")
			}
		}

		if !e.duration.Contains(req.NumberDays, idx) {
			continue
		}
		if int(idx) >= e.store.Len() {
			return nil, apierr.Internalf(op, nil, "offer index %d out of bounds", idx)
		}
		o := e.store.Get(idx)
		if o.StartTS < req.TimeRangeStart || o.EndTS > req.TimeRangeEnd {
			continue
		}
		candidates = append(candidates, o)
	}

	resp := query.Execute(req, candidates)

	if e.metrics != nil {
		e.metrics.QueriesTotal.Inc()
		e.metrics.QueryDuration.Observe(time.Since(start).Seconds())
		e.metrics.QueryResultSize.Observe(float64(len(resp.Offers)))
	}
	return resp, nil
}

// Cleanup empties the store and both indexes atomically with respect to
// readers: every subsequently started query observes an empty store, per
// spec.md section 5. Repeated Cleanup calls are a no-op.
func (e *Engine) Cleanup(_ context.Context) error {
	e.storeMu.Lock()
	e.indexMu.Lock()
	e.store.Clear()
	e.regions.Clear()
	e.duration.Clear()
	e.indexMu.Unlock()
	e.storeMu.Unlock()

	if e.metrics != nil {
		e.metrics.CleanupsTotal.Inc()
		e.metrics.StoreSize.Set(0)
	}
	return nil
}

func validateOffer(o offer.Offer) error {
	switch {
	case o.ID == "":
		return fmt.Errorf("id is required")
	case int(o.RegionID) >= region.NodeCount:
		return fmt.Errorf("regionId %d out of range", o.RegionID)
	case o.StartTS >= o.EndTS:
		return fmt.Errorf("startTs must be before endTs")
	case o.NumberSeats <= 0:
		return fmt.Errorf("numberSeats must be positive")
	case o.Price < 0:
		return fmt.Errorf("price must not be negative")
	case o.FreeKilometers < 0:
		return fmt.Errorf("freeKilometers must not be negative")
	}
	switch o.CarType {
	case offer.Small, offer.Sports, offer.Luxury, offer.Family:
	default:
		return fmt.Errorf("unknown carType %q", o.CarType)
	}
	return nil
}
