// Package metrics exposes the Prometheus collectors the engine updates,
// following the counter/histogram/gauge split the teacher's
// ControllerMetrics uses in PricingController.go.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every collector the offer engine updates.
type Metrics struct {
	OffersIngested   prometheus.Counter
	IngestBatches    prometheus.Counter
	IngestErrors     prometheus.Counter
	QueriesTotal     prometheus.Counter
	QueryErrors      prometheus.Counter
	QueryDuration    prometheus.Histogram
	QueryResultSize  prometheus.Histogram
	CleanupsTotal    prometheus.Counter
	StoreSize        prometheus.Gauge
}

// New registers and returns a fresh Metrics set against reg. Pass
// prometheus.NewRegistry() in tests to avoid collisions with the global
// default registry across parallel test packages.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OffersIngested: factory.NewCounter(prometheus.CounterOpts{
			Name: "offer_engine_offers_ingested_total",
			Help: "Total number of offers accepted into the store.",
		}),
		IngestBatches: factory.NewCounter(prometheus.CounterOpts{
			Name: "offer_engine_ingest_batches_total",
			Help: "Total number of ingest batch requests processed.",
		}),
		IngestErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "offer_engine_ingest_errors_total",
			Help: "Total number of ingest batches rejected by validation.",
		}),
		QueriesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "offer_engine_queries_total",
			Help: "Total number of offer queries processed.",
		}),
		QueryErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "offer_engine_query_errors_total",
			Help: "Total number of offer queries rejected by validation.",
		}),
		QueryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "offer_engine_query_duration_seconds",
			Help:    "Offer query processing time distribution.",
			Buckets: prometheus.DefBuckets,
		}),
		QueryResultSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "offer_engine_query_result_size",
			Help:    "Number of offers returned per query page.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		CleanupsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "offer_engine_cleanups_total",
			Help: "Total number of cleanup invocations.",
		}),
		StoreSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "offer_engine_store_size",
			Help: "Current number of offers held in the store.",
		}),
	}
}
