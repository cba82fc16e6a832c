package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"iaros/offer_engine/internal/engine"
	"iaros/offer_engine/internal/logging"
)

// NewRouter builds the full gorilla/mux router for the offer engine: the
// three domain endpoints from spec.md section 6, plus the ambient
// operational endpoints (/metrics, /healthz) every service in this idiom
// carries regardless of domain scope.
func NewRouter(eng *engine.Engine, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Nop()
	}
	h := NewHandlers(eng, logger)

	r := mux.NewRouter()
	r.HandleFunc("/api/offers", h.PostOffers).Methods(http.MethodPost)
	r.HandleFunc("/api/offers", h.GetOffers).Methods(http.MethodGet)
	r.HandleFunc("/api/offers", h.DeleteOffers).Methods(http.MethodDelete)
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return withLogging(r, logger)
}

// withLogging wraps next with the teacher's HTTP-request-logger pattern:
// one structured log line per completed request.
func withLogging(next http.Handler, logger *logging.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		logger.HTTPRequest(r.Method, r.URL.Path, sw.status, float64(time.Since(start).Milliseconds()))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}
