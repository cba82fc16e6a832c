package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"iaros/offer_engine/internal/apierr"
	"iaros/offer_engine/internal/engine"
	"iaros/offer_engine/internal/logging"
	"iaros/offer_engine/internal/offer"
)

// Handlers wires the three offer endpoints to an Engine.
type Handlers struct {
	engine *engine.Engine
	logger *logging.Logger
}

// NewHandlers builds a Handlers bound to eng.
func NewHandlers(eng *engine.Engine, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Handlers{engine: eng, logger: logger}
}

// PostOffers handles POST /api/offers.
func (h *Handlers) PostOffers(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFor(r)
	log := h.logger.WithRequestID(requestID).WithOp("postOffers")

	var body postOffersRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, requestID, apierr.Validationf("httpapi.PostOffers", "malformed body: %v", err))
		return
	}

	offers := make([]offer.Offer, 0, len(body.Offers))
	for i, dto := range body.Offers {
		o, err := dto.toOffer()
		if err != nil {
			writeError(w, requestID, apierr.Validationf("httpapi.PostOffers", "offer %d: %v", i, err))
			return
		}
		offers = append(offers, o)
	}

	if err := h.engine.Insert(r.Context(), offers); err != nil {
		log.Warn("ingest rejected", zap.Error(err))
		writeError(w, requestID, err)
		return
	}

	w.Header().Set("X-Request-Id", requestID)
	w.WriteHeader(http.StatusOK)
}

// GetOffers handles GET /api/offers.
func (h *Handlers) GetOffers(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFor(r)
	log := h.logger.WithRequestID(requestID).WithOp("getOffers")

	req, err := parseRequest(r.URL.Query())
	if err != nil {
		writeError(w, requestID, apierr.Validationf("httpapi.GetOffers", "%v", err))
		return
	}

	resp, err := h.engine.Query(r.Context(), req)
	if err != nil {
		log.Warn("query failed", zap.Error(err))
		writeError(w, requestID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-Id", requestID)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(toResponseBody(resp))
}

// DeleteOffers handles DELETE /api/offers.
func (h *Handlers) DeleteOffers(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFor(r)

	if err := h.engine.Cleanup(r.Context()); err != nil {
		writeError(w, requestID, err)
		return
	}

	w.Header().Set("X-Request-Id", requestID)
	w.WriteHeader(http.StatusOK)
}

func requestIDFor(r *http.Request) string {
	if id := r.Header.Get("X-Request-Id"); id != "" {
		return id
	}
	return uuid.NewString()
}

// writeError maps an apierr.Kind to an HTTP status and writes a structured
// error body, per spec.md section 7.
func writeError(w http.ResponseWriter, requestID string, err error) {
	status := http.StatusInternalServerError
	switch apierr.KindOf(err) {
	case apierr.Validation:
		status = http.StatusBadRequest
	case apierr.NotFound:
		status = http.StatusNotFound
	case apierr.Internal:
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-Id", requestID)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"requestId": requestID,
			"message":   err.Error(),
		},
	})
}
