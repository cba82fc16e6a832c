package httpapi

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iaros/offer_engine/internal/engine"
	"iaros/offer_engine/internal/logging"
	"iaros/offer_engine/internal/metrics"
)

func newTestEngine() *engine.Engine {
	return engine.New(engine.Options{
		Metrics: metrics.New(prometheus.NewRegistry()),
		Logger:  logging.Nop(),
	})
}

func TestPostOffers_ThenGetOffers_RoundTrip(t *testing.T) {
	eng := newTestEngine()
	router := NewRouter(eng, logging.Nop())

	body := postOffersRequest{Offers: []offerDTO{{
		ID:                   "offer-1",
		Data:                 base64.StdEncoding.EncodeToString([]byte("payload")),
		MostSpecificRegionID: 7,
		StartDate:            0,
		EndDate:              3 * 86_400_000,
		NumberSeats:          4,
		Price:                150,
		FreeKilometers:       100,
		CarType:              "small",
		HasVollkasko:         true,
	}}}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	postReq := httptest.NewRequest("POST", "/api/offers", bytes.NewReader(raw))
	postRec := httptest.NewRecorder()
	router.ServeHTTP(postRec, postReq)
	require.Equal(t, 200, postRec.Code)

	getReq := httptest.NewRequest("GET", "/api/offers?regionId=7&timeRangeStart=0&timeRangeEnd=259200000"+
		"&numberDays=3&sortOrder=price-asc&page=0&pageSize=10&priceRangeWidth=50&minFreeKilometerWidth=50", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	require.Equal(t, 200, getRec.Code)

	var resp getResponseBody
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &resp))
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "offer-1", resp.Offers[0].ID)
}

func TestPostOffers_MalformedBody_Returns400(t *testing.T) {
	eng := newTestEngine()
	router := NewRouter(eng, logging.Nop())

	req := httptest.NewRequest("POST", "/api/offers", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestGetOffers_MissingRequiredParam_Returns400(t *testing.T) {
	eng := newTestEngine()
	router := NewRouter(eng, logging.Nop())

	req := httptest.NewRequest("GET", "/api/offers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestDeleteOffers_ClearsStore(t *testing.T) {
	eng := newTestEngine()
	router := NewRouter(eng, logging.Nop())

	body := postOffersRequest{Offers: []offerDTO{{
		ID:                   "offer-1",
		Data:                 base64.StdEncoding.EncodeToString([]byte("payload")),
		MostSpecificRegionID: 3,
		StartDate:            0,
		EndDate:              86_400_000,
		NumberSeats:          2,
		Price:                50,
		FreeKilometers:       10,
		CarType:              "family",
	}}}
	raw, _ := json.Marshal(body)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/offers", bytes.NewReader(raw)))

	delRec := httptest.NewRecorder()
	router.ServeHTTP(delRec, httptest.NewRequest("DELETE", "/api/offers", nil))
	require.Equal(t, 200, delRec.Code)

	getReq := httptest.NewRequest("GET", "/api/offers?regionId=3&timeRangeStart=0&timeRangeEnd=86400000"+
		"&numberDays=1&sortOrder=price-asc&page=0&pageSize=10&priceRangeWidth=50&minFreeKilometerWidth=50", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)

	var resp getResponseBody
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Offers)
}
