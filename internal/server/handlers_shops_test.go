package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestListShops(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/shops", "")
	require.Equal(t, 200, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(8), body["count"])

	shops, ok := body["shops"].([]any)
	require.True(t, ok)
	require.Len(t, shops, 8)

	first, ok := shops[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Discovery Wines", first["name"])

	summary, ok := first["reportSummary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "unknown", summary["status"])
	assert.Equal(t, "low", summary["confidence"])
	assert.Nil(t, summary["lastReportedAt"])
}

func TestListShopsCategoryFilter(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/shops?category=bar", "")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, float64(3), decodeBody(t, rec)["count"])

	rec = doJSON(t, srv, http.MethodGet, "/api/shops?category=premium", "")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, float64(3), decodeBody(t, rec)["count"])
}

func TestListShopsSearchFilter(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/shops?q=connaught", "")
	require.Equal(t, 200, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])
}

func TestListShopsOpenNow(t *testing.T) {
	srv := newTestServer(t)

	// The fixture clock sits at 20:00, inside every seed schedule.
	rec := doJSON(t, srv, http.MethodGet, "/api/shops?open_now=true", "")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, float64(8), decodeBody(t, rec)["count"])
}

func TestReportInvalidShopID(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/shops/abc/report", `{"isOpen":true}`)
	assert.Equal(t, 400, rec.Code)
}

func TestReportMissingIsOpen(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/shops/1/report", `{}`)
	assert.Equal(t, 400, rec.Code)
}

func TestReportUnknownShop(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/shops/999/report", `{"isOpen":true}`)
	assert.Equal(t, 404, rec.Code)

	// A rejected report must leave no tally behind
	_, exists := srv.aggregator.Tally(999)
	assert.False(t, exists)
}

func TestReportSuccess(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/shops/1/report", `{"isOpen":true}`)
	require.Equal(t, 200, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])

	shop, ok := body["shop"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "open", shop["userReported"])

	summary, ok := shop["reportSummary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), summary["openCount"])
	assert.Equal(t, "open", summary["status"])
	assert.Equal(t, "low", summary["confidence"])
	assert.NotNil(t, summary["lastReportedAt"])
}

func TestReportConfidenceGrowsWithVotes(t *testing.T) {
	srv := newTestServer(t)

	var rec *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		rec = doJSON(t, srv, http.MethodPost, "/api/shops/2/report", `{"isOpen":true}`)
		require.Equal(t, 200, rec.Code)
	}

	body := decodeBody(t, rec)
	shop := body["shop"].(map[string]any)
	summary := shop["reportSummary"].(map[string]any)
	assert.Equal(t, float64(5), summary["openCount"])
	assert.Equal(t, "high", summary["confidence"])
}

func TestReportReflectedInListing(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/shops/3/report", `{"isOpen":false}`)
	require.Equal(t, 200, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/shops?q=%s", "sidecar"), "")
	require.Equal(t, 200, rec.Code)

	body := decodeBody(t, rec)
	shops := body["shops"].([]any)
	require.Len(t, shops, 1)

	shop := shops[0].(map[string]any)
	assert.Equal(t, "closed", shop["userReported"])
	assert.Equal(t, "Reported Closed", shop["statusText"])

	summary := shop["reportSummary"].(map[string]any)
	assert.Equal(t, "closed", summary["status"])
}
