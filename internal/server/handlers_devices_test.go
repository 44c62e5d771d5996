package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndListReminders(t *testing.T) {
	srv := newTestServer(t)
	device := uuid.New()

	rec := doJSON(t, srv, http.MethodPost,
		"/api/devices/"+device.String()+"/reminders",
		`{"shopId":1,"intent":{"type":"in","minutes":30}}`)
	require.Equal(t, 204, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/reminders", "")
	require.Equal(t, 200, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])

	reminders := body["reminders"].([]any)
	first := reminders[0].(map[string]any)
	assert.Equal(t, float64(1), first["shopId"])
	assert.Equal(t, "in", first["kind"])
	assert.Equal(t, false, first["triggered"])
}

func TestSetReminderLegacyBareNumber(t *testing.T) {
	srv := newTestServer(t)
	device := uuid.New()

	rec := doJSON(t, srv, http.MethodPost,
		"/api/devices/"+device.String()+"/reminders",
		`{"shopId":1,"intent":30}`)
	require.Equal(t, 204, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/reminders", "")
	body := decodeBody(t, rec)
	require.Equal(t, float64(1), body["count"])

	first := body["reminders"].([]any)[0].(map[string]any)
	assert.Equal(t, "before_close", first["kind"])
	assert.Equal(t, float64(30), first["minutes"])
}

func TestSetReminderUnknownShopIsNoOp(t *testing.T) {
	srv := newTestServer(t)
	device := uuid.New()

	rec := doJSON(t, srv, http.MethodPost,
		"/api/devices/"+device.String()+"/reminders",
		`{"shopId":999,"intent":{"type":"in","minutes":30}}`)
	require.Equal(t, 204, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/reminders", "")
	assert.Equal(t, float64(0), decodeBody(t, rec)["count"])
}

func TestSetReminderUnrecognizedIntentIsNoOp(t *testing.T) {
	srv := newTestServer(t)
	device := uuid.New()

	rec := doJSON(t, srv, http.MethodPost,
		"/api/devices/"+device.String()+"/reminders",
		`{"shopId":1,"intent":{"type":"weekly"}}`)
	require.Equal(t, 204, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/reminders", "")
	assert.Equal(t, float64(0), decodeBody(t, rec)["count"])
}

func TestSetReminderInvalidDevice(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost,
		"/api/devices/not-a-uuid/reminders",
		`{"shopId":1,"intent":30}`)
	assert.Equal(t, 400, rec.Code)
}

func TestActiveReminderQuery(t *testing.T) {
	srv := newTestServer(t)
	device := uuid.New()

	rec := doJSON(t, srv, http.MethodPost,
		"/api/devices/"+device.String()+"/reminders",
		`{"shopId":4,"intent":{"type":"before_close","minutes":45}}`)
	require.Equal(t, 204, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/reminders/active?shop=4", "")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["active"])

	rec = doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/reminders/active?shop=2", "")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["active"])

	rec = doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/reminders/active?shop=abc", "")
	assert.Equal(t, 400, rec.Code)
}

func TestNotificationsConfirmationAndMarkRead(t *testing.T) {
	srv := newTestServer(t)
	device := uuid.New()

	rec := doJSON(t, srv, http.MethodPost,
		"/api/devices/"+device.String()+"/reminders",
		`{"shopId":1,"intent":{"type":"in","minutes":10}}`)
	require.Equal(t, 204, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/notifications", "")
	require.Equal(t, 200, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, float64(1), body["count"])

	first := body["notifications"].([]any)[0].(map[string]any)
	assert.Equal(t, "Reminder set for Discovery Wines", first["text"])
	assert.Equal(t, false, first["read"])

	id := first["id"].(string)
	rec = doJSON(t, srv, http.MethodPost,
		fmt.Sprintf("/api/devices/%s/notifications/%s/read", device, id), "")
	require.Equal(t, 204, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/notifications", "")
	first = decodeBody(t, rec)["notifications"].([]any)[0].(map[string]any)
	assert.Equal(t, true, first["read"])
}

func TestMarkReadUnknownNotification(t *testing.T) {
	srv := newTestServer(t)
	device := uuid.New()

	rec := doJSON(t, srv, http.MethodPost,
		fmt.Sprintf("/api/devices/%s/notifications/%s/read", device, uuid.New()), "")
	assert.Equal(t, 404, rec.Code)
}

func TestFavoritesRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	device := uuid.New()

	rec := doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/favorites", "")
	require.Equal(t, 200, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["favorites"])

	rec = doJSON(t, srv, http.MethodPut, "/api/devices/"+device.String()+"/favorites/3", "")
	require.Equal(t, 204, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/favorites", "")
	favorites := decodeBody(t, rec)["favorites"].([]any)
	require.Len(t, favorites, 1)
	assert.Equal(t, float64(3), favorites[0])

	rec = doJSON(t, srv, http.MethodDelete, "/api/devices/"+device.String()+"/favorites/3", "")
	require.Equal(t, 204, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/devices/"+device.String()+"/favorites", "")
	assert.Empty(t, decodeBody(t, rec)["favorites"])
}

func TestFavoritesInvalidShopID(t *testing.T) {
	srv := newTestServer(t)
	device := uuid.New()

	rec := doJSON(t, srv, http.MethodPut, "/api/devices/"+device.String()+"/favorites/abc", "")
	assert.Equal(t, 400, rec.Code)
}
