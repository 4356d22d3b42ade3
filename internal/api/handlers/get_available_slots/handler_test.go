package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/internal/integrations/bookingcore"
	"github.com/barberlink/admin-gateway/pkg/types"
)

type fakeClient struct {
	slots []domain.Slot
	err   error
}

func (f *fakeClient) AvailableSlots(ctx context.Context, tenantID int64, date string) ([]domain.Slot, error) {
	return f.slots, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, client *fakeClient, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(client, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) SlotsResponse {
	t.Helper()
	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleReturnsSlots(t *testing.T) {
	start, _ := types.ParseLocalDateTime("2024-03-14T10:00:00")
	end, _ := types.ParseLocalDateTime("2024-03-14T10:30:00")
	client := &fakeClient{slots: []domain.Slot{{StartTime: start, EndTime: end}}}

	rec := doRequest(t, client, "/api/v1/slots/available?tenantId=3&date=2024-03-14")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "2024-03-14T10:00:00", resp.Slots[0].StartTime)
	assert.Equal(t, "2024-03-14T10:30:00", resp.Slots[0].EndTime)
	assert.Equal(t, "10:00", resp.Slots[0].Label)
	assert.Empty(t, resp.Warning)
}

func TestHandleMalformedSlotListStillRendersWithWarning(t *testing.T) {
	client := &fakeClient{slots: []domain.Slot{}, err: bookingcore.ErrInvalidResponse}

	rec := doRequest(t, client, "/api/v1/slots/available?tenantId=3&date=2024-03-14")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Empty(t, resp.Slots)
	assert.NotEmpty(t, resp.Warning)
}

func TestHandleBadParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"missing tenant", "/api/v1/slots/available?date=2024-03-14"},
		{"non-numeric tenant", "/api/v1/slots/available?tenantId=abc&date=2024-03-14"},
		{"missing date", "/api/v1/slots/available?tenantId=3"},
		{"bad date format", "/api/v1/slots/available?tenantId=3&date=14.03.2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeClient{}, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleUpstreamErrors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		rec := doRequest(t, &fakeClient{err: bookingcore.ErrUnauthorized},
			"/api/v1/slots/available?tenantId=3&date=2024-03-14")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("backend failure", func(t *testing.T) {
		rec := doRequest(t, &fakeClient{err: bookingcore.ErrInternal},
			"/api/v1/slots/available?tenantId=3&date=2024-03-14")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
