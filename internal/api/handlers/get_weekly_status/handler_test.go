package get_weekly_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VisitBookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	resp *models.WeeklyStatusResponse
	err  error

	gotReq *models.WeeklyStatusRequest
}

func (f *fakeService) WeeklyStatus(_ context.Context, req *models.WeeklyStatusRequest) (*models.WeeklyStatusResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func doRequest(t *testing.T, svc BookingService, query string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/weekly-status"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.WeeklyStatusResponse{
		HasBookedThisWeek: true,
		WeeklyBookings:    1,
		CanBook:           false,
	}}

	rec := doRequest(t, svc, "?phone=%2B79001234567&email=ivan@example.com&date=2025-10-15")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.gotReq)
	assert.Equal(t, "+79001234567", svc.gotReq.Phone)
	require.NotNil(t, svc.gotReq.Email)
	assert.Equal(t, "ivan@example.com", *svc.gotReq.Email)
	require.NotNil(t, svc.gotReq.Date)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), *svc.gotReq.Date)

	var resp models.WeeklyStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.HasBookedThisWeek)
	assert.False(t, resp.CanBook)
}

func TestHandler_Handle_PhoneOnly(t *testing.T) {
	svc := &fakeService{resp: &models.WeeklyStatusResponse{CanBook: true}}

	rec := doRequest(t, svc, "?phone=%2B79001234567")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Nil(t, svc.gotReq.Email)
	assert.Nil(t, svc.gotReq.Date)
}

func TestHandler_Handle_MissingPhone(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_MalformedDate(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "?phone=%2B79001234567&date=15.10.2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
