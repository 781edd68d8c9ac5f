package delete_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingService "github.com/m04kA/VisitBookingService/internal/service/bookings"
	"github.com/m04kA/VisitBookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	resp *models.BookingResponse
	err  error

	gotID int64
}

func (f *fakeService) Delete(_ context.Context, id int64) (*models.BookingResponse, error) {
	f.gotID = id
	return f.resp, f.err
}

func doRequest(t *testing.T, svc BookingService, id string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/bookings/{id}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings/"+id, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{
		ID:       7,
		Name:     "Ivan Petrov",
		Phone:    "+79001234567",
		Date:     "2025-10-15",
		TimeSlot: "09:00",
	}}

	rec := doRequest(t, svc, "7")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.gotID)

	var resp DeleteBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Deleted)
	assert.Equal(t, int64(7), resp.Deleted.ID)
}

func TestHandler_Handle_NotFound(t *testing.T) {
	svc := &fakeService{err: bookingService.ErrBookingNotFound}

	rec := doRequest(t, svc, "42")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Handle_InvalidID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_InternalError(t *testing.T) {
	svc := &fakeService{err: bookingService.ErrInternal}

	rec := doRequest(t, svc, "7")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
