package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VisitBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/VisitBookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	return f.resp, f.err
}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() string {
	return `{
		"name": "Ivan Petrov",
		"phone": "+79001234567",
		"purpose": "Consultation",
		"date": "2025-10-15",
		"time_slot": "09:00"
	}`
}

func TestHandler_Handle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:        7,
		Name:      "Ivan Petrov",
		Phone:     "+79001234567",
		Purpose:   "Consultation",
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "09:00",
		CreatedAt: time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Ivan Petrov", resp.Booking.Name)
	assert.Equal(t, "2025-10-15", resp.Booking.Date)
	assert.Equal(t, "09:00", resp.Booking.TimeSlot)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_MalformedDate(t *testing.T) {
	body := `{"name": "Ivan Petrov", "phone": "+79001234567", "purpose": "Consultation", "date": "15.10.2025", "time_slot": "09:00"}`

	rec := doRequest(t, &fakeUseCase{}, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "date", resp.Fields[0].Field)
}

func TestHandler_Handle_ValidationErrorsListed(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.ValidationError{
		Violations: []createBooking.FieldViolation{
			{Field: "phone", Message: "is required"},
			{Field: "purpose", Message: "must be between 5 and 1000 characters"},
		},
	}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "phone", resp.Fields[0].Field)
	assert.Equal(t, "purpose", resp.Fields[1].Field)
}

func TestHandler_Handle_AdmissionConflicts(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "slot full", err: createBooking.ErrSlotFull, wantCode: "SLOT_FULL"},
		{name: "weekly limit", err: createBooking.ErrWeeklyLimitExceeded, wantCode: "WEEKLY_LIMIT_EXCEEDED"},
		{name: "daily limit", err: createBooking.ErrDailyLimitReached, wantCode: "DAILY_LIMIT_REACHED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody())
			require.Equal(t, http.StatusConflict, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestHandler_Handle_InternalError(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: errors.New("storage down")}, validBody())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
