package export_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exportService "github.com/m04kA/VisitBookingService/internal/service/export"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	result *exportService.Result
	err    error

	gotReq *exportService.Request
}

func (f *fakeService) Export(_ context.Context, req *exportService.Request) (*exportService.Result, error) {
	f.gotReq = req
	return f.result, f.err
}

func doRequest(t *testing.T, svc ExportService, query string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/export"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle_OK(t *testing.T) {
	svc := &fakeService{result: &exportService.Result{
		Filename: "bookings_all_all_20251016_143000.xlsx",
		Data:     []byte("workbook-bytes"),
	}}

	rec := doRequest(t, svc, "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="bookings_all_all_20251016_143000.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "workbook-bytes", rec.Body.String())
}

func TestHandler_Handle_PeriodForwarded(t *testing.T) {
	svc := &fakeService{result: &exportService.Result{Filename: "f.xlsx"}}

	rec := doRequest(t, svc, "?startDate=2025-10-01&endDate=2025-10-31")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.gotReq.StartDate)
	require.NotNil(t, svc.gotReq.EndDate)
	assert.Equal(t, "2025-10-01", svc.gotReq.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-10-31", svc.gotReq.EndDate.Format("2006-01-02"))
}

func TestHandler_Handle_MalformedDate(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "?startDate=01.10.2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_InvertedPeriod(t *testing.T) {
	svc := &fakeService{err: exportService.ErrInvalidInput}

	rec := doRequest(t, svc, "?startDate=2025-10-31&endDate=2025-10-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
