package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cancelBooking "github.com/m04kA/Salon-BookingService/internal/usecase/cancel_booking"
)

type fakeUseCase struct {
	err     error
	lastReq *cancelBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *cancelBooking.Request) error {
	f.lastReq = req
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patchCancel(t *testing.T, handler *Handler, bookingID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_CancelWithReason(t *testing.T) {
	uc := &fakeUseCase{}
	handler := NewHandler(uc, nopLogger{})

	rec := patchCancel(t, handler, "42", `{"cancellationReason": "клиент передумал"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(42), uc.lastReq.BookingID)
	require.NotNil(t, uc.lastReq.CancellationReason)
	assert.Equal(t, "клиент передумал", *uc.lastReq.CancellationReason)
}

func TestHandle_EmptyBodyAllowed(t *testing.T) {
	uc := &fakeUseCase{}
	handler := NewHandler(uc, nopLogger{})

	rec := patchCancel(t, handler, "42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Nil(t, uc.lastReq.CancellationReason)
}

func TestHandle_InvalidBookingID(t *testing.T) {
	uc := &fakeUseCase{}
	handler := NewHandler(uc, nopLogger{})

	rec := patchCancel(t, handler, "abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "not found", err: cancelBooking.ErrBookingNotFound, wantCode: http.StatusNotFound},
		{name: "cannot cancel", err: cancelBooking.ErrCannotCancel, wantCode: http.StatusBadRequest},
		{name: "invalid input", err: cancelBooking.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "internal", err: cancelBooking.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := patchCancel(t, handler, "42", "")
			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
