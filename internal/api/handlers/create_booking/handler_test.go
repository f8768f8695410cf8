package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/Salon-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postBooking(t *testing.T, handler *Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

const validPayload = `{
	"clientName": "Анна Иванова",
	"clientEmail": "anna@example.com",
	"serviceName": "Маникюр",
	"date": "2024-06-02",
	"timeSlot": "2024-06-02T12:30:00+03:00"
}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:          1,
		Reference:   "3f6c23aa-9f3f-4f0e-8a44-2b7f0d1c9e11",
		ClientName:  "Анна Иванова",
		ClientEmail: "anna@example.com",
		ServiceName: "Маникюр",
		Date:        "2024-06-02",
		TimeSlot:    "2024-06-02T12:30:00+03:00",
		Status:      "pending",
		CreatedAt:   time.Now(),
	}}
	handler := NewHandler(uc, nopLogger{})

	rec := postBooking(t, handler, validPayload)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "2024-06-02", uc.lastReq.Date)

	var body CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pending", body.Status)
	assert.NotEmpty(t, body.Reference)
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := postBooking(t, handler, `{broken`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Неизвестные поля отклоняются
	rec = postBooking(t, handler, `{"clientName": "a", "surprise": true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "invalid date", err: createBooking.ErrInvalidDate, wantCode: http.StatusBadRequest},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "day closed", err: createBooking.ErrDayClosed, wantCode: http.StatusBadRequest},
		{name: "slot not in schedule", err: createBooking.ErrSlotNotInSchedule, wantCode: http.StatusBadRequest},
		{name: "slot already booked", err: createBooking.ErrSlotAlreadyBooked, wantCode: http.StatusConflict},
		{name: "internal", err: createBooking.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := postBooking(t, handler, validPayload)
			require.Equal(t, tt.wantCode, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
