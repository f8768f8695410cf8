package availability

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage"
	"github.com/m04kA/Salon-BookingService/internal/service/availability/models"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

type fakeConfigStore struct {
	cfg      *domain.AvailabilityConfig
	readErr  error
	writeErr error
	writes   int
}

func (f *fakeConfigStore) Read(_ context.Context, _ string, out interface{}) error {
	if f.readErr != nil {
		return f.readErr
	}
	if f.cfg == nil {
		return storage.ErrDocumentNotFound
	}
	data, err := json.Marshal(f.cfg)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (f *fakeConfigStore) Write(_ context.Context, _ string, value interface{}) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes++

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var cfg domain.AvailabilityConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	f.cfg = &cfg
	return nil
}

type fakeInvalidator struct {
	err   error
	calls int
}

func (f *fakeInvalidator) InvalidateAvailability(_ context.Context) error {
	f.calls++
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGet_SeedsDefaultsOnFirstRead(t *testing.T) {
	store := &fakeConfigStore{}

	svc := NewService(store, &fakeInvalidator{}, nopLogger{})
	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	require.NotNil(t, resp)

	// Дефолты записаны в хранилище и совпадают с выдачей
	assert.Equal(t, 1, store.writes)
	require.NotNil(t, store.cfg)
	assert.Equal(t, []models.SlotTime{
		{Hour: 9, Minute: 30}, {Hour: 12, Minute: 0}, {Hour: 14, Minute: 30}, {Hour: 16, Minute: 30},
	}, resp.TimeSlots[domain.GroupWeekdays])
	assert.Empty(t, resp.FullyBookedDates)
}

func TestGet_SeedWriteFailureStillReturnsDefaults(t *testing.T) {
	store := &fakeConfigStore{writeErr: errors.New("disk full")}

	svc := NewService(store, &fakeInvalidator{}, nopLogger{})
	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.TimeSlots)
}

func TestGet_ReturnsStoredConfig(t *testing.T) {
	store := &fakeConfigStore{cfg: &domain.AvailabilityConfig{
		BusinessHours: map[string]domain.DayHours{
			domain.GroupSunday: {Open: "12:00", Close: "16:00", Enabled: ptr.Ptr(true)},
		},
		TimeSlots: map[string][]domain.SlotTime{
			domain.GroupSunday: {{Hour: 12, Minute: 30}},
		},
		FullyBookedDates: []string{"2024-06-02"},
	}}

	svc := NewService(store, &fakeInvalidator{}, nopLogger{})
	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Zero(t, store.writes)
	assert.Equal(t, []string{"2024-06-02"}, resp.FullyBookedDates)
	require.Contains(t, resp.BusinessHours, domain.GroupSunday)
	require.NotNil(t, resp.BusinessHours[domain.GroupSunday].Enabled)
	assert.True(t, *resp.BusinessHours[domain.GroupSunday].Enabled)
}

func TestGet_StoreFailure(t *testing.T) {
	store := &fakeConfigStore{readErr: errors.New("connection refused")}

	svc := NewService(store, &fakeInvalidator{}, nopLogger{})
	resp, err := svc.Get(context.Background())

	require.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestUpdate_WritesConfigAndInvalidatesCaches(t *testing.T) {
	store := &fakeConfigStore{}
	invalidator := &fakeInvalidator{}

	svc := NewService(store, invalidator, nopLogger{})
	resp, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		BusinessHours: map[string]models.DayHours{
			"monday": {Open: "09:00", Close: "18:00", Enabled: ptr.Ptr(false)},
		},
		TimeSlots: map[string][]models.SlotTime{
			domain.GroupWeekdays: {{Hour: 10, Minute: 0}},
		},
		FullyBookedDates: []string{"2024-06-02", "2024-06-02", "2024-06-05"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, store.writes)
	assert.Equal(t, 1, invalidator.calls)

	// Даты дедуплицируются при сохранении
	assert.Equal(t, []string{"2024-06-02", "2024-06-05"}, resp.FullyBookedDates)
	assert.Equal(t, []string{"2024-06-02", "2024-06-05"}, store.cfg.FullyBookedDates)
}

func TestUpdate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateConfigRequest
	}{
		{
			name: "unknown weekday",
			req: &models.UpdateConfigRequest{
				BusinessHours: map[string]models.DayHours{"funday": {}},
			},
		},
		{
			name: "invalid open time",
			req: &models.UpdateConfigRequest{
				BusinessHours: map[string]models.DayHours{"monday": {Open: "9:00"}},
			},
		},
		{
			name: "invalid close time",
			req: &models.UpdateConfigRequest{
				BusinessHours: map[string]models.DayHours{"monday": {Close: "24:00"}},
			},
		},
		{
			name: "unknown slot group",
			req: &models.UpdateConfigRequest{
				TimeSlots: map[string][]models.SlotTime{"holidays": {{Hour: 10}}},
			},
		},
		{
			name: "hour out of range",
			req: &models.UpdateConfigRequest{
				TimeSlots: map[string][]models.SlotTime{domain.GroupWeekdays: {{Hour: 24, Minute: 0}}},
			},
		},
		{
			name: "minute out of range",
			req: &models.UpdateConfigRequest{
				TimeSlots: map[string][]models.SlotTime{domain.GroupWeekdays: {{Hour: 10, Minute: 60}}},
			},
		},
		{
			name: "invalid fully booked date",
			req: &models.UpdateConfigRequest{
				FullyBookedDates: []string{"2024-6-2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeConfigStore{}
			invalidator := &fakeInvalidator{}
			svc := NewService(store, invalidator, nopLogger{})

			resp, err := svc.Update(context.Background(), tt.req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
			assert.Zero(t, store.writes)
			assert.Zero(t, invalidator.calls)
		})
	}
}

func TestUpdate_StoreFailure(t *testing.T) {
	store := &fakeConfigStore{writeErr: errors.New("disk full")}
	invalidator := &fakeInvalidator{}

	svc := NewService(store, invalidator, nopLogger{})
	resp, err := svc.Update(context.Background(), &models.UpdateConfigRequest{})

	require.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
	assert.Zero(t, invalidator.calls)
}

func TestUpdate_InvalidationFailureIsNotFatal(t *testing.T) {
	store := &fakeConfigStore{}
	invalidator := &fakeInvalidator{err: errors.New("redis down")}

	svc := NewService(store, invalidator, nopLogger{})
	resp, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		TimeSlots: map[string][]models.SlotTime{domain.GroupWeekdays: {{Hour: 10, Minute: 0}}},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 1, store.writes)
}
