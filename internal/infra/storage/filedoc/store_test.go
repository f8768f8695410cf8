package filedoc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStore_WriteRead(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cfg := domain.NewDefaultAvailabilityConfig()
	cfg.MarkFullyBooked("2024-06-02")

	require.NoError(t, store.Write(ctx, domain.AvailabilityDocumentKey, cfg))

	var got domain.AvailabilityConfig
	require.NoError(t, store.Read(ctx, domain.AvailabilityDocumentKey, &got))

	assert.Equal(t, cfg.TimeSlots, got.TimeSlots)
	assert.Equal(t, []string{"2024-06-02"}, got.FullyBookedDates)
}

func TestStore_ReadMissingKey(t *testing.T) {
	store := newTestStore(t)

	var got domain.AvailabilityConfig
	err := store.Read(context.Background(), "availability", &got)

	require.ErrorIs(t, err, ErrDocumentNotFound)
	// Проверка не зависит от драйвера хранилища
	require.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestStore_OverwriteReplacesDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &domain.AvailabilityConfig{FullyBookedDates: []string{"2024-06-01", "2024-06-02"}}
	require.NoError(t, store.Write(ctx, "availability", first))

	second := &domain.AvailabilityConfig{FullyBookedDates: []string{"2024-06-03"}}
	require.NoError(t, store.Write(ctx, "availability", second))

	var got domain.AvailabilityConfig
	require.NoError(t, store.Read(ctx, "availability", &got))
	assert.Equal(t, []string{"2024-06-03"}, got.FullyBookedDates)
}

func TestStore_InvalidKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "UPPER", "../escape", "with space", ".hidden"} {
		err := store.Write(ctx, key, map[string]string{})
		require.ErrorIs(t, err, ErrInvalidKey, key)

		err = store.Read(ctx, key, &map[string]string{})
		require.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestStore_CorruptedDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "availability.json"), []byte("{broken"), 0o644))

	var got domain.AvailabilityConfig
	err = store.Read(context.Background(), "availability", &got)
	require.ErrorIs(t, err, ErrUnmarshal)
}

func TestStore_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write(context.Background(), "availability", domain.NewDefaultAvailabilityConfig()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "availability.json", entries[0].Name())
}
