package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/stretchr/testify/require"
)

func TestExportImportTOML(t *testing.T) {
	at := time.Date(2024, time.April, 3, 9, 30, 0, 0, time.UTC)
	records := []models.Record{
		models.ToRecord(models.NewRunning(models.Coordinates{Lat: 1, Lng: 1}, 5, 25, 170, at)),
		models.ToRecord(models.NewCycling(models.Coordinates{Lat: 2, Lng: 2}, 20, 60, -50, at)),
	}

	path := filepath.Join(t.TempDir(), "dump.toml")
	require.NoError(t, ExportToTOML(records, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "[[workout]]")
	require.Contains(t, string(raw), `description = "Cycling on April 3"`)

	got, err := ImportFromTOML(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range records {
		w, err := models.Rehydrate(got[i])
		require.NoError(t, err)
		want, err := models.Rehydrate(records[i])
		require.NoError(t, err)

		require.Equal(t, want.ID, w.ID)
		require.True(t, want.CreatedAt.Equal(w.CreatedAt))
		w.CreatedAt = want.CreatedAt
		require.Equal(t, want, w)
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := ImportFromTOML(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
