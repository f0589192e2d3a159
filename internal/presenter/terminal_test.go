package presenter

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/session"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

var april3 = time.Date(2024, time.April, 3, 9, 30, 0, 0, time.UTC)

func TestWorkoutAdded(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	w := models.NewRunning(models.Coordinates{Lat: 1, Lng: 1}, 5, 25, 170, april3)
	term.WorkoutAdded(w)

	out := buf.String()
	require.Contains(t, out, "Running on April 3 added")
	require.Contains(t, out, "5 km")
	require.Contains(t, out, "25 min")
	require.Contains(t, out, "5 min/km")
	require.Contains(t, out, "170 spm")
	require.Contains(t, out, w.ID)
}

func TestRenderList(t *testing.T) {
	var buf bytes.Buffer
	RenderList(&buf, []models.Workout{
		models.NewRunning(models.Coordinates{Lat: 1, Lng: 1}, 5, 25, 170, april3),
		models.NewCycling(models.Coordinates{Lat: 2, Lng: 2}, 20, 60, -50, april3),
	})

	out := buf.String()
	require.Contains(t, out, "WORKOUTS (2)")
	require.Contains(t, out, "Running on April 3")
	require.Contains(t, out, "Cycling on April 3")
	require.Contains(t, out, "20 km/h")
	require.Contains(t, out, "-50 m")
	require.Less(t, bytes.Index(buf.Bytes(), []byte("Running")), bytes.Index(buf.Bytes(), []byte("Cycling")))
}

func TestQuietHidesPrompts(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	term.Quiet = true

	term.MapReady(models.Coordinates{Lat: 1, Lng: 2})
	term.ShowForm(models.Coordinates{Lat: 1, Lng: 2})
	term.ClearFields()
	term.ToggleFields(models.KindCycling)
	term.WorkoutsLoaded(nil)
	require.Empty(t, buf.String())

	term.Warn(&session.PersistenceError{Op: session.WriteFailed, Err: errors.New("quota exceeded")})
	require.Contains(t, buf.String(), "continuing in memory only")
}

func TestValidationFailed(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf).ValidationFailed(&session.ValidationError{Reason: session.NonNumeric, Field: "distance", Value: "abc"})

	require.Contains(t, buf.String(), `distance must be a number, got "abc"`)
}

func TestToggleFields(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf).ToggleFields(models.KindCycling)

	require.Contains(t, buf.String(), "elevation gain")
}
