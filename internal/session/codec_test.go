package session

import (
	"encoding/json"
	"testing"

	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	workouts := []models.Workout{
		models.NewRunning(models.Coordinates{Lat: 1, Lng: 1}, 5, 25, 170, april3),
		models.NewCycling(models.Coordinates{Lat: 2, Lng: 2}, 20, 60, 150, april3),
	}
	workouts[0].Click()

	data, err := Encode(workouts)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, workouts, got)
}

func TestEncodeRecordShape(t *testing.T) {
	data, err := Encode([]models.Workout{
		models.NewRunning(models.Coordinates{Lat: 1, Lng: 1}, 5, 25, 170, april3),
		models.NewCycling(models.Coordinates{Lat: 2, Lng: 2}, 20, 60, -5, april3),
	})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 2)

	run := raw[0]
	require.Equal(t, "running", run["kind"])
	require.Equal(t, "Running on April 3", run["description"])
	require.Equal(t, []any{1.0, 1.0}, run["coords"])
	require.Equal(t, 5.0, run["pace"])
	require.Equal(t, 170.0, run["cadence"])
	require.NotContains(t, run, "speed")
	require.NotContains(t, run, "elevationGain")

	ride := raw[1]
	require.Equal(t, 20.0, ride["speed"])
	require.Equal(t, -5.0, ride["elevationGain"])
	require.NotContains(t, ride, "pace")
}

func TestEncodeEmpty(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))

	got, err := Decode(data)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte(`"nope"`))
	require.Error(t, err)
}
