package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	run := NewRunning(Coordinates{Lat: 1, Lng: 1}, 5, 25, 170, april3)
	run.Click()
	ride := NewCycling(Coordinates{Lat: 2, Lng: 2}, 20, 60, 150, april3)

	for _, w := range []Workout{run, ride} {
		got, err := Rehydrate(ToRecord(w))
		require.NoError(t, err)
		require.Equal(t, w, got)
	}
}

func TestRehydrateKeepsStoredDerivedFields(t *testing.T) {
	// A stored pace that disagrees with distance/duration is kept as is.
	pace, cadence := 9.99, 150
	r := Record{
		ID:          "w1",
		Kind:        KindRunning,
		CreatedAt:   april3,
		Coords:      []float64{1, 2},
		Distance:    5,
		Duration:    25,
		Description: "Running on March 1",
		Pace:        &pace,
		Cadence:     &cadence,
	}

	w, err := Rehydrate(r)
	require.NoError(t, err)
	require.Equal(t, 9.99, w.PaceMinPerKm)
	require.Equal(t, "Running on March 1", w.Description)
	require.Equal(t, Coordinates{Lat: 1, Lng: 2}, w.Coords)
}

func TestRehydrateRejectsInvalidRecords(t *testing.T) {
	pace, cadence := 5.0, 170
	valid := Record{ID: "w1", Kind: KindRunning, CreatedAt: april3, Coords: []float64{1, 1}, Distance: 5, Duration: 25, Pace: &pace, Cadence: &cadence}

	cases := map[string]func(r *Record){
		"missing id":      func(r *Record) { r.ID = "" },
		"short coords":    func(r *Record) { r.Coords = []float64{1} },
		"unknown kind":    func(r *Record) { r.Kind = "swimming" },
		"missing cadence": func(r *Record) { r.Cadence = nil },
		"cycling fields":  func(r *Record) { r.Kind = KindCycling },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := valid
			mutate(&r)
			_, err := Rehydrate(r)
			require.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}
