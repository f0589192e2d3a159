package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRecord = errors.New("invalid workout record")

// Record is the stored shape of a workout. Derived fields travel with it
// and are copied back on load, never recomputed.
type Record struct {
	ID          string    `json:"id" toml:"id"`
	Kind        Kind      `json:"kind" toml:"kind"`
	CreatedAt   time.Time `json:"createdAt" toml:"created_at"`
	Coords      []float64 `json:"coords" toml:"coords"`
	Distance    float64   `json:"distance" toml:"distance"`
	Duration    float64   `json:"duration" toml:"duration"`
	Description string    `json:"description" toml:"description"`
	Clicks      int       `json:"clicks" toml:"clicks"`

	Pace    *float64 `json:"pace,omitempty" toml:"pace,omitempty"`
	Cadence *int     `json:"cadence,omitempty" toml:"cadence,omitempty"`

	Speed         *float64 `json:"speed,omitempty" toml:"speed,omitempty"`
	ElevationGain *float64 `json:"elevationGain,omitempty" toml:"elevation_gain,omitempty"`
}

func ToRecord(w Workout) Record {
	r := Record{
		ID:          w.ID,
		Kind:        w.Kind,
		CreatedAt:   w.CreatedAt,
		Coords:      []float64{w.Coords.Lat, w.Coords.Lng},
		Distance:    w.DistanceKm,
		Duration:    w.DurationMin,
		Description: w.Description,
		Clicks:      w.Clicks,
	}

	switch w.Kind {
	case KindRunning:
		pace, cadence := w.PaceMinPerKm, w.CadenceSPM
		r.Pace, r.Cadence = &pace, &cadence
	case KindCycling:
		speed, gain := w.SpeedKmPerH, w.ElevationGainM
		r.Speed, r.ElevationGain = &speed, &gain
	}
	return r
}

// Rehydrate turns a stored record back into a Workout.
func Rehydrate(r Record) (Workout, error) {
	if r.ID == "" {
		return Workout{}, fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if len(r.Coords) != 2 {
		return Workout{}, fmt.Errorf("%w: workout %s has %d coordinates", ErrInvalidRecord, r.ID, len(r.Coords))
	}

	w := Workout{
		ID:          r.ID,
		Kind:        r.Kind,
		CreatedAt:   r.CreatedAt,
		Coords:      Coordinates{Lat: r.Coords[0], Lng: r.Coords[1]},
		DistanceKm:  r.Distance,
		DurationMin: r.Duration,
		Description: r.Description,
		Clicks:      r.Clicks,
	}

	switch r.Kind {
	case KindRunning:
		if r.Pace == nil || r.Cadence == nil {
			return Workout{}, fmt.Errorf("%w: running workout %s lacks pace or cadence", ErrInvalidRecord, r.ID)
		}
		w.PaceMinPerKm, w.CadenceSPM = *r.Pace, *r.Cadence
	case KindCycling:
		if r.Speed == nil || r.ElevationGain == nil {
			return Workout{}, fmt.Errorf("%w: cycling workout %s lacks speed or elevation gain", ErrInvalidRecord, r.ID)
		}
		w.SpeedKmPerH, w.ElevationGainM = *r.Speed, *r.ElevationGain
	default:
		return Workout{}, fmt.Errorf("%w: workout %s has unknown kind %q", ErrInvalidRecord, r.ID, r.Kind)
	}

	return w, nil
}
