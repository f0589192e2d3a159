package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindRunning Kind = "running"
	KindCycling Kind = "cycling"
)

// ParseKind accepts "running" or "cycling" in any case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindRunning, KindCycling:
		return k, nil
	default:
		return "", fmt.Errorf("unknown workout type %q", s)
	}
}

// Title returns the capitalized kind name used in descriptions.
func (k Kind) Title() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindCycling:
		return "Cycling"
	}
	return string(k)
}

type Coordinates struct {
	Lat float64 `json:"lat" toml:"lat"`
	Lng float64 `json:"lng" toml:"lng"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.5f, %.5f", c.Lat, c.Lng)
}

// Workout is a recorded session. Kind decides which variant fields are set:
// CadenceSPM and PaceMinPerKm for running, ElevationGainM and SpeedKmPerH
// for cycling. The others stay zero.
type Workout struct {
	ID          string      `json:"id"`
	Kind        Kind        `json:"kind"`
	CreatedAt   time.Time   `json:"created_at"`
	Coords      Coordinates `json:"coords"`
	DistanceKm  float64     `json:"distance_km"`
	DurationMin float64     `json:"duration_min"`
	Description string      `json:"description"`
	Clicks      int         `json:"clicks"`

	CadenceSPM   int     `json:"cadence_spm,omitempty"`
	PaceMinPerKm float64 `json:"pace_min_per_km,omitempty"`

	ElevationGainM float64 `json:"elevation_gain_m,omitempty"`
	SpeedKmPerH    float64 `json:"speed_km_per_h,omitempty"`
}

// NewRunning builds a running workout with pace and description derived.
// Inputs are expected to be validated already.
func NewRunning(coords Coordinates, distanceKm, durationMin float64, cadenceSPM int, createdAt time.Time) Workout {
	w := newWorkout(KindRunning, coords, distanceKm, durationMin, createdAt)
	w.CadenceSPM = cadenceSPM
	w.PaceMinPerKm = durationMin / distanceKm
	return w
}

// NewCycling builds a cycling workout with speed and description derived.
// A negative elevation gain is an elevation loss.
func NewCycling(coords Coordinates, distanceKm, durationMin, elevationGainM float64, createdAt time.Time) Workout {
	w := newWorkout(KindCycling, coords, distanceKm, durationMin, createdAt)
	w.ElevationGainM = elevationGainM
	w.SpeedKmPerH = distanceKm / (durationMin / 60)
	return w
}

func newWorkout(kind Kind, coords Coordinates, distanceKm, durationMin float64, createdAt time.Time) Workout {
	// Drop the monotonic reading so the value compares equal after a reload.
	createdAt = createdAt.Round(0)
	return Workout{
		ID:          uuid.New().String(),
		Kind:        kind,
		CreatedAt:   createdAt,
		Coords:      coords,
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
		Description: FormatDescription(kind, createdAt),
	}
}

// Metric returns the headline derived metric: pace for running, speed for cycling.
func (w Workout) Metric() (float64, string) {
	switch w.Kind {
	case KindRunning:
		return w.PaceMinPerKm, "min/km"
	case KindCycling:
		return w.SpeedKmPerH, "km/h"
	}
	return 0, ""
}

// Extra returns the kind-specific input field: cadence or elevation gain.
func (w Workout) Extra() (float64, string) {
	switch w.Kind {
	case KindRunning:
		return float64(w.CadenceSPM), "spm"
	case KindCycling:
		return w.ElevationGainM, "m"
	}
	return 0, ""
}

// Click counts one user interaction with the workout.
func (w *Workout) Click() {
	w.Clicks++
}
