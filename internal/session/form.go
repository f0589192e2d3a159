package session

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/misterclayt0n/mapty/internal/models"
)

// Form holds the raw field values as typed by the user. Extra is the
// cadence for running and the elevation gain for cycling.
type Form struct {
	Kind     string
	Distance string
	Duration string
	Extra    string
}

type input struct {
	kind      models.Kind
	distance  float64
	duration  float64
	cadence   int
	elevation float64
}

// validate coerces every field, then checks positivity. Elevation gain may
// be zero or negative.
func (f Form) validate() (input, error) {
	kind, err := models.ParseKind(f.Kind)
	if err != nil {
		return input{}, &ValidationError{Reason: UnknownKind, Field: "type", Value: f.Kind}
	}
	in := input{kind: kind}

	if in.distance, err = parseNumber("distance", f.Distance); err != nil {
		return input{}, err
	}
	if in.duration, err = parseNumber("duration", f.Duration); err != nil {
		return input{}, err
	}
	switch kind {
	case models.KindRunning:
		if in.cadence, err = parseInt("cadence", f.Extra); err != nil {
			return input{}, err
		}
	case models.KindCycling:
		if in.elevation, err = parseNumber("elevation", f.Extra); err != nil {
			return input{}, err
		}
	}

	if in.distance <= 0 {
		return input{}, &ValidationError{Reason: NonPositive, Field: "distance", Value: f.Distance}
	}
	if in.duration <= 0 {
		return input{}, &ValidationError{Reason: NonPositive, Field: "duration", Value: f.Duration}
	}
	if kind == models.KindRunning && in.cadence <= 0 {
		return input{}, &ValidationError{Reason: NonPositive, Field: "cadence", Value: f.Extra}
	}
	return in, nil
}

func (in input) build(anchor models.Coordinates, now time.Time) models.Workout {
	if in.kind == models.KindRunning {
		return models.NewRunning(anchor, in.distance, in.duration, in.cadence, now)
	}
	return models.NewCycling(anchor, in.distance, in.duration, in.elevation, now)
}

func parseNumber(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Reason: NonNumeric, Field: field, Value: raw}
	}
	return v, nil
}

func parseInt(field, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{Reason: NonNumeric, Field: field, Value: raw}
	}
	return v, nil
}
