// Package geo supplies the user's current position.
package geo

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/config"
	"github.com/misterclayt0n/mapty/internal/models"
)

var ErrUnavailable = errors.New("current position unavailable")

// Locator reports the current position once.
type Locator interface {
	Locate(ctx context.Context) (models.Coordinates, error)
}

// Static reports a fixed, configured position.
type Static struct {
	coords *models.Coordinates
}

// FromConfig builds a Static locator; it is unavailable when the
// configured position is incomplete.
func FromConfig(cfg config.LocationConfig) Static {
	if cfg.Latitude == nil || cfg.Longitude == nil {
		return Static{}
	}
	return Static{coords: &models.Coordinates{Lat: *cfg.Latitude, Lng: *cfg.Longitude}}
}

func (s Static) Locate(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}
	if s.coords == nil {
		return models.Coordinates{}, ErrUnavailable
	}
	if err := Validate(*s.coords); err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return *s.coords, nil
}

// Validate checks that coordinates lie on the globe.
func Validate(c models.Coordinates) error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %g out of range", c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("longitude %g out of range", c.Lng)
	}
	return nil
}
