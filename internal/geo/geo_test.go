package geo

import (
	"context"
	"testing"

	"github.com/misterclayt0n/mapty/internal/config"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestStaticLocate(t *testing.T) {
	loc := FromConfig(config.LocationConfig{Latitude: ptr(38.72), Longitude: ptr(-9.14)})

	got, err := loc.Locate(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.Coordinates{Lat: 38.72, Lng: -9.14}, got)
}

func TestStaticUnavailable(t *testing.T) {
	cases := map[string]config.LocationConfig{
		"unset":         {},
		"only lat":      {Latitude: ptr(10)},
		"out of range":  {Latitude: ptr(91), Longitude: ptr(0)},
		"bad longitude": {Latitude: ptr(0), Longitude: ptr(-181)},
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromConfig(cfg).Locate(context.Background())
			require.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestStaticHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FromConfig(config.LocationConfig{Latitude: ptr(1), Longitude: ptr(1)}).Locate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
