package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/geo"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/presenter"
	"github.com/misterclayt0n/mapty/internal/session"
	"github.com/spf13/cobra"
)

var (
	addType      string
	addDistance  string
	addDuration  string
	addCadence   string
	addElevation string
	addLat       float64
	addLng       float64
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a workout at a location (defaults to your configured position)",
	RunE: func(cmd *cobra.Command, args []string) error {
		term := presenter.NewTerminal(cmd.OutOrStdout())
		term.Quiet = true

		a, err := openApp(cmd, term)
		if err != nil {
			return err
		}
		defer a.close()

		at, err := addAnchor(cmd, a.locator)
		if err != nil {
			return err
		}

		a.ctl.OnLocationPicked(at)

		form := session.Form{Kind: addType, Distance: addDistance, Duration: addDuration, Extra: addCadence}
		if kind, err := models.ParseKind(addType); err == nil {
			a.ctl.OnKindChanged(kind)
			if kind == models.KindCycling {
				form.Extra = addElevation
			}
		}

		if _, err := a.ctl.OnFormSubmitted(form); err != nil {
			return errors.New("Workout not added")
		}
		return nil
	},
}

// addAnchor uses --lat/--lng when given, the current position otherwise.
func addAnchor(cmd *cobra.Command, locator geo.Locator) (models.Coordinates, error) {
	latSet, lngSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lng")
	if latSet != lngSet {
		return models.Coordinates{}, fmt.Errorf("--lat and --lng must be given together")
	}

	if latSet {
		at := models.Coordinates{Lat: addLat, Lng: addLng}
		if err := geo.Validate(at); err != nil {
			return models.Coordinates{}, err
		}
		return at, nil
	}

	at, err := locator.Locate(cmd.Context())
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("no --lat/--lng given and %w (set [location] in the config)", err)
	}
	return at, nil
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addType, "type", "t", "running", "Workout type: running or cycling")
	addCmd.Flags().StringVarP(&addDistance, "distance", "d", "", "Distance in km")
	addCmd.Flags().StringVarP(&addDuration, "duration", "m", "", "Duration in minutes")
	addCmd.Flags().StringVar(&addCadence, "cadence", "", "Cadence in steps/min (running)")
	addCmd.Flags().StringVar(&addElevation, "elevation", "", "Elevation gain in meters (cycling)")
	addCmd.Flags().Float64Var(&addLat, "lat", 0, "Latitude of the workout")
	addCmd.Flags().Float64Var(&addLng, "lng", 0, "Longitude of the workout")
	addCmd.MarkFlagRequired("distance")
	addCmd.MarkFlagRequired("duration")
}
