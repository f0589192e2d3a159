package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/mapty/internal/geo"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/presenter"
	"github.com/misterclayt0n/mapty/internal/session"
	"github.com/spf13/cobra"
)

const sessionHelp = `Commands:
  pick LAT LNG                     pick a spot on the map
  here                             pick your current position
  type running|cycling             switch the form type
  submit DISTANCE DURATION EXTRA   save the workout (EXTRA is cadence or elevation gain)
  cancel                           close the form without saving
  select ID                        center on a workout
  list                             show every workout
  reset                            delete every workout
  help                             show this help
  quit                             leave the session`

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive map session",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		a, err := openApp(cmd, presenter.NewTerminal(out))
		if err != nil {
			return err
		}
		defer a.close()

		fmt.Fprintln(out, color.New(color.Faint).Sprint("Type help for commands."))
		return runSession(cmd, a, cmd.InOrStdin(), out)
	},
}

// runSession feeds each input line to the controller until quit or EOF.
func runSession(cmd *cobra.Command, a *app, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	prompt := func() {
		marker := "mapty"
		if a.ctl.State() == session.StateAwaitingInput {
			marker = "mapty:" + a.ctl.Draft().Kind
		}
		fmt.Fprintf(out, "%s> ", color.New(color.FgCyan).Sprint(marker))
	}

	for prompt(); scanner.Scan(); prompt() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch name, rest := strings.ToLower(fields[0]), fields[1:]; name {
		case "pick":
			at, err := parseCoords(rest)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			a.ctl.OnLocationPicked(at)
		case "here":
			at, err := a.locator.Locate(cmd.Context())
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			a.ctl.OnLocationPicked(at)
		case "type":
			if len(rest) != 1 {
				fmt.Fprintln(out, "usage: type running|cycling")
				continue
			}
			kind, err := models.ParseKind(rest[0])
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			a.ctl.OnKindChanged(kind)
		case "submit":
			form := session.Form{Kind: a.ctl.Draft().Kind}
			for i, v := range rest {
				switch i {
				case 0:
					form.Distance = v
				case 1:
					form.Duration = v
				case 2:
					form.Extra = v
				}
			}
			if _, err := a.ctl.OnFormSubmitted(form); errors.Is(err, session.ErrNoPendingLocation) {
				fmt.Fprintln(out, err)
			}
		case "cancel":
			a.ctl.OnInteractionCancelled()
		case "select":
			if len(rest) != 1 {
				fmt.Fprintln(out, "usage: select ID")
				continue
			}
			a.ctl.OnWorkoutSelected(rest[0])
		case "list":
			presenter.RenderList(out, a.ctl.Workouts())
		case "reset":
			a.ctl.OnResetRequested()
		case "help":
			fmt.Fprintln(out, sessionHelp)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q, type help\n", name)
		}
	}
	return scanner.Err()
}

func parseCoords(args []string) (models.Coordinates, error) {
	if len(args) != 2 {
		return models.Coordinates{}, fmt.Errorf("usage: pick LAT LNG")
	}
	lat, err := strconv.ParseFloat(strings.TrimSuffix(args[0], ","), 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid latitude %q", args[0])
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid longitude %q", args[1])
	}

	at := models.Coordinates{Lat: lat, Lng: lng}
	if err := geo.Validate(at); err != nil {
		return models.Coordinates{}, err
	}
	return at, nil
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
