// Package presenter renders controller events on a terminal.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/session"
	"github.com/misterclayt0n/mapty/internal/utils"
)

var (
	cyanBold    = color.New(color.FgCyan, color.Bold).SprintFunc()
	yellowBold  = color.New(color.FgYellow, color.Bold).SprintFunc()
	greenBold   = color.New(color.FgGreen, color.Bold).SprintFunc()
	redBold     = color.New(color.FgRed, color.Bold).SprintFunc()
	magentaBold = color.New(color.FgMagenta, color.Bold).SprintFunc()
	faint       = color.New(color.Faint).SprintFunc()
)

// Terminal prints controller events as colored lines.
type Terminal struct {
	out   io.Writer
	Quiet bool // Hide form prompts and the initial list, for one-shot commands.
}

var _ session.Presenter = (*Terminal)(nil)

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) MapReady(center models.Coordinates) {
	if t.Quiet {
		return
	}
	fmt.Fprintf(t.out, "🗺  Map centered on %s\n", cyanBold(center.String()))
}

func (t *Terminal) LocationUnavailable(err error) {
	fmt.Fprintf(t.out, "%s Couldn't get your position: %v\n", yellowBold("!"), err)
}

func (t *Terminal) WorkoutsLoaded(workouts []models.Workout) {
	if t.Quiet {
		return
	}
	if len(workouts) == 0 {
		fmt.Fprintln(t.out, faint("No workouts yet. Pick a spot on the map to add one."))
		return
	}
	RenderList(t.out, workouts)
}

func (t *Terminal) ShowForm(at models.Coordinates) {
	if t.Quiet {
		return
	}
	fmt.Fprintf(t.out, "📍 New workout at %s\n", cyanBold(at.String()))
}

func (t *Terminal) ClearFields() {
	if t.Quiet {
		return
	}
	fmt.Fprintln(t.out, faint("   submit DISTANCE DURATION CADENCE|ELEVATION, or type running|cycling"))
}

func (t *Terminal) ToggleFields(kind models.Kind) {
	if t.Quiet {
		return
	}
	field := "cadence (spm)"
	if kind == models.KindCycling {
		field = "elevation gain (m)"
	}
	fmt.Fprintf(t.out, "   %s: third field is %s\n", magentaBold(kind.Title()), field)
}

func (t *Terminal) HideForm() {}

func (t *Terminal) WorkoutAdded(w models.Workout) {
	fmt.Fprintf(t.out, "✅ %s added\n", greenBold(w.Description))
	printEntry(t.out, w)
}

func (t *Terminal) ValidationFailed(err error) {
	fmt.Fprintf(t.out, "%s %v\n", redBold("✗"), err)
}

func (t *Terminal) FocusWorkout(w models.Workout) {
	fmt.Fprintf(t.out, "🎯 Centered on %s at %s\n", greenBold(w.Description), cyanBold(w.Coords.String()))
	printEntry(t.out, w)
}

func (t *Terminal) SessionReset() {
	fmt.Fprintln(t.out, "✅ All workouts removed")
}

func (t *Terminal) Warn(err error) {
	fmt.Fprintf(t.out, "%s %v\n", yellowBold("!"), err)
}

// RenderList prints every workout, oldest first.
func RenderList(out io.Writer, workouts []models.Workout) {
	width := 40
	border := strings.Repeat("═", width)
	fmt.Fprintln(out, cyanBold("╔"+border+"╗"))
	fmt.Fprintln(out, cyanBold("║"+centerText(fmt.Sprintf("WORKOUTS (%d)", len(workouts)), width)+"║"))
	fmt.Fprintln(out, cyanBold("╚"+border+"╝"))

	for _, w := range workouts {
		fmt.Fprintf(out, "%s %s\n", kindIcon(w.Kind), greenBold(w.Description))
		printEntry(out, w)
	}
}

func printEntry(out io.Writer, w models.Workout) {
	metric, metricUnit := w.Metric()
	extra, extraUnit := w.Extra()

	fmt.Fprintf(out, "  %s %s  %s %s  %s %s  %s %s\n",
		kindIcon(w.Kind), yellowBold(utils.FormatMetric(w.DistanceKm, "km")),
		"⏱", yellowBold(utils.FormatMinutes(w.DurationMin)),
		"⚡️", yellowBold(utils.FormatMetric(metric, metricUnit)),
		extraIcon(w.Kind), yellowBold(utils.FormatMetric(extra, extraUnit)),
	)
	fmt.Fprintf(out, "  %s\n", faint(fmt.Sprintf("%s · %s · id %s", utils.FormatLocal(w.CreatedAt), w.Coords, w.ID)))
}

func kindIcon(k models.Kind) string {
	if k == models.KindCycling {
		return "🚴‍♀️"
	}
	return "🏃‍♂️"
}

func extraIcon(k models.Kind) string {
	if k == models.KindCycling {
		return "⛰"
	}
	return "🦶🏼"
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}
