package utils

import (
	"fmt"
	"math"
	"time"
)

// Loc is the location times are displayed in.
var Loc = time.Local

// SetLocation switches display times to the named IANA zone.
func SetLocation(name string) error {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load location %s: %w", name, err)
	}
	Loc = loc
	return nil
}

// FormatLocal returns t formatted in the display location.
func FormatLocal(t time.Time) string {
	return t.In(Loc).Format("Mon, 02 Jan 2006 15:04")
}

// FormatMinutes renders a duration in minutes as "45 min" or "1h 05m".
func FormatMinutes(minutes float64) string {
	total := int(math.Round(minutes))
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}
