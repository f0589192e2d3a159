package models

import (
	"fmt"
	"time"
)

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatDescription renders "Running on April 3" from the kind and the
// month/day of createdAt, in createdAt's own location.
func FormatDescription(kind Kind, createdAt time.Time) string {
	return fmt.Sprintf("%s on %s %d", kind.Title(), months[createdAt.Month()-1], createdAt.Day())
}
