package utils

import (
	"fmt"
	"strconv"
)

// FormatNumber prints v with at most one decimal, dropping a trailing ".0".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(roundTo(v, 1), 'f', -1, 64)
}

// FormatMetric joins a value and its unit: "5.2 min/km".
func FormatMetric(v float64, unit string) string {
	return fmt.Sprintf("%s %s", FormatNumber(v), unit)
}

func roundTo(v float64, decimals int) float64 {
	p, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	return p
}
