package formatter

import (
	"fmt"
	"time"
)

// isoTimestamp is the wire format for first/last-seen fields.
const isoTimestamp = "2006-01-02T15:04:05"

// formatSeen renders an optional timestamp as ISO-8601, or an empty
// string when the value was never observed.
func formatSeen(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(isoTimestamp)
}

// formatNumber formats numbers with commas for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return addCommas(fmt.Sprintf("%d", n))
}

// addCommas adds commas to number strings
func addCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	return addCommas(s[:len(s)-3]) + "," + s[len(s)-3:]
}
