package utils

import (
	"time"
)

const (
	// Takeout timestamps come in two flavours, with and without
	// fractional seconds, always UTC with a Z suffix.
	takeoutTimeFractional = "2006-01-02T15:04:05.999999999Z"
	takeoutTimeWhole      = "2006-01-02T15:04:05Z"

	cliDateLayout = "2006-01-02"
)

// ParseTakeoutTimestamp parses an activity segment timestamp, trying the
// fractional-second layout first and falling back to whole seconds.
func ParseTakeoutTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(takeoutTimeFractional, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(takeoutTimeWhole, s)
}

// ParseCLIDate parses a YYYY-MM-DD date as midnight UTC.
func ParseCLIDate(s string) (time.Time, error) {
	return time.Parse(cliDateLayout, s)
}
