package helpers

import (
	"fmt"
	"time"
)

// NormalizeTimeOfDay parses a time-of-day string and returns it in "HH:MM"
// form. Both "HH:MM" and "HH:MM:SS" inputs are accepted. Normalized values
// compare chronologically under plain string comparison.
func NormalizeTimeOfDay(value string) (string, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid time of day: %q", value)
}

// ParseDuration parses a duration string, returning the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		return defaultDuration
	}
	return duration
}
