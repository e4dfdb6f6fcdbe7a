// Package timeutil provides shared time parsing utilities.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// Pre-compiled regex for parsing relative time formats (e.g., "2h", "7d", "1w")
var relativeTimeRe = regexp.MustCompile(`^(\d+)([mhdw])$`)

// Parse parses a time string that can be a relative duration like "2h",
// "7d" or "1w", or any reasonably common date/time notation.
//
// Examples:
//   - "now" or "" -> current time
//   - "30m" -> 30 minutes ago
//   - "7d" -> 7 days ago
//   - "1w" -> 1 week ago
//   - "2020-01-15" -> that day at midnight, local time
//   - "2020-01-15 09:00" -> specific local time
func Parse(input string) (time.Time, error) {
	if input == "" || input == "now" {
		return time.Now(), nil
	}

	// Relative offsets first: dateparse would reject them anyway, but the
	// error message should mention both syntaxes.
	matches := relativeTimeRe.FindStringSubmatch(input)
	if matches != nil {
		value, _ := strconv.Atoi(matches[1])
		var duration time.Duration
		switch matches[2] {
		case "m":
			duration = time.Duration(value) * time.Minute
		case "h":
			duration = time.Duration(value) * time.Hour
		case "d":
			duration = time.Duration(value) * 24 * time.Hour
		case "w":
			duration = time.Duration(value) * 7 * 24 * time.Hour
		}
		return time.Now().Add(-duration), nil
	}

	if t, err := ParseLoose(input); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time format: %s - use a date (2020-01-15), a date-time (2020-01-15 09:00) or relative (2h, 7d, 1w)", input)
}

// ParseLoose parses a date/time string in any reasonably common notation,
// interpreting zone-less values in local time. Unlike Parse it accepts no
// relative syntax and never substitutes the current time.
func ParseLoose(input string) (time.Time, error) {
	return dateparse.ParseLocal(input)
}

// ParseDay parses a day-granularity bound: anything Parse accepts, truncated
// to midnight in its own location.
func ParseDay(input string) (time.Time, error) {
	t, err := Parse(input)
	if err != nil {
		return time.Time{}, err
	}
	return DayOf(t), nil
}

// DayOf returns the calendar day of t, i.e. t truncated to midnight in its
// own location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// FormatDuration formats a duration in a human-readable way.
func FormatDuration(d time.Duration) string {
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%.1fh", d.Hours())
	}
	return fmt.Sprintf("%.1fd", d.Hours()/24)
}
