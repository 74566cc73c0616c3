package timeutil

import (
	"errors"
	"fmt"
	"math"
	"time"

	"courtsched/core/constants"
)

// ErrInvalidInterval is returned when an interval ends at or before its start.
var ErrInvalidInterval = errors.New("invalid interval: end must be after start")

// DayOfWeek returns the calendar weekday of t in its own location,
// 0 = Sunday through 6 = Saturday.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// DurationMinutes returns the elapsed time between start and end rounded to
// the nearest whole minute.
func DurationMinutes(start, end time.Time) (int, error) {
	if !end.After(start) {
		return 0, ErrInvalidInterval
	}
	return int(math.Round(end.Sub(start).Minutes())), nil
}

// ClockTime formats t as a zero-padded 24-hour "HH:MM" in t's location.
func ClockTime(t time.Time) string {
	return t.Format(constants.ClockFormat)
}

// ParseClock parses an "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(constants.ClockFormat, s)
	if err != nil {
		return 0, fmt.Errorf("parse clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes since midnight as "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseDate parses a "YYYY-MM-DD" string in the given location. A nil
// location defaults to time.Local.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(constants.DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
