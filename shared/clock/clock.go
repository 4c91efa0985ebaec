// Package clock converts between "HH:mm" clock strings and linear minute
// offsets from midnight, and tests half-open interval overlap. It is pure
// arithmetic with no timezone awareness; callers anchor the offsets to a
// concrete day themselves.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrClockFormat is returned when a clock string is not a valid "HH:mm" value.
var ErrClockFormat = errors.New("invalid clock time, expected HH:mm")

const (
	minutesPerHour = 60
	hoursPerDay    = 24
)

// ToMinutes parses a "HH:mm" clock string into minutes since midnight.
func ToMinutes(clockTime string) (int, error) {
	parts := strings.Split(clockTime, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, clockTime)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, clockTime)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, clockTime)
	}

	if hours < 0 || hours >= hoursPerDay || minutes < 0 || minutes >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, clockTime)
	}

	return hours*minutesPerHour + minutes, nil
}

// FromMinutes formats minutes since midnight as a zero-padded "HH:mm" string.
// Defined for offsets in [0, 1440); anything else is the caller's mistake.
func FromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect. Touching intervals (endA == startB) do not overlap.
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}
