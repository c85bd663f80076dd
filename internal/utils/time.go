package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/aurapulse/internal/constants"
)

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// minutesOf is ParseTimeToMinutes without the error; unparsable input counts as midnight.
func minutesOf(timeStr string) int {
	m, _ := ParseTimeToMinutes(timeStr)
	return m
}

// DayFraction returns the position of a time of day within the day, in [0,1).
func DayFraction(timeStr string) float64 {
	return float64(minutesOf(timeStr)) / constants.MinutesPerDay
}

// DurationMinutes returns the length of the range start..end in minutes.
// An end earlier than start crosses midnight. Equal times are a zero-length range,
// never a full day.
func DurationMinutes(start, end string) int {
	raw := minutesOf(end) - minutesOf(start)
	if raw < 0 {
		raw += constants.MinutesPerDay
	}
	return raw
}

// DurationHours is DurationMinutes expressed in hours.
func DurationHours(start, end string) float64 {
	return float64(DurationMinutes(start, end)) / 60
}

// ValidateTimeFormat checks for a zero-padded HH:MM clock time. Stored times
// sort as strings, so "9:00" is rejected.
func ValidateTimeFormat(timeStr string) bool {
	if len(timeStr) != len(constants.TimeFormat) {
		return false
	}
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateDate checks if the string is a YYYY-MM-DD date.
func ValidateDate(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ShiftDate moves a YYYY-MM-DD date by the given number of days.
func ShiftDate(dateStr string, days int) (string, error) {
	d, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return d.AddDate(0, 0, days).Format(constants.DateFormat), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// Today returns today's date string (YYYY-MM-DD) in the given location.
func Today(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc).Format(constants.DateFormat)
}
