// Package timeutil parses the two string layouts the booking domain
// runs on: "HH:mm" clocks and "YYYY-MM-DD" calendar dates. Dates are
// always compared as local calendar days, never as absolute timestamps.
package timeutil

import "time"

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

// Clock converts "HH:mm" (or "HH:mm:ss") to minutes since midnight.
// The second return is false for anything unparseable, including
// non-zero-padded clocks like "9:00": stored times are compared
// lexicographically, which is only sound for the canonical form.
func Clock(s string) (int, bool) {
	if len(s) == 8 && s[5] == ':' {
		s = s[:5]
	}
	if len(s) != 5 {
		return 0, false
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// ValidClock reports whether s is a well-formed "HH:mm" clock.
func ValidClock(s string) bool {
	_, ok := Clock(s)
	return ok
}

// DateString renders t as its local calendar day.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Weekday returns the weekday (0=Sunday..6) of a "YYYY-MM-DD" date.
func Weekday(date string) (int, bool) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, false
	}
	return int(t.Weekday()), true
}

// MinutesToClock is the inverse of Clock for whole minutes in [0, 1440).
func MinutesToClock(m int) string {
	return time.Date(2000, 1, 1, m/60, m%60, 0, 0, time.UTC).Format(ClockLayout)
}
