// Package timeutil works on "HH:mm" clock strings and "YYYY-MM-DD" dates.
// Nothing here wraps across midnight; callers keep ranges inside one day.
package timeutil

import (
	"fmt"
	"time"
)

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

// TimeToMinutes converts "HH:mm" to minutes since midnight.
func TimeToMinutes(t string) (int, error) {
	parsed, err := time.Parse(ClockLayout, t)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", t, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// MinutesToTime converts minutes since midnight back to "HH:mm".
// Round-trip exact with TimeToMinutes for valid input.
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes returns t + n minutes as "HH:mm". Results past 24:00 are the
// caller's responsibility; the schedule never crosses midnight.
func AddMinutes(t string, n int) (string, error) {
	m, err := TimeToMinutes(t)
	if err != nil {
		return "", err
	}
	return MinutesToTime(m + n), nil
}

// GenerateSlots produces the start-time grid from open (inclusive), stepping
// by duration minutes, stopping once a start would reach or pass close. A
// slot's end may exceed close; only the start sequence is generated here,
// availability filtering happens separately.
func GenerateSlots(open, close string, duration int) ([]string, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("invalid slot duration %d", duration)
	}
	start, err := TimeToMinutes(open)
	if err != nil {
		return nil, err
	}
	end, err := TimeToMinutes(close)
	if err != nil {
		return nil, err
	}

	var slots []string
	for cur := start; cur < end; cur += duration {
		slots = append(slots, MinutesToTime(cur))
	}
	return slots, nil
}

// Overlaps reports whether the half-open ranges [startA, endA) and
// [startB, endB) share any instant. Back-to-back ranges do not overlap.
// Zero-padded "HH:mm" strings order lexicographically, so plain string
// comparison is exact here.
func Overlaps(startA, endA, startB, endB string) bool {
	return startA < endB && startB < endA
}

// ParseDate validates a "YYYY-MM-DD" calendar date.
func ParseDate(d string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, d)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", d, err)
	}
	return parsed, nil
}

// IsValidClock reports whether t is a well-formed "HH:mm" string.
func IsValidClock(t string) bool {
	_, err := TimeToMinutes(t)
	return err == nil
}
