// Package clock abstracts wall-clock time so that past-slot filtering and
// overdue detection can be tested against a fixed instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns the real UTC clock.
func System() Clock { return systemClock{} }

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }
