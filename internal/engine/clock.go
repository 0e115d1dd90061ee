package engine

import "time"

// Clock abstracts time.Now() so the reference day used for occurrence
// computation can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by the system time.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
