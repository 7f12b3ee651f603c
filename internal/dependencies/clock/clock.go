package clock

import "time"

// Clock supplies the instants used for generated ids and timestamps
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// New returns the system clock
func New() System {
	return System{}
}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Millis returns c's current time as Unix milliseconds, the unit used in
// generated ids
func Millis(c Clock) int64 {
	return c.Now().UnixMilli()
}
