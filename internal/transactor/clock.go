package transactor

import "time"

type realClock struct{}

// NewClock returns a Clock backed by the system time.
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
