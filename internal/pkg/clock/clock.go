package clock

import "time"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// FixedClock returns a constant instant, for tests.
type FixedClock struct {
	Time time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{Time: t}
}

func (c *FixedClock) Now() time.Time {
	return c.Time
}

func (c *FixedClock) Advance(d time.Duration) {
	c.Time = c.Time.Add(d)
}
