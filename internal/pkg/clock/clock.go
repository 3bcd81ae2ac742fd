package clock

import "time"

// Clock supplies the engine's notion of "now". Every timing guard in the
// booking state machine reads time through this interface, so tests can
// warp to exact boundaries with MockClock.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// SetUnix warps to an absolute unix-seconds timestamp.
func (c *MockClock) SetUnix(sec int64) {
	c.currentTime = time.Unix(sec, 0).UTC()
}
