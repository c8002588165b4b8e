package shared

import "time"

// Clock is an abstraction for time operations, allowing time to be mocked in tests
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the actual system time
type RealClock struct{}

// Now returns the current system time in UTC
func (r *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return &RealClock{}
}

// MockClock implements Clock with a controllable time for testing
type MockClock struct {
	CurrentTime time.Time
}

// NewMockClock creates a MockClock starting at the given time.
// A zero start time falls back to the Unix epoch so tests stay deterministic.
func NewMockClock(startTime time.Time) *MockClock {
	if startTime.IsZero() {
		startTime = time.Unix(0, 0).UTC()
	}
	return &MockClock{CurrentTime: startTime}
}

func (m *MockClock) Now() time.Time {
	return m.CurrentTime
}

// Advance moves the mock clock forward by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.CurrentTime = m.CurrentTime.Add(d)
}

// SimulationClock reports simulated business time. Each Tick moves the
// clock one business day forward from the opening date.
type SimulationClock struct {
	opening time.Time
	day     int
	step    time.Duration
}

// NewSimulationClock creates a clock positioned at day zero of the run
func NewSimulationClock(opening time.Time, step time.Duration) *SimulationClock {
	if step <= 0 {
		step = 24 * time.Hour
	}
	return &SimulationClock{opening: opening.UTC(), step: step}
}

// Now returns the simulated time for the current day. Day zero and day one
// both report the opening time.
func (c *SimulationClock) Now() time.Time {
	if c.day <= 1 {
		return c.opening
	}
	return c.opening.Add(time.Duration(c.day-1) * c.step)
}

// Tick advances to the next simulated day and returns its index
func (c *SimulationClock) Tick() int {
	c.day++
	return c.day
}

// Day returns the index of the current simulated day
func (c *SimulationClock) Day() int {
	return c.day
}
