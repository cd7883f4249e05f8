// Package clock provides time abstraction so arrival timestamps are
// deterministic in tests.
package clock

import "time"

// Clock is the time source for itinerary start times.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using actual system time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// MockClock returns a fixed time.
type MockClock struct {
	Current time.Time
}

func NewMockClock(t time.Time) *MockClock { return &MockClock{Current: t} }

func (m *MockClock) Now() time.Time { return m.Current }
