// Package clock provides the wall-clock sources used by the runner.
package clock

import (
	"sync"
	"time"

	"qsvault/internal/domain"
)

// System reads the real wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Stepper returns Start, Start+Step, Start+2*Step, ... on successive calls.
type Stepper struct {
	mu    sync.Mutex
	start time.Time
	step  time.Duration
	calls int
}

// NewStepper returns a stepping clock beginning at start.
func NewStepper(start time.Time, step time.Duration) *Stepper {
	return &Stepper{start: start, step: step}
}

// Now returns the next tick.
func (s *Stepper) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.start.Add(time.Duration(s.calls) * s.step)
	s.calls++
	return t
}

// Calls reports how many times Now has been called.
func (s *Stepper) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var (
	_ domain.Clock = System{}
	_ domain.Clock = (*Stepper)(nil)
)
