package core

import "time"

// Stopwatch measures wall-clock time across a run and the pace of its ticks.
type Stopwatch struct {
	start   time.Time
	stop    time.Time
	last    time.Time
	ticks   int
	slowest time.Duration
}

// NewStopwatch returns a stopwatch that starts counting immediately.
func NewStopwatch() *Stopwatch {
	s := &Stopwatch{}
	s.Start()
	return s
}

// Start resets the stopwatch and begins timing.
func (s *Stopwatch) Start() {
	now := time.Now()
	s.start = now
	s.last = now
	s.stop = time.Time{}
	s.ticks = 0
	s.slowest = 0
}

// Tick records the end of one step and returns its duration.
func (s *Stopwatch) Tick() time.Duration {
	now := time.Now()
	delta := now.Sub(s.last)
	s.last = now
	s.ticks++
	if delta > s.slowest {
		s.slowest = delta
	}
	return delta
}

// Stop freezes the elapsed time.
func (s *Stopwatch) Stop() time.Duration {
	if s.stop.IsZero() {
		s.stop = time.Now()
	}
	return s.Elapsed()
}

// Elapsed returns the time since Start, or until Stop once stopped.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.stop.IsZero() {
		return time.Since(s.start)
	}
	return s.stop.Sub(s.start)
}

// Ticks returns the number of recorded steps.
func (s *Stopwatch) Ticks() int { return s.ticks }

// Slowest returns the longest recorded step.
func (s *Stopwatch) Slowest() time.Duration { return s.slowest }

// Mean returns the average step duration.
func (s *Stopwatch) Mean() time.Duration {
	if s.ticks == 0 {
		return 0
	}
	return s.Elapsed() / time.Duration(s.ticks)
}
