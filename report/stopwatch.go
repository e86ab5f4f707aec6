package report

import "time"

// Stopwatch measures elapsed wall-clock time between a Start and Stop
// call, mirroring struct stopwatch (stopwatch.c) with the standard
// library's monotonic clock in place of gettimeofday.
type Stopwatch struct {
	start time.Time
	stop  time.Time
}

// Start records the current time as the stopwatch's start event.
func (s *Stopwatch) Start() *Stopwatch {
	s.start = time.Now()
	return s
}

// Stop records the current time as the stopwatch's end event.
func (s *Stopwatch) Stop() *Stopwatch {
	s.stop = time.Now()
	return s
}

// Elapsed returns the duration between the last Start and Stop calls.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.stop.Sub(s.start)
}
