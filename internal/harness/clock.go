package harness

import "time"

// Clock reports the CPU time consumed by the process so far.
type Clock interface {
	CPUTime() time.Duration
}

// ProcessClock returns the clock of the running process. Where the
// platform has no usable CPU accounting it falls back to elapsed wall
// time.
func ProcessClock() Clock {
	return processClock{}
}
