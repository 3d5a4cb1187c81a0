//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package harness

import "time"

var processStart = time.Now()

type processClock struct{}

func (processClock) CPUTime() time.Duration {
	return time.Since(processStart)
}
