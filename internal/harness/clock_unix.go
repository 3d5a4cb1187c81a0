//go:build linux || darwin || freebsd || netbsd || openbsd

package harness

import (
	"time"

	"golang.org/x/sys/unix"
)

type processClock struct{}

func (processClock) CPUTime() time.Duration {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &usage); err != nil {
		return 0
	}
	return time.Duration(usage.Utime.Nano() + usage.Stime.Nano())
}
