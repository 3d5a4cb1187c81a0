package harness

import (
	"fmt"
	"math"

	"github.com/caio/go-bigo"
)

// DefaultHanoiDisks caps the Tower of Hanoi trial. Each extra disk
// doubles its running time.
const DefaultHanoiDisks = 20

// MaxHanoiDisks is the largest disk count whose move count fits in a
// uint64.
const MaxHanoiDisks = 63

type builder struct {
	rng        RNG
	seed       int64
	seeded     bool
	min, max   int64
	hanoiDisks int
}

// Option configures Build.
type Option func(*builder) error

// Seed makes the generated data reproducible. Without it the data
// depends on the current time.
func Seed(seed int64) Option {
	return func(b *builder) error {
		b.seed = seed
		b.seeded = true
		return nil
	}
}

// WithRNG replaces the random generator entirely. It takes precedence
// over Seed.
func WithRNG(r RNG) Option {
	return func(b *builder) error {
		if r == nil {
			return fmt.Errorf("nil RNG: %w", bigo.ErrInvalidInput)
		}
		b.rng = r
		return nil
	}
}

// ValueRange sets the inclusive range of generated values.
//
// The default is [0, 2^31-1]. Both bounds must fit in an int32 and min
// must not exceed max.
func ValueRange(min, max int64) Option {
	return func(b *builder) error {
		if min > max || min < math.MinInt32 || max > math.MaxInt32 {
			return fmt.Errorf("value range [%d, %d]: %w", min, max, bigo.ErrInvalidInput)
		}
		b.min, b.max = min, max
		return nil
	}
}

// HanoiDisks sets the largest number of disks the Tower of Hanoi trial
// moves. The trial uses min(items, disks) disks.
//
// A value of 0 disables the trial, which is then reported as not
// executed.
func HanoiDisks(disks int) Option {
	return func(b *builder) error {
		if disks < 0 || disks > MaxHanoiDisks {
			return fmt.Errorf("hanoi disks %d not in [0, %d]: %w", disks, MaxHanoiDisks, bigo.ErrInvalidInput)
		}
		b.hanoiDisks = disks
		return nil
	}
}
