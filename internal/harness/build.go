package harness

import (
	"fmt"
	"math"
	"time"

	"github.com/caio/go-bigo"
)

// Build generates random inputs of the given size and returns one trial
// per complexity class, in bigo.Classes() order.
//
// The unsorted array is shared by the read-only trials. Quicksort gets
// its own copy since it sorts in place.
func Build(items int, opts ...Option) ([]Trial, error) {
	if items < 1 {
		return nil, fmt.Errorf("%d items: %w", items, bigo.ErrInvalidInput)
	}

	b := builder{
		min:        0,
		max:        math.MaxInt32,
		hanoiDisks: DefaultHanoiDisks,
	}
	for _, opt := range opts {
		if err := opt(&b); err != nil {
			return nil, err
		}
	}
	if b.rng == nil {
		if !b.seeded {
			b.seed = time.Now().UnixNano()
		}
		b.rng = NewRNG(b.seed)
	}

	sorted := b.sequence(items)
	bigo.QuickSort(sorted)
	array := b.sequence(items)
	mutable := b.sequence(items)

	needle := sorted[b.rng.Int64n(int64(items))]

	index, err := bigo.NewRangeSumIndex(array)
	if err != nil {
		return nil, err
	}
	from, to := int(b.rng.Int64n(int64(items))), int(b.rng.Int64n(int64(items)))
	if from > to {
		from, to = to, from
	}

	return []Trial{
		&firstTrial{seq: array},
		&binarySearchTrial{sorted: sorted, needle: needle},
		&rangeSumTrial{seq: array, index: index, from: from, to: to},
		&linearSearchTrial{seq: sorted, needle: needle},
		&quickSortTrial{input: mutable},
		&maxSubarrayTrial{seq: array},
		&hanoiTrial{disks: min(items, b.hanoiDisks)},
		&placeholder{class: bigo.OFactorial, items: items},
		&placeholder{class: bigo.ONPowN, items: items},
	}, nil
}

func (b *builder) sequence(n int) []int32 {
	span := b.max - b.min + 1
	seq := make([]int32, n)
	for i := range seq {
		seq[i] = int32(b.min + b.rng.Int64n(span))
	}
	return seq
}
