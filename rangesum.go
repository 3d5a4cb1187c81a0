package bigo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a structure is built from input it
// cannot represent.
var ErrInvalidInput = errors.New("invalid input")

// RangeSumIndex answers inclusive range sums over a fixed sequence.
//
// The sequence is split into blocks of floor(sqrt(n)) elements and the
// sum of every block is precomputed, so a query visits at most one
// partial block on each side plus at most sqrt(n) whole blocks.
//
// The index keeps a reference to the sequence it was built from. Any
// later change to that sequence invalidates the index.
type RangeSumIndex struct {
	seq       []int32
	blockSize int
	blockSums []int64
}

// NewRangeSumIndex builds an index over seq in O(n) time. An empty
// sequence yields an error wrapping ErrInvalidInput.
func NewRangeSumIndex(seq []int32) (*RangeSumIndex, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("range sum index over an empty sequence: %w", ErrInvalidInput)
	}

	blockSize := isqrt(len(seq))
	blockSums := make([]int64, len(seq)/blockSize+1)
	for i, v := range seq {
		blockSums[i/blockSize] += int64(v)
	}

	return &RangeSumIndex{
		seq:       seq,
		blockSize: blockSize,
		blockSums: blockSums,
	}, nil
}

// isqrt returns floor(sqrt(n)) for n >= 1, correcting for float rounding.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// Len returns the length of the indexed sequence.
func (r *RangeSumIndex) Len() int {
	return len(r.seq)
}

// BlockSize returns the number of elements covered by each block sum.
func (r *RangeSumIndex) BlockSize() int {
	return r.blockSize
}

// BlockSums returns a copy of the precomputed block sums.
func (r *RangeSumIndex) BlockSums() []int64 {
	return append([]int64{}, r.blockSums...)
}

// Query returns seq[from] + ... + seq[to].
//
// Query panics unless 0 <= from <= to < Len().
func (r *RangeSumIndex) Query(from, to int) int64 {
	if from < 0 || from > to || to >= len(r.seq) {
		panic(fmt.Sprintf("Range [%d, %d] out of bounds for length %d", from, to, len(r.seq)))
	}

	var sum int64
	i := from

	// head: up to the first block boundary
	for i <= to && i%r.blockSize != 0 {
		sum += int64(r.seq[i])
		i++
	}

	for i+r.blockSize <= to {
		sum += r.blockSums[i/r.blockSize]
		i += r.blockSize
	}

	for ; i <= to; i++ {
		sum += int64(r.seq[i])
	}

	return sum
}
