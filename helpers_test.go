package bigo

import (
	rng "github.com/leesper/go_rng"
)

func randomSequence(seed int64, size int, min, max int64) []int32 {
	gen := rng.NewUniformGenerator(seed)
	seq := make([]int32, size)
	for i := range seq {
		seq[i] = int32(min + gen.Int64n(max-min))
	}
	return seq
}

func naiveSum(seq []int32, from, to int) int64 {
	var sum int64
	for i := from; i <= to; i++ {
		sum += int64(seq[i])
	}
	return sum
}
