package bigo

// MaxSubarraySum returns the largest sum of any contiguous run of seq.
// The empty run counts, so the result is never negative.
//
// Every start and end position is tried, which is O(n^2) on purpose.
// MaxSubarraySumLinear computes the same value in O(n).
func MaxSubarraySum(seq []int32) int64 {
	var best int64
	for i := range seq {
		var sum int64
		for j := i; j < len(seq); j++ {
			sum += int64(seq[j])
			if sum > best {
				best = sum
			}
		}
	}
	return best
}

// MaxSubarraySumLinear is Kadane's algorithm.
func MaxSubarraySumLinear(seq []int32) int64 {
	var best, current int64
	for _, v := range seq {
		current += int64(v)
		if current < 0 {
			current = 0
		}
		if current > best {
			best = current
		}
	}
	return best
}
