package bigo

import "testing"

func TestMaxSubarraySum(t *testing.T) {
	tests := []struct {
		name string
		seq  []int32
		want int64
	}{
		{"empty", nil, 0},
		{"all negative", []int32{-3, -1, -7}, 0},
		{"all positive", []int32{1, 2, 3, 4}, 10},
		{"mixed", []int32{-2, 1, -3, 4, -1, 2, 1, -5, 4}, 6},
		{"wide", []int32{2147483647, 2147483647}, 4294967294},
	}

	for _, tt := range tests {
		if got := MaxSubarraySum(tt.seq); got != tt.want {
			t.Errorf("%s: MaxSubarraySum() = %d, expected %d", tt.name, got, tt.want)
		}
		if got := MaxSubarraySumLinear(tt.seq); got != tt.want {
			t.Errorf("%s: MaxSubarraySumLinear() = %d, expected %d", tt.name, got, tt.want)
		}
	}
}

func TestMaxSubarraySumAgreement(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		seq := randomSequence(seed, 200, -100, 100)
		if a, b := MaxSubarraySum(seq), MaxSubarraySumLinear(seq); a != b {
			t.Errorf("seed=%d quadratic=%d linear=%d", seed, a, b)
		}
	}
}
