package bigo

import (
	"sort"
	"testing"
)

func TestFindFirst(t *testing.T) {
	if _, ok := FindFirst(nil); ok {
		t.Errorf("FindFirst() on an empty sequence should report nothing found")
	}

	if v, ok := FindFirst([]int32{7, 1, 2}); !ok || v != 7 {
		t.Errorf("Expected (7, true), got (%d, %v)", v, ok)
	}
}

func TestBinarySearch(t *testing.T) {
	seq := []int32{-5, -1, 2, 2, 2, 2, 8, 13, 13, 40}

	tests := []struct {
		target int32
		index  int
		found  bool
	}{
		{-100, 0, false},
		{-5, 0, true},
		{0, 2, false},
		{2, 2, true},
		{5, 6, false},
		{13, 7, true},
		{40, 9, true},
		{41, 10, false},
	}

	for _, tt := range tests {
		index, found := BinarySearch(seq, tt.target)
		if found != tt.found || index != tt.index {
			t.Errorf("BinarySearch(%d) = (%d, %v), expected (%d, %v)", tt.target, index, found, tt.index, tt.found)
		}
	}

	if _, found := BinarySearch(nil, 1); found {
		t.Errorf("BinarySearch() on an empty sequence should never find anything")
	}
}

func TestBinarySearchAgreesWithLinear(t *testing.T) {
	seq := randomSequence(0xDEADBEEF, 500, -50, 50)
	sort.Slice(seq, func(i, j int) bool { return seq[i] < seq[j] })

	for target := int32(-60); target <= 60; target++ {
		bi, bfound := BinarySearch(seq, target)
		li, lfound := LinearSearch(seq, target)

		if bfound != lfound {
			t.Fatalf("Disagreement on %d: binary=%v linear=%v", target, bfound, lfound)
		}
		if bfound && bi != li {
			t.Errorf("Expected first occurrence of %d at %d, got %d", target, li, bi)
		}
	}
}

func TestLinearSearch(t *testing.T) {
	seq := []int32{3, 9, 1, 9}

	if i, ok := LinearSearch(seq, 9); !ok || i != 1 {
		t.Errorf("Expected (1, true), got (%d, %v)", i, ok)
	}

	if i, ok := LinearSearch(seq, 4); ok || i != -1 {
		t.Errorf("Expected (-1, false), got (%d, %v)", i, ok)
	}
}
