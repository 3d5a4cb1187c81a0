package bigo

// QuickSort sorts seq in place in ascending order.
//
// The pivot is the median of the first, middle and last elements, which
// keeps sorted and reverse sorted input at O(n log n). Only the smaller
// partition is sorted recursively, bounding the stack to O(log n).
func QuickSort(seq []int32) {
	for len(seq) > 1 {
		p := partition(seq)
		if p+1 < len(seq)-p-1 {
			QuickSort(seq[:p+1])
			seq = seq[p+1:]
		} else {
			QuickSort(seq[p+1:])
			seq = seq[:p+1]
		}
	}
}

// partition is Hoare's scheme. It returns j such that every element of
// seq[:j+1] is <= every element of seq[j+1:], with both sides non-empty.
func partition(seq []int32) int {
	lo, mid, hi := 0, (len(seq)-1)/2, len(seq)-1

	if seq[mid] < seq[lo] {
		seq[mid], seq[lo] = seq[lo], seq[mid]
	}
	if seq[hi] < seq[lo] {
		seq[hi], seq[lo] = seq[lo], seq[hi]
	}
	if seq[hi] < seq[mid] {
		seq[hi], seq[mid] = seq[mid], seq[hi]
	}
	pivot := seq[mid]

	i, j := lo-1, hi+1
	for {
		for i++; seq[i] < pivot; i++ {
		}
		for j--; seq[j] > pivot; j-- {
		}
		if i >= j {
			return j
		}
		seq[i], seq[j] = seq[j], seq[i]
	}
}
