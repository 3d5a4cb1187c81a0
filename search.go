package bigo

// FindFirst returns the first element of seq. The boolean is false when
// seq is empty.
func FindFirst(seq []int32) (int32, bool) {
	if len(seq) == 0 {
		return 0, false
	}
	return seq[0], true
}

// BinarySearch looks for target in seq, which must be sorted in
// ascending order. It returns the lowest index holding target, so a run
// of duplicates always resolves to its first element.
func BinarySearch(seq []int32, target int32) (int, bool) {
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if seq[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(seq) && seq[lo] == target
}

// LinearSearch returns the index of the first element equal to target.
func LinearSearch(seq []int32, target int32) (int, bool) {
	for i, v := range seq {
		if v == target {
			return i, true
		}
	}
	return -1, false
}
