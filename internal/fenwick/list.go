// Package fenwick provides a list of int64 values supporting prefix sums.
//
// A Fenwick tree, or binary indexed tree, stores the list as an implicit
// tree where each node holds the sum of its subtree. Prefix sums run
// in O(log n) using no more memory than the list.
//
// The list is built once and only queried: it serves as an independent
// reference for range sums computed by other means.
package fenwick

// List is a list of numbers with O(log n) prefix sums. The zero value
// is an empty list.
type List struct {
	// tree[k] holds the sum of the underlying values t[k&(k+1)] to t[k].
	// The prefix sum of the first k values adds one node per 1 bit in
	// the binary expansion of k: with k = 13 = 1101₂ it adds tree[12],
	// tree[11] and tree[7], covering t[12], t[8..11] and t[0..7].
	tree []int64
}

// New creates a list holding the given values.
func New(values ...int64) *List {
	n := len(values)
	t := make([]int64, n)
	copy(t, values)
	for i := range t {
		if j := i | (i + 1); j < n {
			t[j] += t[i]
		}
	}
	return &List{tree: t}
}

// FromInt32 creates a list from 32-bit values.
func FromInt32(values []int32) *List {
	wide := make([]int64, len(values))
	for i, v := range values {
		wide[i] = int64(v)
	}
	return New(wide...)
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.tree)
}

// Sum returns the sum of the elements from index 0 to index i-1.
func (l *List) Sum(i int) int64 {
	var sum int64
	for i > 0 {
		sum += l.tree[i-1]
		i &= i - 1
	}
	return sum
}

// SumRange returns the sum of the elements from index i to index j-1.
func (l *List) SumRange(i, j int) int64 {
	return l.Sum(j) - l.Sum(i)
}
