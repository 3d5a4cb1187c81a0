package harness

import (
	"errors"
	"fmt"
	"slices"

	"github.com/caio/go-bigo"
	"github.com/caio/go-bigo/internal/fenwick"
)

// ErrCheckFailed is returned when a trial result disagrees with its
// reference implementation.
var ErrCheckFailed = errors.New("check failed")

// Trial is one algorithm bound to its input, timed as a unit.
type Trial interface {
	Class() bigo.Class
	// Items is the input size reported alongside the timing.
	Items() int
	// Executable is false for classes without an algorithm.
	Executable() bool
	// Prepare restores the input before a run. It is not timed.
	Prepare()
	Run()
	// Check compares the outcome of the last Run against a reference.
	Check() error
}

func checkFailed(c bigo.Class, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", c, fmt.Sprintf(format, args...), ErrCheckFailed)
}

type firstTrial struct {
	seq   []int32
	value int32
	ok    bool
}

func (t *firstTrial) Class() bigo.Class { return bigo.O1 }
func (t *firstTrial) Items() int        { return len(t.seq) }
func (t *firstTrial) Executable() bool  { return true }
func (t *firstTrial) Prepare()          {}

func (t *firstTrial) Run() {
	t.value, t.ok = bigo.FindFirst(t.seq)
}

func (t *firstTrial) Check() error {
	if t.ok != (len(t.seq) > 0) || (t.ok && t.value != t.seq[0]) {
		return checkFailed(t.Class(), "first element = (%d, %v)", t.value, t.ok)
	}
	return nil
}

type binarySearchTrial struct {
	sorted []int32
	needle int32
	index  int
	found  bool
}

func (t *binarySearchTrial) Class() bigo.Class { return bigo.OLogN }
func (t *binarySearchTrial) Items() int        { return len(t.sorted) }
func (t *binarySearchTrial) Executable() bool  { return true }
func (t *binarySearchTrial) Prepare()          {}

func (t *binarySearchTrial) Run() {
	t.index, t.found = bigo.BinarySearch(t.sorted, t.needle)
}

func (t *binarySearchTrial) Check() error {
	index, found := bigo.LinearSearch(t.sorted, t.needle)
	if found != t.found || (found && index != t.index) {
		return checkFailed(t.Class(), "needle %d at (%d, %v), linear scan says (%d, %v)", t.needle, t.index, t.found, index, found)
	}
	return nil
}

type rangeSumTrial struct {
	seq      []int32
	index    *bigo.RangeSumIndex
	from, to int
	sum      int64
}

func (t *rangeSumTrial) Class() bigo.Class { return bigo.OSqrtN }
func (t *rangeSumTrial) Items() int        { return len(t.seq) }
func (t *rangeSumTrial) Executable() bool  { return true }
func (t *rangeSumTrial) Prepare()          {}

func (t *rangeSumTrial) Run() {
	t.sum = t.index.Query(t.from, t.to)
}

func (t *rangeSumTrial) Check() error {
	want := fenwick.FromInt32(t.seq).SumRange(t.from, t.to+1)
	if want != t.sum {
		return checkFailed(t.Class(), "sum [%d, %d] = %d, fenwick says %d", t.from, t.to, t.sum, want)
	}
	return nil
}

type linearSearchTrial struct {
	seq    []int32
	needle int32
	index  int
	found  bool
}

func (t *linearSearchTrial) Class() bigo.Class { return bigo.ON }
func (t *linearSearchTrial) Items() int        { return len(t.seq) }
func (t *linearSearchTrial) Executable() bool  { return true }
func (t *linearSearchTrial) Prepare()          {}

func (t *linearSearchTrial) Run() {
	t.index, t.found = bigo.LinearSearch(t.seq, t.needle)
}

// The searched sequence is sorted, so the first match is also the one
// binary search lands on.
func (t *linearSearchTrial) Check() error {
	index, found := bigo.BinarySearch(t.seq, t.needle)
	if found != t.found || (found && index != t.index) {
		return checkFailed(t.Class(), "needle %d at (%d, %v), binary search says (%d, %v)", t.needle, t.index, t.found, index, found)
	}
	return nil
}

type quickSortTrial struct {
	input []int32
	seq   []int32
}

func (t *quickSortTrial) Class() bigo.Class { return bigo.ONLogN }
func (t *quickSortTrial) Items() int        { return len(t.input) }
func (t *quickSortTrial) Executable() bool  { return true }

func (t *quickSortTrial) Prepare() {
	if len(t.seq) != len(t.input) {
		t.seq = make([]int32, len(t.input))
	}
	copy(t.seq, t.input)
}

func (t *quickSortTrial) Run() {
	bigo.QuickSort(t.seq)
}

func (t *quickSortTrial) Check() error {
	want := slices.Clone(t.input)
	slices.Sort(want)
	if !slices.Equal(want, t.seq) {
		return checkFailed(t.Class(), "output of %d items is not the sorted input", len(t.seq))
	}
	return nil
}

type maxSubarrayTrial struct {
	seq []int32
	sum int64
}

func (t *maxSubarrayTrial) Class() bigo.Class { return bigo.ONSquared }
func (t *maxSubarrayTrial) Items() int        { return len(t.seq) }
func (t *maxSubarrayTrial) Executable() bool  { return true }
func (t *maxSubarrayTrial) Prepare()          {}

func (t *maxSubarrayTrial) Run() {
	t.sum = bigo.MaxSubarraySum(t.seq)
}

func (t *maxSubarrayTrial) Check() error {
	if want := bigo.MaxSubarraySumLinear(t.seq); want != t.sum {
		return checkFailed(t.Class(), "max subarray sum = %d, kadane says %d", t.sum, want)
	}
	return nil
}

type hanoiTrial struct {
	disks int
	moves uint64
}

func (t *hanoiTrial) Class() bigo.Class { return bigo.OTwoPowN }
func (t *hanoiTrial) Items() int        { return t.disks }
func (t *hanoiTrial) Executable() bool  { return t.disks > 0 }
func (t *hanoiTrial) Prepare()          { t.moves = 0 }

func (t *hanoiTrial) Run() {
	bigo.Hanoi(t.disks, func(bigo.Move) { t.moves++ })
}

func (t *hanoiTrial) Check() error {
	if want := bigo.HanoiMoves(t.disks); want != t.moves {
		return checkFailed(t.Class(), "%d disks took %d moves, expected %d", t.disks, t.moves, want)
	}
	return nil
}

// placeholder stands in for a class with no algorithm.
type placeholder struct {
	class bigo.Class
	items int
}

func (t *placeholder) Class() bigo.Class { return t.class }
func (t *placeholder) Items() int        { return t.items }
func (t *placeholder) Executable() bool  { return false }
func (t *placeholder) Prepare()          {}
func (t *placeholder) Run()              {}
func (t *placeholder) Check() error      { return nil }
