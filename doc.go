// Package bigo is a small gallery of textbook algorithms, one per
// complexity class, meant to be timed side by side.
//
// The most involved piece is RangeSumIndex, a square root decomposition
// of a sequence that answers inclusive range sums in O(sqrt(n)) after
// O(n) preprocessing. The remaining routines (FindFirst, BinarySearch,
// LinearSearch, QuickSort, MaxSubarraySum and Hanoi) are stateless.
package bigo
