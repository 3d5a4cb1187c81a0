package bigo

import "fmt"

// Peg identifies one of the three Tower of Hanoi pegs.
type Peg int

const (
	SourcePeg Peg = 1
	TargetPeg Peg = 2
	SparePeg  Peg = 3
)

// Move transfers the top disk of From onto To. Disks are numbered from
// 1, the smallest.
type Move struct {
	Disk int
	From Peg
	To   Peg
}

func (m Move) String() string {
	return fmt.Sprintf("disk %d: %d -> %d", m.Disk, m.From, m.To)
}

// Hanoi calls emit for each move that transfers disks from SourcePeg to
// TargetPeg. A non-positive disk count emits nothing.
func Hanoi(disks int, emit func(Move)) {
	hanoi(disks, SourcePeg, TargetPeg, SparePeg, emit)
}

func hanoi(n int, from, to, spare Peg, emit func(Move)) {
	if n < 1 {
		return
	}
	hanoi(n-1, from, spare, to, emit)
	emit(Move{Disk: n, From: from, To: to})
	hanoi(n-1, spare, to, from, emit)
}

// HanoiMoves returns 2^disks - 1, the number of moves Hanoi emits.
// It panics for more than 64 disks.
func HanoiMoves(disks int) uint64 {
	if disks < 1 {
		return 0
	}
	if disks > 64 {
		panic(fmt.Sprintf("Move count for %d disks overflows uint64", disks))
	}
	if disks == 64 {
		return ^uint64(0)
	}
	return 1<<uint(disks) - 1
}
