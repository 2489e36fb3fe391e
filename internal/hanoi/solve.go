package hanoi

import "fmt"

// Move is a single relocation of a top disc.
type Move struct {
	From int
	To   int
}

// String returns the move as "0->2".
func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}

// MinMoves returns the length of the shortest solution for n discs (2^n - 1).
func MinMoves(n int) int {
	if n < 1 {
		return 0
	}
	return 1<<n - 1
}

// Solve returns the optimal move sequence that carries n discs from one
// peg to another using the remaining peg as scratch space.
// It is a reference for reporting and tests; play is never checked against it.
func Solve(n, from, to, spare int) []Move {
	moves := make([]Move, 0, MinMoves(n))
	return solve(n, from, to, spare, moves)
}

func solve(n, from, to, spare int, moves []Move) []Move {
	if n <= 0 {
		return moves
	}
	moves = solve(n-1, from, spare, to, moves)
	moves = append(moves, Move{From: from, To: to})
	return solve(n-1, spare, to, from, moves)
}

// Replay applies moves in order and returns the index of the first rejected
// move, or -1 if every move succeeded.
func (p *Puzzle) Replay(moves []Move) int {
	for i, m := range moves {
		if !p.Apply(m.From, m.To) {
			return i
		}
	}
	return -1
}
