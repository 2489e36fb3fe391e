// Package hanoi implements the Tower of Hanoi puzzle state: three pegs,
// legality-checked moves and win detection. It has no dependencies on the
// terminal layer so it can be driven and tested directly.
package hanoi

import (
	"errors"
	"fmt"
	"strings"
)

// PegCount is the number of pegs in a puzzle.
const PegCount = 3

// TargetPeg is the peg all discs must reach to solve the puzzle.
const TargetPeg = 2

// ErrInvalidDiscCount is returned when a puzzle is created with fewer than one disc.
var ErrInvalidDiscCount = errors.New("hanoi: disc count must be at least 1")

// Disc is identified by its size. Larger discs may never rest on smaller ones.
type Disc int

// Puzzle holds the three pegs and the move counter.
// Each peg is stored bottom to top, so the last element is the top disc.
type Puzzle struct {
	pegs  [PegCount][]Disc
	discs int
	moves int
}

// New creates a puzzle with discCount discs stacked on peg 0.
func New(discCount int) (*Puzzle, error) {
	if discCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDiscCount, discCount)
	}

	p := &Puzzle{discs: discCount}
	p.pegs[0] = make([]Disc, 0, discCount)
	for size := discCount; size >= 1; size-- {
		p.pegs[0] = append(p.pegs[0], Disc(size))
	}
	return p, nil
}

// MustNew is like New but panics on an invalid disc count.
func MustNew(discCount int) *Puzzle {
	p, err := New(discCount)
	if err != nil {
		panic(err)
	}
	return p
}

// DiscCount returns the number of discs the puzzle was created with.
func (p *Puzzle) DiscCount() int {
	return p.discs
}

// Moves returns the number of successful moves so far.
func (p *Puzzle) Moves() int {
	return p.moves
}

// validPeg reports whether i names one of the three pegs.
func validPeg(i int) bool {
	return i >= 0 && i < PegCount
}

// Top returns the top disc of a peg, or false if the peg is empty
// or the index is out of range.
func (p *Puzzle) Top(peg int) (Disc, bool) {
	if !validPeg(peg) {
		return 0, false
	}
	stack := p.pegs[peg]
	if len(stack) == 0 {
		return 0, false
	}
	return stack[len(stack)-1], true
}

// Height returns the number of discs on a peg.
func (p *Puzzle) Height(peg int) int {
	if !validPeg(peg) {
		return 0
	}
	return len(p.pegs[peg])
}

// Peg returns a copy of a peg's discs, bottom to top.
func (p *Puzzle) Peg(peg int) []Disc {
	if !validPeg(peg) {
		return nil
	}
	out := make([]Disc, len(p.pegs[peg]))
	copy(out, p.pegs[peg])
	return out
}

// Pegs returns copies of all three pegs.
func (p *Puzzle) Pegs() [PegCount][]Disc {
	var out [PegCount][]Disc
	for i := 0; i < PegCount; i++ {
		out[i] = p.Peg(i)
	}
	return out
}

// IsLegalMove reports whether the top disc of from may be placed on to.
// A move onto the same peg is never legal.
func (p *Puzzle) IsLegalMove(from, to int) bool {
	if !validPeg(from) || !validPeg(to) || from == to {
		return false
	}

	moving, ok := p.Top(from)
	if !ok {
		return false
	}

	resting, occupied := p.Top(to)
	return !occupied || resting > moving
}

// Apply moves the top disc of from onto to if the move is legal.
// It is the only operation that changes peg contents or the move counter.
// An illegal move leaves the puzzle untouched and returns false.
func (p *Puzzle) Apply(from, to int) bool {
	if !p.IsLegalMove(from, to) {
		return false
	}

	src := p.pegs[from]
	disc := src[len(src)-1]
	p.pegs[from] = src[:len(src)-1]
	p.pegs[to] = append(p.pegs[to], disc)
	p.moves++
	return true
}

// HasWon reports whether the target peg holds exactly discCount discs.
func (p *Puzzle) HasWon(target, discCount int) bool {
	if !validPeg(target) {
		return false
	}
	return len(p.pegs[target]) == discCount
}

// Solved reports whether every disc has reached TargetPeg.
func (p *Puzzle) Solved() bool {
	return p.HasWon(TargetPeg, p.discs)
}

// Clone returns an independent copy of the puzzle.
func (p *Puzzle) Clone() *Puzzle {
	c := &Puzzle{discs: p.discs, moves: p.moves}
	c.pegs = p.Pegs()
	return c
}

// String renders the pegs as "[3 2 1] [] []".
func (p *Puzzle) String() string {
	parts := make([]string, PegCount)
	for i, stack := range p.pegs {
		sizes := make([]string, len(stack))
		for j, d := range stack {
			sizes[j] = fmt.Sprint(int(d))
		}
		parts[i] = "[" + strings.Join(sizes, " ") + "]"
	}
	return strings.Join(parts, " ")
}
