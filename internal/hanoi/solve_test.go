package hanoi

import "testing"

func TestMinMoves(t *testing.T) {
	tests := []struct {
		n, expected int
	}{
		{0, 0},
		{1, 1},
		{3, 7},
		{5, 31},
		{6, 63},
		{7, 127},
	}

	for _, tc := range tests {
		if got := MinMoves(tc.n); got != tc.expected {
			t.Errorf("MinMoves(%d) = %d, want %d", tc.n, got, tc.expected)
		}
	}
}

func TestSolveThreeDiscs(t *testing.T) {
	want := []Move{{0, 2}, {0, 1}, {2, 1}, {0, 2}, {1, 0}, {1, 2}, {0, 2}}
	got := Solve(3, 0, 2, 1)

	if len(got) != len(want) {
		t.Fatalf("Solve(3) returned %d moves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSolveReplaysToWin(t *testing.T) {
	for _, n := range []int{1, 3, 5, 6, 7, 10} {
		p := MustNew(n)
		moves := Solve(n, 0, TargetPeg, 1)

		if len(moves) != MinMoves(n) {
			t.Errorf("n=%d: %d moves, want %d", n, len(moves), MinMoves(n))
		}
		if idx := p.Replay(moves); idx != -1 {
			t.Fatalf("n=%d: move %d (%s) rejected", n, idx, moves[idx])
		}
		if !p.Solved() {
			t.Errorf("n=%d: puzzle not solved after replay: %s", n, p)
		}
		if p.Moves() != MinMoves(n) {
			t.Errorf("n=%d: Moves() = %d, want %d", n, p.Moves(), MinMoves(n))
		}
	}
}

func TestReplayStopsAtIllegalMove(t *testing.T) {
	p := MustNew(3)
	idx := p.Replay([]Move{{0, 1}, {0, 1}, {0, 2}})

	if idx != 1 {
		t.Errorf("Replay() = %d, want 1", idx)
	}
	if p.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", p.Moves())
	}
}

func TestMoveString(t *testing.T) {
	if got := (Move{From: 0, To: 2}).String(); got != "0->2" {
		t.Errorf("String() = %q, want %q", got, "0->2")
	}
}
