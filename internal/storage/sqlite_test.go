package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hanoi/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

var baseTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func trial(discs, moves int, elapsed time.Duration, offset time.Duration) Trial {
	start := baseTime.Add(offset)
	return Trial{
		SessionID:  "s1",
		DiscCount:  discs,
		Moves:      moves,
		Elapsed:    elapsed,
		StartedAt:  start,
		FinishedAt: start.Add(elapsed),
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndBest(t *testing.T) {
	store := openTestStore(t)

	for _, tr := range []Trial{
		trial(3, 9, 20*time.Second, 0),
		trial(3, 7, 12*time.Second, time.Minute),
		trial(3, 11, 12*time.Second, 2*time.Minute),
		trial(5, 31, 90*time.Second, 3*time.Minute),
	} {
		if _, err := store.SaveTrial(tr); err != nil {
			t.Fatalf("SaveTrial() failed: %v", err)
		}
	}

	best, err := store.BestTrials(3, 10)
	if err != nil {
		t.Fatalf("BestTrials() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("expected 3 trials, got %d", len(best))
	}

	// Fastest first, fewer moves breaking the tie
	if best[0].Elapsed != 12*time.Second || best[0].Moves != 7 {
		t.Errorf("best[0] = %+v", best[0])
	}
	if best[1].Moves != 11 || best[2].Elapsed != 20*time.Second {
		t.Errorf("unexpected order: %+v", best)
	}
	if !best[0].StartedAt.Equal(baseTime.Add(time.Minute)) {
		t.Errorf("StartedAt = %v", best[0].StartedAt)
	}
}

func TestStoreBestTrialsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveTrial(trial(3, 7, time.Duration(i+1)*time.Second, time.Duration(i)*time.Minute))
	}

	best, err := store.BestTrials(3, 2)
	if err != nil {
		t.Fatalf("BestTrials() failed: %v", err)
	}
	if len(best) != 2 || best[0].Elapsed != time.Second || best[1].Elapsed != 2*time.Second {
		t.Errorf("BestTrials(3, 2) = %+v", best)
	}
}

func TestStoreRecentTrials(t *testing.T) {
	store := openTestStore(t)
	store.SaveTrial(trial(3, 7, time.Second, 0))
	store.SaveTrial(trial(5, 31, time.Second, time.Hour))
	store.SaveTrial(trial(6, 63, time.Second, 30*time.Minute))

	recent, err := store.RecentTrials(10)
	if err != nil {
		t.Fatalf("RecentTrials() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 trials, got %d", len(recent))
	}
	if recent[0].DiscCount != 5 || recent[1].DiscCount != 6 || recent[2].DiscCount != 3 {
		t.Errorf("unexpected order: %d %d %d", recent[0].DiscCount, recent[1].DiscCount, recent[2].DiscCount)
	}
}

func TestStoreSaveInvalid(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveTrial(trial(0, 0, 0, 0)); err == nil {
		t.Error("SaveTrial() with zero discs should fail")
	}
}

func TestStoreDiscStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.DiscStats(3)
	if err != nil {
		t.Fatalf("DiscStats() failed: %v", err)
	}
	if stats != nil {
		t.Errorf("DiscStats() on empty store = %+v, want nil", stats)
	}

	store.SaveTrial(trial(3, 7, 10*time.Second, 0))
	store.SaveTrial(trial(3, 9, 20*time.Second, time.Minute))

	stats, err = store.DiscStats(3)
	if err != nil {
		t.Fatalf("DiscStats() failed: %v", err)
	}
	if stats.Trials != 2 || stats.FewestMoves != 7 || stats.AvgMoves != 8 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BestElapsed != 10*time.Second || stats.AvgElapsed != 15*time.Second {
		t.Errorf("elapsed stats = %v / %v", stats.BestElapsed, stats.AvgElapsed)
	}
	if !stats.LastPlayed.Equal(baseTime.Add(time.Minute + 20*time.Second)) {
		t.Errorf("LastPlayed = %v", stats.LastPlayed)
	}
}

func TestStorePlayedDiscCountsAndClear(t *testing.T) {
	store := openTestStore(t)
	store.SaveTrial(trial(5, 31, time.Second, 0))
	store.SaveTrial(trial(3, 7, time.Second, 0))
	store.SaveTrial(trial(3, 7, time.Second, 0))

	counts, err := store.PlayedDiscCounts()
	if err != nil {
		t.Fatalf("PlayedDiscCounts() failed: %v", err)
	}
	if len(counts) != 2 || counts[0] != 3 || counts[1] != 5 {
		t.Errorf("PlayedDiscCounts() = %v, want [3 5]", counts)
	}

	if err := store.ClearTrials(3); err != nil {
		t.Fatalf("ClearTrials(3) failed: %v", err)
	}
	if best, _ := store.BestTrials(3, 10); len(best) != 0 {
		t.Errorf("expected no 3-disc trials after clear, got %d", len(best))
	}
	if best, _ := store.BestTrials(5, 10); len(best) != 1 {
		t.Error("5-disc trials should not be affected by clearing 3")
	}

	if err := store.ClearTrials(0); err != nil {
		t.Fatalf("ClearTrials(0) failed: %v", err)
	}
	if recent, _ := store.RecentTrials(10); len(recent) != 0 {
		t.Errorf("expected empty store, got %d trials", len(recent))
	}
}

func TestRecorder(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "p01", nil)
	other := NewRecorder(store, "p01", nil)

	if rec.SessionID() == "" || rec.SessionID() == other.SessionID() {
		t.Fatalf("session IDs should be unique and non-empty: %q %q", rec.SessionID(), other.SessionID())
	}

	hook := rec.Hook()
	hook(session.Result{DiscCount: 3, Moves: 7, Elapsed: 5 * time.Second, StartedAt: baseTime, FinishedAt: baseTime.Add(5 * time.Second)})
	hook(session.Result{DiscCount: 5, Moves: 40, Elapsed: time.Minute, StartedAt: baseTime, FinishedAt: baseTime.Add(time.Minute)})

	trials, err := store.SessionTrials(rec.SessionID())
	if err != nil {
		t.Fatalf("SessionTrials() failed: %v", err)
	}
	if len(trials) != 2 {
		t.Fatalf("expected 2 trials, got %d", len(trials))
	}
	if trials[0].Participant != "p01" || trials[0].DiscCount != 3 || trials[1].Moves != 40 {
		t.Errorf("unexpected trials: %+v", trials)
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	rec := NewRecorder(nil, "", nil)
	if err := rec.Record(session.Result{DiscCount: 3}); !errors.Is(err, ErrNoStore) {
		t.Errorf("Record() error = %v, want ErrNoStore", err)
	}
	// Hook must be a no-op rather than panic
	rec.Hook()(session.Result{DiscCount: 3})
}
