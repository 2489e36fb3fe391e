package storage

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-hanoi/internal/session"
)

// Recorder saves the results of one session under a shared session ID.
type Recorder struct {
	store       *Store
	sessionID   string
	participant string
	logger      *log.Logger
}

// NewRecorder creates a recorder with a fresh session ID.
// A nil store is allowed; Record then reports ErrNoStore.
func NewRecorder(store *Store, participant string, logger *log.Logger) *Recorder {
	return &Recorder{
		store:       store,
		sessionID:   uuid.NewString(),
		participant: participant,
		logger:      logger,
	}
}

// SessionID returns the ID stored with every trial from this recorder.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Record stores one finished puzzle.
func (r *Recorder) Record(res session.Result) error {
	if r.store == nil {
		return ErrNoStore
	}

	_, err := r.store.SaveTrial(Trial{
		SessionID:   r.sessionID,
		Participant: r.participant,
		DiscCount:   res.DiscCount,
		Moves:       res.Moves,
		Elapsed:     res.Elapsed,
		StartedAt:   res.StartedAt,
		FinishedAt:  res.FinishedAt,
	})
	if err != nil {
		return fmt.Errorf("storage: record trial: %w", err)
	}
	return nil
}

// Hook returns a session finish hook that records results best-effort.
// Failures are logged and never interrupt the session.
func (r *Recorder) Hook() func(session.Result) {
	return func(res session.Result) {
		if r.store == nil {
			return
		}
		if err := r.Record(res); err != nil && r.logger != nil {
			r.logger.Warn("could not record trial", "error", err, "session", r.sessionID)
		}
	}
}
