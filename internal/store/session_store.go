package store

import (
	"sync"

	"github.com/ouss-AGC/oama-plateform/internal/model"
)

// SessionStore owns the single live exam session record. All mutations are
// serialized under one mutex so that two simultaneous joins with the same
// matricule can never both pass the existence check. The store holds no
// lifecycle policy; SessionService decides what is allowed when.
//
// State is intentionally in-memory only and lost on restart: every exam event
// starts from a fresh PIN.
type SessionStore struct {
	mu      sync.RWMutex
	session model.Session
}

// NewSessionStore creates an empty (idle) session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Reset replaces the live session with a fresh waiting one gated by pin.
// Prior participants and results are discarded, not archived.
func (s *SessionStore) Reset(pin string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = model.Session{Pin: pin}
}

// Pin returns the live PIN, or "" when no session exists.
func (s *SessionStore) Pin() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Pin
}

// Status returns the derived lifecycle state.
func (s *SessionStore) Status() model.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Status()
}

// Start flips the session into the started state. Returns false when no PIN
// is live.
func (s *SessionStore) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Pin == "" {
		return false
	}
	s.session.Started = true
	return true
}

// AddParticipant registers a participant, keyed by matricule. The check and
// the insert happen under the same lock, so duplicate concurrent joins cannot
// double-insert. Returns true if the participant was added, false if a
// participant with the same matricule already existed (the existing entry is
// neither moved nor updated).
func (s *SessionStore) AddParticipant(p model.Participant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.session.Participants {
		if existing.Matricule == p.Matricule {
			return false
		}
	}
	s.session.Participants = append(s.session.Participants, p)
	return true
}

// AppendResult records a completed attempt. Results are append-only: there is
// no duplicate-submission guard, so a student submitting twice produces two
// entries.
func (s *SessionStore) AppendResult(r model.QuizResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Results = append(s.session.Results, r)
}

// Results returns a copy of the collected results in submission order.
func (s *SessionStore) Results() []model.QuizResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.QuizResult, len(s.session.Results))
	copy(out, s.session.Results)
	return out
}

// FindResult looks up a result by its millisecond timestamp id.
func (s *SessionStore) FindResult(timestamp int64) (model.QuizResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.session.Results {
		if r.Timestamp == timestamp {
			return r, true
		}
	}
	return model.QuizResult{}, false
}

// Snapshot returns a consistent copy of the whole session for status reads.
func (s *SessionStore) Snapshot() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := model.Session{
		Pin:          s.session.Pin,
		Started:      s.session.Started,
		Participants: make([]model.Participant, len(s.session.Participants)),
		Results:      make([]model.QuizResult, len(s.session.Results)),
	}
	copy(snap.Participants, s.session.Participants)
	copy(snap.Results, s.session.Results)
	return snap
}
