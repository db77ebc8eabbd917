package model

// SessionStatus enumerates the lifecycle states of the live exam session.
type SessionStatus string

const (
	// SessionStatusIdle means no PIN has been issued yet.
	SessionStatusIdle SessionStatus = "idle"
	// SessionStatusWaiting means a PIN is live and students may join.
	SessionStatusWaiting SessionStatus = "waiting"
	// SessionStatusStarted means the admin has launched the quiz.
	SessionStatusStarted SessionStatus = "started"
)

// Session is the single live exam instance. The status is derived: idle when no
// PIN is set, waiting once a PIN is issued, started after the admin launches.
// Issuing a new PIN discards participants and results irrecoverably — each exam
// event is independent.
type Session struct {
	Pin          string
	Started      bool
	Participants []Participant
	Results      []QuizResult
}

// Status derives the lifecycle state from the PIN and start flag.
func (s *Session) Status() SessionStatus {
	if s.Pin == "" {
		return SessionStatusIdle
	}
	if s.Started {
		return SessionStatusStarted
	}
	return SessionStatusWaiting
}

// SessionInfo is the admin-facing snapshot returned by GET /api/admin/session.
type SessionInfo struct {
	Pin            *string       `json:"pin"`
	ConnectedCount int           `json:"connectedCount"`
	Participants   []Participant `json:"participants"`
	Status         SessionStatus `json:"status"`
	Results        []QuizResult  `json:"results"`
}
