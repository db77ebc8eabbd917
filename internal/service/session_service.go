package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ouss-AGC/oama-plateform/internal/model"
	"github.com/ouss-AGC/oama-plateform/internal/store"
)

var (
	// ErrNoActiveSession: a student operation arrived while no PIN exists.
	ErrNoActiveSession = errors.New("aucune session active")
	// ErrInvalidPin: the submitted PIN does not match the live session.
	ErrInvalidPin = errors.New("code PIN incorrect")
	// ErrResultNotFound: no submission carries the requested timestamp.
	ErrResultNotFound = errors.New("résultat introuvable")
)

// SessionService drives the single live quiz session: PIN lifecycle,
// participant admission, the start signal students poll for, and result
// intake.
type SessionService struct {
	store *store.SessionStore
}

func NewSessionService(st *store.SessionStore) *SessionService {
	return &SessionService{store: st}
}

// GeneratePin discards any previous session and opens a fresh one under a
// new six-digit PIN. Participants and results of the old session are lost.
func (s *SessionService) GeneratePin() string {
	pin := fmt.Sprintf("%06d", 100000+rand.Intn(900000))
	s.store.Reset(pin)
	log.Info().Str("pin", pin).Msg("nouvelle session créée")
	return pin
}

// ValidatePin checks a student-entered PIN against the live session.
func (s *SessionService) ValidatePin(pin string) error {
	current := s.store.Pin()
	if current == "" {
		return ErrNoActiveSession
	}
	if pin != current {
		return ErrInvalidPin
	}
	return nil
}

// JoinSession admits a student into the waiting room. Joining twice with the
// same matricule is a no-op, so a page refresh never duplicates a
// participant or bumps the connected count.
func (s *SessionService) JoinSession(p model.Participant) error {
	if s.store.Pin() == "" {
		return ErrNoActiveSession
	}
	if s.store.AddParticipant(p) {
		log.Info().
			Str("matricule", p.Matricule).
			Str("nom", p.Name).
			Msg("participant admis en salle d'attente")
	}
	return nil
}

// StartQuiz flips the live session to started. Every waiting student picks
// the signal up on their next poll.
func (s *SessionService) StartQuiz() error {
	if !s.store.Start() {
		return ErrNoActiveSession
	}
	log.Info().Msg("quiz démarré")
	return nil
}

// QuizStarted reports the start flag students poll during the waiting room.
// With no live session the quiz is simply not started.
func (s *SessionService) QuizStarted() bool {
	return s.store.Status() == model.SessionStatusStarted
}

// Status snapshots the live session for the admin dashboard. The PIN is null
// rather than "" when no session exists, matching what the dashboard checks.
func (s *SessionService) Status() model.SessionInfo {
	snap := s.store.Snapshot()
	info := model.SessionInfo{
		ConnectedCount: len(snap.Participants),
		Participants:   snap.Participants,
		Status:         snap.Status(),
		Results:        snap.Results,
	}
	if snap.Pin != "" {
		info.Pin = &snap.Pin
	}
	if info.Participants == nil {
		info.Participants = []model.Participant{}
	}
	if info.Results == nil {
		info.Results = []model.QuizResult{}
	}
	return info
}

// SubmitResult records a finished attempt. Intake is unconditional: results
// are accepted with or without a live session, and nothing deduplicates a
// student submitting twice.
func (s *SessionService) SubmitResult(r model.QuizResult) {
	if r.Timestamp == 0 {
		r.Timestamp = time.Now().UnixMilli()
	}
	s.store.AppendResult(r)
	log.Info().
		Str("matricule", r.Student.Matricule).
		Str("discipline", r.Discipline).
		Float64("scoreOn20", r.ScoreOn20).
		Msg("résultat enregistré")
}

// Results returns every recorded submission in arrival order.
func (s *SessionService) Results() []model.QuizResult {
	return s.store.Results()
}

// FindResult locates one submission by its timestamp identifier.
func (s *SessionService) FindResult(timestamp int64) (model.QuizResult, error) {
	r, ok := s.store.FindResult(timestamp)
	if !ok {
		return model.QuizResult{}, ErrResultNotFound
	}
	return r, nil
}

var (
	testGrades      = []string{"EOA", "Cpl", "Sgt", "Adj", "Asp"}
	testNames       = []string{"Ahmed Ben Ali", "Mohamed Trabelsi", "Sami Gharbi", "Youssef Mansouri", "Karim Jebali", "Nizar Hammami", "Walid Sassi", "Omar Khelifi", "Bilel Mejri", "Hamza Dridi"}
	testDisciplines = []string{"munitions", "agc", "genie"}
)

// GenerateTestData injects ten synthetic results so the dashboard, exports
// and reports can be exercised without a real class.
func (s *SessionService) GenerateTestData() int {
	const n = 10
	now := time.Now().UnixMilli()
	for i := 0; i < n; i++ {
		scoreOn20 := 5 + rand.Float64()*15
		total := 30
		correct := int(scoreOn20 / 20 * float64(total))
		r := model.QuizResult{
			Student: model.Participant{
				Grade:     testGrades[rand.Intn(len(testGrades))],
				Name:      testNames[i%len(testNames)],
				ClassName: "LASM 2",
				Matricule: fmt.Sprintf("%d", 1000+i),
			},
			Discipline:     testDisciplines[rand.Intn(len(testDisciplines))],
			Answers:        make([]*int, total),
			Score:          scoreOn20 * 5,
			ScoreOn20:      scoreOn20,
			CorrectCount:   correct,
			TotalQuestions: total,
			TimeElapsed:    600 + rand.Intn(3000),
			Timestamp:      now + int64(i),
		}
		s.store.AppendResult(r)
	}
	log.Info().Int("count", n).Msg("données de test générées")
	return n
}
