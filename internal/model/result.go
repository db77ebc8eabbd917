package model

// QuizResult is the outcome of one completed attempt. The student block is a
// snapshot captured when the student started their quiz; it is never rewritten
// by later registrations. Results are append-only for the life of the session
// and the millisecond timestamp doubles as the per-result lookup id.
//
// Score, scoreOn20 and timeElapsed are computed client-side and accepted as
// reported; the server records them without verification.
type QuizResult struct {
	Student        Participant `json:"student"`
	Discipline     string      `json:"discipline"`
	Answers        []*int      `json:"answers"`
	Score          float64     `json:"score"`
	ScoreOn20      float64     `json:"scoreOn20"`
	CorrectCount   int         `json:"correctCount"`
	TotalQuestions int         `json:"totalQuestions"`
	TimeElapsed    int         `json:"timeElapsed"`
	Timestamp      int64       `json:"timestamp"`
	IsPractice     bool        `json:"isPractice,omitempty"`
}

// QuizType filters result sets by attempt kind.
type QuizType string

const (
	QuizTypeAll      QuizType = "all"
	QuizTypeOfficial QuizType = "official"
	QuizTypePractice QuizType = "practice"
)

// Matches reports whether the result passes the given type filter.
// Official attempts are everything not flagged as practice.
func (r *QuizResult) Matches(t QuizType) bool {
	switch t {
	case QuizTypePractice:
		return r.IsPractice
	case QuizTypeOfficial:
		return !r.IsPractice
	default:
		return true
	}
}
