package model

// Question is a single multiple-choice question with exactly one correct
// option, addressed by index 0-3.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// QuestionSet is the read-only reference data for one discipline and mode,
// loaded from quiz_data_{discipline}.json or {discipline}_practice.json.
type QuestionSet struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// AnswerKey extracts the ordered correct-answer indices.
func (qs *QuestionSet) AnswerKey() []int {
	key := make([]int, len(qs.Questions))
	for i, q := range qs.Questions {
		key[i] = q.CorrectAnswer
	}
	return key
}

// QuizMode distinguishes the graded question set from the self-training one.
type QuizMode string

const (
	QuizModeOfficial QuizMode = "official"
	QuizModePractice QuizMode = "practice"
)

// DisciplineNames maps discipline codes to the display names printed on
// certificates and reports.
var DisciplineNames = map[string]string{
	"munitions": "GENERALITES SUR LES MUNITIONS LASM 3",
	"agc":       "ARMEMENT GROS CALIBRE (AGC) POUR LASM 2",
	"genie":     "GENIE MILITAIRE 4 LASM 2",
}

// DisciplineName returns the display name for a discipline code, falling back
// to the raw code for extensions without a registered name.
func DisciplineName(code string) string {
	if name, ok := DisciplineNames[code]; ok {
		return name
	}
	return code
}
