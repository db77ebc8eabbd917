package scoring

// Package scoring implements the deterministic grading of one quiz attempt.
// An answer is correct only on exact index match with the answer key; a nil
// (unanswered) entry never matches and always counts wrong. There is no
// partial credit and no negative marking.

// Score summarizes one graded attempt.
type Score struct {
	CorrectCount   int     `json:"correctCount"`
	TotalQuestions int     `json:"totalQuestions"`
	ScorePercent   float64 `json:"score"`
	ScoreOn20      float64 `json:"scoreOn20"`
}

// Grade scores a list of selected option indices against the answer key.
// TotalQuestions always equals len(answerKey); surplus answers are ignored
// and missing trailing answers count wrong. An empty key yields zeros, never
// a division by zero.
func Grade(answers []*int, answerKey []int) Score {
	total := len(answerKey)
	if total == 0 {
		return Score{}
	}

	correct := 0
	for i, want := range answerKey {
		if i >= len(answers) {
			break
		}
		if got := answers[i]; got != nil && *got == want {
			correct++
		}
	}

	return Score{
		CorrectCount:   correct,
		TotalQuestions: total,
		ScorePercent:   float64(correct) / float64(total) * 100,
		ScoreOn20:      float64(correct) / float64(total) * 20,
	}
}

// Medal tiers awarded on top of a pass, by scoreOn20 threshold.
type Medal string

const (
	MedalNone   Medal = ""
	MedalBronze Medal = "bronze"
	MedalSilver Medal = "argent"
	MedalGold   Medal = "or"
)

// CertificateKind describes which certificate a score earns.
type CertificateKind string

const (
	// CertificateNone: failed attempt, encouragement message instead.
	CertificateNone CertificateKind = "none"
	// CertificateVisual: passing score up to 15/20, shown on screen but not
	// downloadable as a file.
	CertificateVisual CertificateKind = "visual"
	// CertificateDownloadable: score strictly above 15/20, formal PDF.
	CertificateDownloadable CertificateKind = "downloadable"
)

// PassMark is the minimum scoreOn20 for a passing attempt.
const PassMark = 10.0

// Passed reports whether scoreOn20 reaches the pass mark.
func Passed(scoreOn20 float64) bool {
	return scoreOn20 >= PassMark
}

// MedalFor returns the medal tier for a scoreOn20. Thresholds are inclusive
// lower bounds: 18 or, 16 argent, 14 bronze.
func MedalFor(scoreOn20 float64) Medal {
	switch {
	case scoreOn20 >= 18:
		return MedalGold
	case scoreOn20 >= 16:
		return MedalSilver
	case scoreOn20 >= 14:
		return MedalBronze
	default:
		return MedalNone
	}
}

// CertificateFor maps a scoreOn20 to its certificate eligibility.
func CertificateFor(scoreOn20 float64) CertificateKind {
	switch {
	case scoreOn20 > 15:
		return CertificateDownloadable
	case scoreOn20 >= PassMark:
		return CertificateVisual
	default:
		return CertificateNone
	}
}

// Classification bundles the pass/medal/certificate banding of one score.
type Classification struct {
	Passed      bool            `json:"passed"`
	Medal       Medal           `json:"medal,omitempty"`
	Certificate CertificateKind `json:"certificate"`
}

// Classify bands a scoreOn20 into its pass, medal and certificate tiers.
func Classify(scoreOn20 float64) Classification {
	return Classification{
		Passed:      Passed(scoreOn20),
		Medal:       MedalFor(scoreOn20),
		Certificate: CertificateFor(scoreOn20),
	}
}

// Elapsed computes the seconds consumed from the fixed time budget and the
// countdown remainder reported at submission. The limit is fixed at quiz
// start and must not be recomputed from wall-clock drift.
func Elapsed(timeLimit, timeRemaining int) int {
	if timeRemaining < 0 {
		timeRemaining = 0
	}
	if timeRemaining > timeLimit {
		return 0
	}
	return timeLimit - timeRemaining
}
