package scoring

import (
	"math"
	"testing"
)

func ptr(v int) *int { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGrade(t *testing.T) {
	tests := []struct {
		name        string
		answers     []*int
		key         []int
		wantCorrect int
		wantOn20    float64
	}{
		{
			name:        "all correct",
			answers:     []*int{ptr(1), ptr(0), ptr(2)},
			key:         []int{1, 0, 2},
			wantCorrect: 3,
			wantOn20:    20,
		},
		{
			name:        "all wrong",
			answers:     []*int{ptr(0), ptr(1), ptr(0)},
			key:         []int{1, 0, 2},
			wantCorrect: 0,
			wantOn20:    0,
		},
		{
			name:        "nil answers count wrong",
			answers:     []*int{ptr(1), nil, nil},
			key:         []int{1, 0, 2},
			wantCorrect: 1,
			wantOn20:    20.0 / 3.0,
		},
		{
			name:        "missing trailing answers count wrong",
			answers:     []*int{ptr(1)},
			key:         []int{1, 0, 2},
			wantCorrect: 1,
			wantOn20:    20.0 / 3.0,
		},
		{
			name:        "surplus answers ignored",
			answers:     []*int{ptr(1), ptr(0), ptr(2), ptr(3)},
			key:         []int{1, 0, 2},
			wantCorrect: 3,
			wantOn20:    20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grade(tt.answers, tt.key)
			if got.CorrectCount != tt.wantCorrect {
				t.Errorf("CorrectCount = %d, want %d", got.CorrectCount, tt.wantCorrect)
			}
			if got.TotalQuestions != len(tt.key) {
				t.Errorf("TotalQuestions = %d, want %d", got.TotalQuestions, len(tt.key))
			}
			if !almostEqual(got.ScoreOn20, tt.wantOn20) {
				t.Errorf("ScoreOn20 = %v, want %v", got.ScoreOn20, tt.wantOn20)
			}
			wantPercent := tt.wantOn20 * 5
			if !almostEqual(got.ScorePercent, wantPercent) {
				t.Errorf("ScorePercent = %v, want %v", got.ScorePercent, wantPercent)
			}
		})
	}
}

func TestGradeEmptyKey(t *testing.T) {
	got := Grade([]*int{ptr(1)}, nil)
	if got != (Score{}) {
		t.Errorf("Grade with empty key = %+v, want zero value", got)
	}
}

// A 57-question quiz with 40 correct answers lands in the bronze band with a
// visual-only certificate.
func TestGradePartialCredit(t *testing.T) {
	key := make([]int, 57)
	answers := make([]*int, 57)
	for i := range key {
		key[i] = i % 4
		if i < 40 {
			answers[i] = ptr(i % 4)
		} else {
			answers[i] = ptr((i + 1) % 4)
		}
	}

	got := Grade(answers, key)
	if got.CorrectCount != 40 {
		t.Fatalf("CorrectCount = %d, want 40", got.CorrectCount)
	}
	wantOn20 := 40.0 / 57.0 * 20.0
	if !almostEqual(got.ScoreOn20, wantOn20) {
		t.Fatalf("ScoreOn20 = %v, want %v", got.ScoreOn20, wantOn20)
	}
	if got.ScoreOn20 < 14 || got.ScoreOn20 >= 16 {
		t.Fatalf("ScoreOn20 = %v, expected bronze band [14,16)", got.ScoreOn20)
	}
	if m := MedalFor(got.ScoreOn20); m != MedalBronze {
		t.Errorf("MedalFor = %q, want bronze", m)
	}
	if ck := CertificateFor(got.ScoreOn20); ck != CertificateVisual {
		t.Errorf("CertificateFor = %q, want visual", ck)
	}
}

// An entirely unanswered attempt scores zero and fails.
func TestGradeAllUnanswered(t *testing.T) {
	key := []int{0, 1, 2, 3}
	answers := make([]*int, 4)

	got := Grade(answers, key)
	if got.CorrectCount != 0 || got.ScoreOn20 != 0 {
		t.Fatalf("Grade = %+v, want zero score", got)
	}
	if Passed(got.ScoreOn20) {
		t.Error("Passed(0) = true, want false")
	}
	if ck := CertificateFor(got.ScoreOn20); ck != CertificateNone {
		t.Errorf("CertificateFor(0) = %q, want none", ck)
	}
}

func TestMedalFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Medal
	}{
		{20, MedalGold},
		{18, MedalGold},
		{17.99, MedalSilver},
		{16, MedalSilver},
		{15.5, MedalBronze},
		{14, MedalBronze},
		{13.99, MedalNone},
		{10, MedalNone},
		{0, MedalNone},
	}
	for _, tt := range tests {
		if got := MedalFor(tt.score); got != tt.want {
			t.Errorf("MedalFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCertificateFor(t *testing.T) {
	tests := []struct {
		score float64
		want  CertificateKind
	}{
		{20, CertificateDownloadable},
		{15.01, CertificateDownloadable},
		{15, CertificateVisual},
		{10, CertificateVisual},
		{9.99, CertificateNone},
		{0, CertificateNone},
	}
	for _, tt := range tests {
		if got := CertificateFor(tt.score); got != tt.want {
			t.Errorf("CertificateFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

// Bands are monotonic: a higher score never yields a lower tier.
func TestBandsMonotonic(t *testing.T) {
	rank := map[Medal]int{MedalNone: 0, MedalBronze: 1, MedalSilver: 2, MedalGold: 3}
	certRank := map[CertificateKind]int{CertificateNone: 0, CertificateVisual: 1, CertificateDownloadable: 2}

	prevMedal, prevCert := -1, -1
	for s := 0.0; s <= 20.0; s += 0.25 {
		if m := rank[MedalFor(s)]; m < prevMedal {
			t.Fatalf("medal rank decreased at score %v", s)
		} else {
			prevMedal = m
		}
		if c := certRank[CertificateFor(s)]; c < prevCert {
			t.Fatalf("certificate rank decreased at score %v", s)
		} else {
			prevCert = c
		}
	}
}

func TestElapsed(t *testing.T) {
	tests := []struct {
		limit, remaining, want int
	}{
		{3600, 3600, 0},
		{3600, 0, 3600},
		{3600, 1200, 2400},
		{3600, -5, 3600},
		{3600, 9999, 0},
	}
	for _, tt := range tests {
		if got := Elapsed(tt.limit, tt.remaining); got != tt.want {
			t.Errorf("Elapsed(%d, %d) = %d, want %d", tt.limit, tt.remaining, got, tt.want)
		}
	}
}
