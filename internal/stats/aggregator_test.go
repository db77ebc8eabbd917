package stats

import (
	"math"
	"testing"

	"github.com/ouss-AGC/oama-plateform/internal/model"
)

func ptr(v int) *int { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func result(matricule, discipline string, scoreOn20 float64, elapsed int, practice bool) model.QuizResult {
	return model.QuizResult{
		Student:     model.Participant{Grade: "EOA", Name: "Test", ClassName: "LASM 2", Matricule: matricule},
		Discipline:  discipline,
		ScoreOn20:   scoreOn20,
		Score:       scoreOn20 * 5,
		TimeElapsed: elapsed,
		IsPractice:  practice,
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil, Filter{})
	if got != (Summary{}) {
		t.Errorf("Aggregate(nil) = %+v, want zero value", got)
	}
}

// Two passing results at 12/20 and 18/20 average to 15 with a full pass rate.
func TestAggregateTwoResults(t *testing.T) {
	results := []model.QuizResult{
		result("1001", "munitions", 12, 1800, false),
		result("1002", "munitions", 18, 1200, false),
	}

	got := Aggregate(results, Filter{})
	if got.Count != 2 {
		t.Fatalf("Count = %d, want 2", got.Count)
	}
	if !almostEqual(got.Average, 15) {
		t.Errorf("Average = %v, want 15", got.Average)
	}
	if !almostEqual(got.PassRate, 100) {
		t.Errorf("PassRate = %v, want 100", got.PassRate)
	}
	if !almostEqual(got.AverageTime, 1500) {
		t.Errorf("AverageTime = %v, want 1500", got.AverageTime)
	}
	if got.Max != 18 || got.Min != 12 {
		t.Errorf("Max/Min = %v/%v, want 18/12", got.Max, got.Min)
	}
}

func TestAggregatePassRate(t *testing.T) {
	results := []model.QuizResult{
		result("1", "agc", 8, 600, false),
		result("2", "agc", 10, 600, false),
		result("3", "agc", 16, 600, false),
		result("4", "agc", 4, 600, false),
	}
	got := Aggregate(results, Filter{})
	if !almostEqual(got.PassRate, 50) {
		t.Errorf("PassRate = %v, want 50", got.PassRate)
	}
}

func TestAggregateFilters(t *testing.T) {
	results := []model.QuizResult{
		result("1", "munitions", 12, 600, false),
		result("2", "agc", 18, 600, false),
		result("3", "munitions", 20, 600, true),
	}

	byDiscipline := Aggregate(results, Filter{Discipline: "munitions"})
	if byDiscipline.Count != 2 {
		t.Errorf("discipline filter Count = %d, want 2", byDiscipline.Count)
	}

	official := Aggregate(results, Filter{QuizType: model.QuizTypeOfficial})
	if official.Count != 2 {
		t.Errorf("official filter Count = %d, want 2", official.Count)
	}
	if official.Max != 18 {
		t.Errorf("official Max = %v, want 18 (practice run excluded)", official.Max)
	}

	practice := Aggregate(results, Filter{QuizType: model.QuizTypePractice})
	if practice.Count != 1 {
		t.Errorf("practice filter Count = %d, want 1", practice.Count)
	}
}

func TestQuestionDifficulty(t *testing.T) {
	set := &model.QuestionSet{
		Title: "Test",
		Questions: []model.Question{
			{ID: 1, Question: "Q1", Options: []string{"a", "b"}, CorrectAnswer: 0},
			{ID: 2, Question: "Q2", Options: []string{"a", "b"}, CorrectAnswer: 1},
			{ID: 3, Question: "Q3", Options: []string{"a", "b"}, CorrectAnswer: 0},
		},
	}
	results := []model.QuizResult{
		{Answers: []*int{ptr(0), ptr(1), nil}},
		{Answers: []*int{ptr(0), ptr(0), ptr(1)}},
		{Answers: []*int{ptr(1), ptr(1), nil}},
	}

	stats := QuestionDifficulty(results, set)
	if len(stats) != 3 {
		t.Fatalf("len(stats) = %d, want 3", len(stats))
	}

	// Q3: 1 answered, 0 correct -> 0%. Q1: 3 answered, 2 correct -> 66.7%.
	// Q2: 3 answered, 2 correct -> 66.7%. Hardest first.
	if stats[0].Index != 2 || stats[0].SuccessRate != 0 {
		t.Errorf("hardest = index %d rate %v, want index 2 rate 0", stats[0].Index, stats[0].SuccessRate)
	}
	if stats[0].Answered != 1 {
		t.Errorf("Q3 Answered = %d, want 1 (nil answers excluded)", stats[0].Answered)
	}
	for _, s := range stats[1:] {
		if !almostEqual(s.SuccessRate, 200.0/3.0) {
			t.Errorf("index %d SuccessRate = %v, want %v", s.Index, s.SuccessRate, 200.0/3.0)
		}
	}
}

func TestQuestionDifficultyEmpty(t *testing.T) {
	if got := QuestionDifficulty(nil, nil); got != nil {
		t.Errorf("QuestionDifficulty(nil, nil) = %v, want nil", got)
	}
	set := &model.QuestionSet{Questions: []model.Question{{Question: "Q1"}}}
	stats := QuestionDifficulty(nil, set)
	if len(stats) != 1 || stats[0].SuccessRate != 0 || stats[0].Answered != 0 {
		t.Errorf("no results: stats = %+v, want single zero entry", stats)
	}
}

func TestTimeDistribution(t *testing.T) {
	edges := []int{0, 600, 1200}
	results := []model.QuizResult{
		{TimeElapsed: 30},
		{TimeElapsed: 599},
		{TimeElapsed: 600},
		{TimeElapsed: 1199},
		{TimeElapsed: 5000},
	}

	buckets := TimeDistribution(results, edges)
	if len(buckets) != 3 {
		t.Fatalf("len(buckets) = %d, want 3: %+v", len(buckets), buckets)
	}
	wantLabels := []string{"0-599s", "600-1199s", "1200s+"}
	wantCounts := []int{2, 2, 1}
	for i, b := range buckets {
		if b.Label != wantLabels[i] {
			t.Errorf("bucket %d label = %q, want %q", i, b.Label, wantLabels[i])
		}
		if b.Count != wantCounts[i] {
			t.Errorf("bucket %d count = %d, want %d", i, b.Count, wantCounts[i])
		}
	}
}

func TestTimeDistributionOmitsEmpty(t *testing.T) {
	edges := []int{0, 600, 1200}
	buckets := TimeDistribution([]model.QuizResult{{TimeElapsed: 2000}}, edges)
	if len(buckets) != 1 {
		t.Fatalf("len(buckets) = %d, want 1", len(buckets))
	}
	if buckets[0].Label != "1200s+" || buckets[0].Count != 1 {
		t.Errorf("bucket = %+v, want 1200s+ count 1", buckets[0])
	}
}

func TestRankByMatricule(t *testing.T) {
	results := []model.QuizResult{
		result("1020", "munitions", 10, 0, false),
		result("17", "munitions", 10, 0, false),
		result("abc", "munitions", 10, 0, false),
		result("204", "munitions", 10, 0, false),
	}

	ranked := RankByMatricule(results)
	want := []string{"abc", "17", "204", "1020"}
	for i, w := range want {
		if ranked[i].Student.Matricule != w {
			t.Errorf("ranked[%d].Matricule = %q, want %q", i, ranked[i].Student.Matricule, w)
		}
	}
	// Input order untouched.
	if results[0].Student.Matricule != "1020" {
		t.Error("RankByMatricule mutated its input")
	}
}
