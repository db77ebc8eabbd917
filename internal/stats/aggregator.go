package stats

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ouss-AGC/oama-plateform/internal/model"
	"github.com/ouss-AGC/oama-plateform/internal/scoring"
)

// Filter narrows a result set before aggregation. An empty Discipline
// matches every discipline; QuizType separates official from practice runs.
type Filter struct {
	Discipline string
	QuizType   model.QuizType
}

// Match reports whether a result passes the filter.
func (f Filter) Match(r model.QuizResult) bool {
	if f.Discipline != "" && r.Discipline != f.Discipline {
		return false
	}
	return r.Matches(f.QuizType)
}

// Apply returns the subset of results the filter keeps, preserving order.
func (f Filter) Apply(results []model.QuizResult) []model.QuizResult {
	kept := make([]model.QuizResult, 0, len(results))
	for _, r := range results {
		if f.Match(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Summary holds the headline figures for a result set. All fields are zero
// when the set is empty.
type Summary struct {
	Count       int     `json:"count"`
	Average     float64 `json:"average"`
	PassRate    float64 `json:"passRate"`
	AverageTime float64 `json:"averageTime"`
	Max         float64 `json:"max"`
	Min         float64 `json:"min"`
}

// Aggregate computes the summary of a filtered result set. PassRate is a
// percentage in [0,100]; Average, Max and Min are on the /20 scale.
func Aggregate(results []model.QuizResult, f Filter) Summary {
	kept := f.Apply(results)
	if len(kept) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(kept),
		Max:   kept[0].ScoreOn20,
		Min:   kept[0].ScoreOn20,
	}
	var sumScore, sumTime float64
	passed := 0
	for _, r := range kept {
		sumScore += r.ScoreOn20
		sumTime += float64(r.TimeElapsed)
		if scoring.Passed(r.ScoreOn20) {
			passed++
		}
		if r.ScoreOn20 > s.Max {
			s.Max = r.ScoreOn20
		}
		if r.ScoreOn20 < s.Min {
			s.Min = r.ScoreOn20
		}
	}
	n := float64(len(kept))
	s.Average = sumScore / n
	s.PassRate = float64(passed) / n * 100
	s.AverageTime = sumTime / n
	return s
}

// QuestionStat describes how one question fared across submissions. The
// success rate divides correct answers by attempts where the question was
// actually answered; unanswered entries are excluded from the denominator.
type QuestionStat struct {
	Index       int     `json:"index"`
	Question    string  `json:"question"`
	Answered    int     `json:"answered"`
	Correct     int     `json:"correct"`
	SuccessRate float64 `json:"successRate"`
}

// QuestionDifficulty computes per-question success rates positionally
// against the question set, ordered hardest first. Questions nobody
// answered get a zero rate.
func QuestionDifficulty(results []model.QuizResult, set *model.QuestionSet) []QuestionStat {
	if set == nil || len(set.Questions) == 0 {
		return nil
	}

	stats := make([]QuestionStat, len(set.Questions))
	for i, q := range set.Questions {
		stats[i] = QuestionStat{Index: i, Question: q.Question}
	}
	for _, r := range results {
		for i, q := range set.Questions {
			if i >= len(r.Answers) {
				break
			}
			ans := r.Answers[i]
			if ans == nil {
				continue
			}
			stats[i].Answered++
			if *ans == q.CorrectAnswer {
				stats[i].Correct++
			}
		}
	}
	for i := range stats {
		if stats[i].Answered > 0 {
			stats[i].SuccessRate = float64(stats[i].Correct) / float64(stats[i].Answered) * 100
		}
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].SuccessRate < stats[b].SuccessRate
	})
	return stats
}

// TimeBucket is one slice of the completion-time distribution.
type TimeBucket struct {
	Label string `json:"label"`
	From  int    `json:"from"`
	Count int    `json:"count"`
}

// TimeDistribution buckets elapsed times into half-open ranges defined by
// ascending edges, with an open-ended final bucket. Empty buckets are
// omitted. Edges are in seconds.
func TimeDistribution(results []model.QuizResult, edges []int) []TimeBucket {
	if len(edges) == 0 {
		return nil
	}

	counts := make([]int, len(edges))
	for _, r := range results {
		idx := sort.SearchInts(edges, r.TimeElapsed+1) - 1
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	buckets := make([]TimeBucket, 0, len(edges))
	for i, from := range edges {
		if counts[i] == 0 {
			continue
		}
		label := fmt.Sprintf("%ds+", from)
		if i+1 < len(edges) {
			label = fmt.Sprintf("%d-%ds", from, edges[i+1]-1)
		}
		buckets = append(buckets, TimeBucket{Label: label, From: from, Count: counts[i]})
	}
	return buckets
}

// RankByMatricule orders results by numeric matricule, ascending. A
// matricule that does not parse as an integer sorts as zero; ties keep
// submission order.
func RankByMatricule(results []model.QuizResult) []model.QuizResult {
	ranked := make([]model.QuizResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(a, b int) bool {
		return matriculeNum(ranked[a].Student.Matricule) < matriculeNum(ranked[b].Student.Matricule)
	})
	return ranked
}

func matriculeNum(m string) int {
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
