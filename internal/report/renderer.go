// Package report renders the printable artifacts of the platform:
// certificates, individual student reports, the full results list and the
// CSV export. Rendering is a boundary concern; callers hand in already
// computed results and statistics and receive bytes on a writer.
package report

import (
	"io"

	"github.com/ouss-AGC/oama-plateform/internal/model"
	"github.com/ouss-AGC/oama-plateform/internal/stats"
)

// Renderer produces the printable documents of the platform.
type Renderer interface {
	// Certificate renders the formal landscape certificate for a passing
	// result. Eligibility is enforced by the caller, not here.
	Certificate(w io.Writer, r model.QuizResult) error
	// StudentReport renders the per-question correction sheet for one
	// attempt, with the class figures for context.
	StudentReport(w io.Writer, r model.QuizResult, set *model.QuestionSet, class stats.Summary) error
	// ResultsList renders the complete ranked results table.
	ResultsList(w io.Writer, results []model.QuizResult, summary stats.Summary) error
}
