package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ouss-AGC/oama-plateform/internal/model"
	"github.com/ouss-AGC/oama-plateform/internal/report"
	"github.com/ouss-AGC/oama-plateform/internal/repository"
	"github.com/ouss-AGC/oama-plateform/internal/response"
	"github.com/ouss-AGC/oama-plateform/internal/scoring"
	"github.com/ouss-AGC/oama-plateform/internal/service"
	"github.com/ouss-AGC/oama-plateform/internal/stats"
)

// ReportHandler serves the downloadable artifacts: CSV export, the ranked
// results list, individual reports and certificates.
type ReportHandler struct {
	sessionService *service.SessionService
	questionRepo   *repository.QuestionRepository
	renderer       report.Renderer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(sessionService *service.SessionService, questionRepo *repository.QuestionRepository, renderer report.Renderer) *ReportHandler {
	return &ReportHandler{
		sessionService: sessionService,
		questionRepo:   questionRepo,
		renderer:       renderer,
	}
}

func reportFilter(c *gin.Context) stats.Filter {
	return stats.Filter{
		Discipline: c.Query("discipline"),
		QuizType:   model.QuizType(c.DefaultQuery("type", string(model.QuizTypeAll))),
	}
}

// ExportCSV godoc
// GET /api/admin/export/csv?discipline=&type=
// Results table as CSV, ordered by matricule.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	results := stats.RankByMatricule(reportFilter(c).Apply(h.sessionService.Results()))

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, results); err != nil {
		log.Error().Err(err).Msg("export CSV impossible")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="resultats.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportList godoc
// GET /api/admin/export/list?discipline=&type=
// Full ranked results list as PDF.
func (h *ReportHandler) ExportList(c *gin.Context) {
	filter := reportFilter(c)
	all := h.sessionService.Results()
	ranked := stats.RankByMatricule(filter.Apply(all))
	summary := stats.Aggregate(all, filter)

	var buf bytes.Buffer
	if err := h.renderer.ResultsList(&buf, ranked, summary); err != nil {
		log.Error().Err(err).Msg("génération de la liste PDF impossible")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="liste_resultats.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// StudentReport godoc
// GET /api/admin/reports/:timestamp
// Individual correction report as PDF.
func (h *ReportHandler) StudentReport(c *gin.Context) {
	result, ok := h.findResult(c)
	if !ok {
		return
	}

	// Class context compares like with like: same discipline, same kind.
	classFilter := stats.Filter{Discipline: result.Discipline, QuizType: model.QuizTypeOfficial}
	if result.IsPractice {
		classFilter.QuizType = model.QuizTypePractice
	}
	class := stats.Aggregate(h.sessionService.Results(), classFilter)

	mode := model.QuizModeOfficial
	if result.IsPractice {
		mode = model.QuizModePractice
	}
	set, err := h.questionRepo.Get(result.Discipline, mode)
	if err != nil {
		// The report still renders without a correction section.
		log.Warn().Err(err).Str("discipline", result.Discipline).Msg("questionnaire indisponible pour la correction")
		set = nil
	}

	var buf bytes.Buffer
	if err := h.renderer.StudentReport(&buf, result, set, class); err != nil {
		log.Error().Err(err).Msg("génération du rapport PDF impossible")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="rapport_%s.pdf"`, safeName(result.Student.Name)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// Certificate godoc
// GET /api/certificates/:timestamp
// Formal certificate PDF, only for scores strictly above 15/20.
func (h *ReportHandler) Certificate(c *gin.Context) {
	result, ok := h.findResult(c)
	if !ok {
		return
	}

	if scoring.CertificateFor(result.ScoreOn20) != scoring.CertificateDownloadable {
		response.Fail(c, http.StatusForbidden, response.ErrNotEligible)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Certificate(&buf, result); err != nil {
		log.Error().Err(err).Msg("génération du certificat PDF impossible")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="certificat_%s.pdf"`, safeName(result.Student.Name)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *ReportHandler) findResult(c *gin.Context) (model.QuizResult, bool) {
	timestamp, err := strconv.ParseInt(c.Param("timestamp"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return model.QuizResult{}, false
	}

	result, err := h.sessionService.FindResult(timestamp)
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		} else {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return model.QuizResult{}, false
	}
	return result, true
}

func safeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}
