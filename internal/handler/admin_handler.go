package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ouss-AGC/oama-plateform/internal/model"
	"github.com/ouss-AGC/oama-plateform/internal/repository"
	"github.com/ouss-AGC/oama-plateform/internal/response"
	"github.com/ouss-AGC/oama-plateform/internal/service"
	"github.com/ouss-AGC/oama-plateform/internal/stats"
)

// AdminHandler serves the instructor dashboard: session control, the live
// snapshot, result lookup and statistics.
type AdminHandler struct {
	sessionService *service.SessionService
	questionRepo   *repository.QuestionRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(sessionService *service.SessionService, questionRepo *repository.QuestionRepository) *AdminHandler {
	return &AdminHandler{sessionService: sessionService, questionRepo: questionRepo}
}

// GeneratePin godoc
// POST /api/admin/generate-pin
// Opens a fresh session under a new PIN, discarding the previous one.
func (h *AdminHandler) GeneratePin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pin": h.sessionService.GeneratePin()})
}

// Session godoc
// GET /api/admin/session
// Live session snapshot for the dashboard.
func (h *AdminHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.Status())
}

// StartQuiz godoc
// POST /api/admin/start-quiz
// Launches the quiz for every waiting participant.
func (h *AdminHandler) StartQuiz(c *gin.Context) {
	if err := h.sessionService.StartQuiz(); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrNoActiveSession)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GenerateTestData godoc
// POST /api/admin/generate-test-data
// Injects synthetic results for dashboard and export rehearsal.
func (h *AdminHandler) GenerateTestData(c *gin.Context) {
	count := h.sessionService.GenerateTestData()
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// Result godoc
// GET /api/admin/results/:timestamp
// One submission by its timestamp identifier.
func (h *AdminHandler) Result(c *gin.Context) {
	timestamp, err := strconv.ParseInt(c.Param("timestamp"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	result, err := h.sessionService.FindResult(timestamp)
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Stats godoc
// GET /api/admin/stats?discipline=...&type=official|practice|all
// Aggregated figures, the completion-time distribution and, when a single
// discipline is selected, the per-question difficulty ranking.
func (h *AdminHandler) Stats(c *gin.Context) {
	filter := stats.Filter{
		Discipline: c.Query("discipline"),
		QuizType:   model.QuizType(c.DefaultQuery("type", string(model.QuizTypeAll))),
	}

	results := h.sessionService.Results()
	kept := filter.Apply(results)

	body := gin.H{
		"summary":          stats.Aggregate(results, filter),
		"timeDistribution": stats.TimeDistribution(kept, []int{0, 600, 1200, 1800, 2400, 3000, 3600}),
	}

	// Difficulty only makes sense against one question set at a time.
	if filter.Discipline != "" {
		if set, err := h.questionRepo.Get(filter.Discipline, model.QuizModeOfficial); err == nil {
			body["questionDifficulty"] = stats.QuestionDifficulty(kept, set)
		}
	}

	c.JSON(http.StatusOK, body)
}
