package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ouss-AGC/oama-plateform/internal/config"
	"github.com/ouss-AGC/oama-plateform/internal/middleware"
	"github.com/ouss-AGC/oama-plateform/internal/model"
	"github.com/ouss-AGC/oama-plateform/internal/repository"
	"github.com/ouss-AGC/oama-plateform/internal/response"
	"github.com/ouss-AGC/oama-plateform/internal/service"
	"github.com/ouss-AGC/oama-plateform/internal/validator"
)

// QuizHandler serves the student-facing endpoints: the PIN gate, the waiting
// room, question delivery and result intake.
type QuizHandler struct {
	cfg            *config.Config
	sessionService *service.SessionService
	questionRepo   *repository.QuestionRepository
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(cfg *config.Config, sessionService *service.SessionService, questionRepo *repository.QuestionRepository) *QuizHandler {
	return &QuizHandler{
		cfg:            cfg,
		sessionService: sessionService,
		questionRepo:   questionRepo,
	}
}

// ValidatePin godoc
// POST /api/validate-pin
// Checks a student-entered PIN against the live session. The failure body
// carries valid:false because the PIN screen checks the flag, not the status.
func (h *QuizHandler) ValidatePin(c *gin.Context) {
	var req model.ValidatePinRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	switch err := h.sessionService.ValidatePin(req.Pin); {
	case errors.Is(err, service.ErrNoActiveSession):
		response.Fail(c, http.StatusBadRequest, response.ErrNoActiveSession)
	case errors.Is(err, service.ErrInvalidPin):
		response.FailPin(c, http.StatusUnauthorized, response.ErrInvalidPin)
	default:
		c.JSON(http.StatusOK, gin.H{"valid": true})
	}
}

// JoinSession godoc
// POST /api/join-session
// Registers a student in the waiting room. Rejoining with the same matricule
// succeeds without duplicating the participant.
func (h *QuizHandler) JoinSession(c *gin.Context) {
	var req model.JoinSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.sessionService.JoinSession(req.Student.Participant()); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrNoActiveSession)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// QuizStatus godoc
// GET /api/quiz-status
// The waiting room polls this until started flips to true.
func (h *QuizHandler) QuizStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"started": h.sessionService.QuizStarted()})
}

// SubmitQuiz godoc
// POST /api/submit-quiz
// Records a finished attempt. Intake never fails from the student's point of
// view: a malformed body is logged and still acknowledged, so nobody loses
// their submission screen at the end of an exam.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var result model.QuizResult
	if err := c.ShouldBindJSON(&result); err != nil {
		log.Warn().Err(err).Msg("corps de soumission illisible, résultat ignoré")
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	h.sessionService.SubmitResult(result)
	middleware.CountSubmission(result.Discipline)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// QuizData godoc
// GET /api/quiz-data/:discipline?mode=practice
// Delivers the question set and the fixed time budget for one discipline.
func (h *QuizHandler) QuizData(c *gin.Context) {
	discipline := c.Param("discipline")
	mode := model.QuizModeOfficial
	if c.Query("mode") == string(model.QuizModePractice) {
		mode = model.QuizModePractice
	}

	set, err := h.questionRepo.Get(discipline, mode)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionSetNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrQuestionSetNotFound)
			return
		}
		log.Error().Err(err).Str("discipline", discipline).Msg("chargement du questionnaire impossible")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":     set.Title,
		"timeLimit": h.cfg.TimeLimitFor(discipline),
		"questions": set.Questions,
	})
}
