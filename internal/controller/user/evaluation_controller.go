package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikeconel/windrush-insights/internal/dto"
	"github.com/mikeconel/windrush-insights/internal/service"
	"github.com/rs/zerolog/log"
)

type EvaluationController struct {
	submissionService service.SubmissionService
	questionService   service.QuestionService
	dashboardService  service.DashboardService
}

func NewEvaluationController(
	submissionService service.SubmissionService,
	questionService service.QuestionService,
	dashboardService service.DashboardService,
) *EvaluationController {
	return &EvaluationController{
		submissionService: submissionService,
		questionService:   questionService,
		dashboardService:  dashboardService,
	}
}

// SubmitEvaluation godoc
// @Summary Submit a completed evaluation form
// @Description Stores the participant profile and all answers atomically and marks the session completed.
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param submission body dto.SubmissionDTO true "Participant demographics and answers"
// @Success 201 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /evaluations [post]
func (c *EvaluationController) SubmitEvaluation(ctx *gin.Context) {
	var req dto.SubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitEvaluation: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.submissionService.Submit(req)
	if err != nil {
		log.Error().Err(err).Msg("SubmitEvaluation: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store evaluation", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetParticipantAnswers godoc
// @Summary Get the stored answers of one participant
// @Description Returns the flat question/answer listing for a submitted evaluation, keyed by its session key.
// @Tags Evaluations
// @Produce json
// @Param session_key path string true "Session key returned by the submission"
// @Success 200 {array} dto.ParticipantAnswerDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /evaluations/{session_key}/answers [get]
func (c *EvaluationController) GetParticipantAnswers(ctx *gin.Context) {
	sessionKey := ctx.Param("session_key")
	answers, err := c.submissionService.ParticipantAnswers(sessionKey)
	if err != nil {
		log.Warn().Err(err).Str("sessionKey", sessionKey).Msg("GetParticipantAnswers: Not found")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Evaluation session not found"})
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// ListQuestions godoc
// @Summary List the active survey questions
// @Description Returns the active form definition in section order for rendering the evaluation form.
// @Tags Questions
// @Produce json
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (c *EvaluationController) ListQuestions(ctx *gin.Context) {
	questions, err := c.questionService.ListActive()
	if err != nil {
		log.Error().Err(err).Msg("ListQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetOverview godoc
// @Summary Public dashboard overview
// @Description Returns the unauthenticated aggregate view: completed session count and most frequent feedback terms.
// @Tags Overview
// @Produce json
// @Success 200 {object} dto.OverviewDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /overview [get]
func (c *EvaluationController) GetOverview(ctx *gin.Context) {
	overview, err := c.dashboardService.Overview(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("GetOverview: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute overview", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, overview)
}
