package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikeconel/windrush-insights/internal/dto"
	"github.com/mikeconel/windrush-insights/internal/service"
	"github.com/rs/zerolog/log"
)

// sessionIDKey is where the auth middleware stores the verified session id.
const sessionIDKey = "adminSessionID"

// dateLayout is the query-parameter date format; an end date covers its whole
// day.
const dateLayout = "2006-01-02"

type DashboardController struct {
	authService      service.AuthService
	dashboardService service.DashboardService
	dateRangeService service.DateRangeService
	geocodingService service.GeocodingService
	exportService    service.ExportService
	questionService  service.QuestionService
}

func NewDashboardController(
	authService service.AuthService,
	dashboardService service.DashboardService,
	dateRangeService service.DateRangeService,
	geocodingService service.GeocodingService,
	exportService service.ExportService,
	questionService service.QuestionService,
) *DashboardController {
	return &DashboardController{
		authService:      authService,
		dashboardService: dashboardService,
		dateRangeService: dateRangeService,
		geocodingService: geocodingService,
		exportService:    exportService,
		questionService:  questionService,
	}
}

// AuthMiddleware verifies the Bearer token and stores the session id for the
// handlers behind it.
func (c *DashboardController) AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}
		sessionID, err := c.authService.Verify(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired session"})
			return
		}
		ctx.Set(sessionIDKey, sessionID)
		ctx.Next()
	}
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the shared admin password for a session token.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Admin password"
// @Success 200 {object} dto.TokenDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Incorrect password"
// @Router /admin/login [post]
func (c *DashboardController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	token, err := c.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			log.Warn().Str("clientIP", ctx.ClientIP()).Msg("Admin login rejected")
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Incorrect password"})
			return
		}
		log.Error().Err(err).Msg("Login: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to issue session", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, token)
}

// Logout godoc
// @Summary Admin logout
// @Description Ends the admin session and drops its cached dashboard data.
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Router /admin/logout [post]
func (c *DashboardController) Logout(ctx *gin.Context) {
	c.dashboardService.EndSession(ctx.Request.Context(), ctx.GetString(sessionIDKey))
	ctx.Status(http.StatusNoContent)
}

// GetInsights godoc
// @Summary Full private dashboard document
// @Description Computes every chart and metric for the requested date range. Missing bounds fall back to the observed data bounds.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.InsightsDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed date parameter"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/insights [get]
func (c *DashboardController) GetInsights(ctx *gin.Context) {
	start, end, err := parseRangeParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	insights, err := c.dashboardService.Insights(ctx.Request.Context(), ctx.GetString(sessionIDKey), start, end)
	if err != nil {
		log.Error().Err(err).Msg("GetInsights: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute insights", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, insights)
}

// Refresh godoc
// @Summary Recompute everything from current data
// @Description Drops the cached date-range bounds, the public cache tier and this session's private tier.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Router /admin/refresh [post]
func (c *DashboardController) Refresh(ctx *gin.Context) {
	c.dashboardService.Refresh(ctx.Request.Context(), ctx.GetString(sessionIDKey))
	ctx.Status(http.StatusNoContent)
}

// GetGeoData godoc
// @Summary Participant density heatmap data
// @Description Geocodes the distinct postcodes in range and returns one point per postcode with its participant count.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.GeoDataDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed date parameter"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/geodata [get]
func (c *DashboardController) GetGeoData(ctx *gin.Context) {
	start, end, err := parseRangeParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	rng, err := c.dateRangeService.Resolve(start, end)
	if err != nil {
		log.Error().Err(err).Msg("GetGeoData: Range resolution failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to resolve date range", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, c.geocodingService.GeoData(ctx.Request.Context(), rng))
}

// ExportData godoc
// @Summary Download the raw dataset
// @Description Streams an XLSX workbook with every participant and response on record.
// @Tags Admin - Dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/export [get]
func (c *DashboardController) ExportData(ctx *gin.Context) {
	workbook, err := c.exportService.FullDataset()
	if err != nil {
		log.Error().Err(err).Msg("ExportData: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to build export", Details: []string{err.Error()}})
		return
	}
	filename := fmt.Sprintf("evaluations_%s.xlsx", time.Now().Format(dateLayout))
	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

// CreateQuestion godoc
// @Summary Add a survey question
// @Description Adds a new prompt to the evaluation form.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateDTO true "Question definition"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question definition"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Router /admin/questions [post]
func (c *DashboardController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateQuestion: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary Update a survey question
// @Description Modifies an existing prompt, e.g. to reword it or deactivate it.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "Updated question definition"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or question definition"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [put]
func (c *DashboardController) UpdateQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.UpdateQuestion(uint(id), req)
	if err != nil {
		log.Warn().Err(err).Uint64("id", id).Msg("UpdateQuestion: Service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Failed to update question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// parseRangeParams reads the optional start/end query parameters. The end
// date is widened to the last instant of its day so the day's submissions are
// included.
func parseRangeParams(ctx *gin.Context) (start, end *time.Time, err error) {
	if s := ctx.Query("start"); s != "" {
		t, parseErr := time.Parse(dateLayout, s)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", s)
		}
		start = &t
	}
	if e := ctx.Query("end"); e != "" {
		t, parseErr := time.Parse(dateLayout, e)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", e)
		}
		endOfDay := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &endOfDay
	}
	return start, end, nil
}
