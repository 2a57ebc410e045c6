package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikeconel/windrush-insights/config"
	"github.com/mikeconel/windrush-insights/database"
	_ "github.com/mikeconel/windrush-insights/docs" // Swagger docs - auto-generated
	"github.com/mikeconel/windrush-insights/internal/cache"
	adminctrl "github.com/mikeconel/windrush-insights/internal/controller/admin"
	userctrl "github.com/mikeconel/windrush-insights/internal/controller/user"
	"github.com/mikeconel/windrush-insights/internal/logger"
	"github.com/mikeconel/windrush-insights/internal/model"
	"github.com/mikeconel/windrush-insights/internal/repository"
	"github.com/mikeconel/windrush-insights/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Windrush Insights API
// @version 1.0
// @description Event evaluation intake and analytics dashboard for Windrush Foundation events.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			cache.New,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewParticipantRepository,
			repository.NewQuestionRepository,
			repository.NewResponseRepository,
			repository.NewSessionRepository,
			repository.NewLocationRepository,
		),

		fx.Provide(
			service.NewDateRangeService,
			service.NewAnalyticsService,
			service.NewDashboardService,
			service.NewSubmissionService,
			service.NewQuestionService,
			service.NewAuthService,
			service.NewGeocodingService,
			service.NewExportService,
		),

		fx.Provide(
			adminctrl.NewDashboardController,
			userctrl.NewEvaluationController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	dashboardCtrl *adminctrl.DashboardController,
	evaluationCtrl *userctrl.EvaluationController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/evaluations", evaluationCtrl.SubmitEvaluation)
		api.GET("/evaluations/:session_key/answers", evaluationCtrl.GetParticipantAnswers)
		api.GET("/questions", evaluationCtrl.ListQuestions)
		api.GET("/overview", evaluationCtrl.GetOverview)

		admin := api.Group("/admin")
		admin.POST("/login", dashboardCtrl.Login)

		authed := admin.Group("", dashboardCtrl.AuthMiddleware())
		authed.POST("/logout", dashboardCtrl.Logout)
		authed.GET("/insights", dashboardCtrl.GetInsights)
		authed.POST("/refresh", dashboardCtrl.Refresh)
		authed.GET("/geodata", dashboardCtrl.GetGeoData)
		authed.GET("/export", dashboardCtrl.ExportData)
		authed.POST("/questions", dashboardCtrl.CreateQuestion)
		authed.PUT("/questions/:id", dashboardCtrl.UpdateQuestion)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Windrush Insights API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Participant{},
		&model.Question{},
		&model.Response{},
		&model.EvaluationSession{},
		&model.Location{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
