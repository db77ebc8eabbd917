package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ouss-AGC/oama-plateform/internal/config"
	"github.com/ouss-AGC/oama-plateform/internal/handler"
	"github.com/ouss-AGC/oama-plateform/internal/middleware"
	"github.com/ouss-AGC/oama-plateform/internal/response"
	"github.com/ouss-AGC/oama-plateform/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth   *handler.AuthHandler
	Quiz   *handler.QuizHandler
	Admin  *handler.AdminHandler
	Report *handler.ReportHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Metrics())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", middleware.PrometheusHandler())

	// ─── Student surface (PIN-gated, no auth) ──────────────────────────
	api := router.Group("/api")
	{
		api.POST("/validate-pin", handlers.Quiz.ValidatePin)
		api.POST("/join-session", handlers.Quiz.JoinSession)
		api.GET("/quiz-status", handlers.Quiz.QuizStatus)
		api.POST("/submit-quiz", handlers.Quiz.SubmitQuiz)
		api.GET("/quiz-data/:discipline", handlers.Quiz.QuizData)

		// Certificates are fetched from the student result screen, where no
		// admin token exists; eligibility is enforced by score instead.
		api.GET("/certificates/:timestamp", handlers.Report.Certificate)
	}

	// ─── Admin surface ─────────────────────────────────────────────────
	admin := router.Group("/api/admin")
	admin.POST("/login", handlers.Auth.AdminLogin)

	protected := admin.Group("")
	protected.Use(middleware.RequireAdminJWT(authService))
	{
		protected.POST("/generate-pin", handlers.Admin.GeneratePin)
		protected.GET("/session", handlers.Admin.Session)
		protected.POST("/start-quiz", handlers.Admin.StartQuiz)
		protected.POST("/generate-test-data", handlers.Admin.GenerateTestData)
		protected.GET("/results/:timestamp", handlers.Admin.Result)
		protected.GET("/stats", handlers.Admin.Stats)

		protected.GET("/export/csv", handlers.Report.ExportCSV)
		protected.GET("/export/list", handlers.Report.ExportList)
		protected.GET("/reports/:timestamp", handlers.Report.StudentReport)
	}

	return router
}
