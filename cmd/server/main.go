package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/ouss-AGC/oama-plateform/internal/config"
	"github.com/ouss-AGC/oama-plateform/internal/handler"
	"github.com/ouss-AGC/oama-plateform/internal/logger"
	"github.com/ouss-AGC/oama-plateform/internal/middleware"
	"github.com/ouss-AGC/oama-plateform/internal/report"
	"github.com/ouss-AGC/oama-plateform/internal/repository"
	"github.com/ouss-AGC/oama-plateform/internal/router"
	"github.com/ouss-AGC/oama-plateform/internal/service"
	"github.com/ouss-AGC/oama-plateform/internal/store"
	"github.com/ouss-AGC/oama-plateform/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	zlog.Logger = log
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Démarrage de la plateforme OAMA")

	// ─── Initialize Validator & Metrics ───────────────────────────────
	validator.Setup()
	middleware.InitMetrics()

	// ─── Initialize Repositories & Store ──────────────────────────────
	sessionStore := store.NewSessionStore()
	questionRepo := repository.NewQuestionRepository(cfg.QuizDataDir)

	// ─── Initialize Services ──────────────────────────────────────────
	authService, err := service.NewAuthService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialisation de l'authentification impossible")
	}
	sessionService := service.NewSessionService(sessionStore)

	renderer := report.NewPDFRenderer(cfg.InstructorName, cfg.InstructorTitle)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Quiz:   handler.NewQuizHandler(cfg, sessionService, questionRepo),
		Admin:  handler.NewAdminHandler(sessionService, questionRepo),
		Report: handler.NewReportHandler(sessionService, questionRepo, renderer),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// Session state is in-memory only; nothing to flush.
	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
