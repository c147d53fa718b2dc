package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"fiscalis/internal/application/generation/services"
	"fiscalis/internal/application/generation/usecases"
	"fiscalis/internal/infrastructure/actors"
	"fiscalis/internal/infrastructure/config"
	"fiscalis/internal/infrastructure/database"
	"fiscalis/internal/infrastructure/repository"
	httpRouter "fiscalis/internal/interfaces/http"
	"fiscalis/internal/shared/biztime"
	"fiscalis/internal/shared/db"
	"fiscalis/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the obligation engine HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := biztime.Init(cfg.Generation.Timezone); err != nil {
		return fmt.Errorf("failed to initialize timezone: %w", err)
	}

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	log := logger.NewLogger()

	businessRepo := repository.NewBusinessProfileRepository(database.Get())
	calendarRepo := repository.NewCalendarEntryRepository(database.Get(), log)
	obligationRepo := repository.NewObligationRepository(database.Get())
	auditRepo := repository.NewAuditLogRepository(database.Get())
	txManager := db.NewTransactionManager(database.Get())
	actorResolver := actors.NewConfigResolver(cfg.Generation.AdminActors)

	guard := services.NewDuplicateGuard(obligationRepo, log)
	synthesizer := usecases.NewSynthesizeObligationsUseCase(guard, log)
	runUC := usecases.NewRunGenerationUseCase(
		businessRepo, calendarRepo, obligationRepo, synthesizer, txManager, log)

	windowMonths := cfg.Generation.WindowMonths
	runManualUC := usecases.NewRunManualGenerationUseCase(runUC, auditRepo, actorResolver, windowMonths, log)
	newBusinessUC := usecases.NewGenerateForNewBusinessUseCase(runUC, auditRepo, actorResolver, windowMonths, log)
	catalogChangeUC := usecases.NewRegenerateOnCatalogChangeUseCase(
		runUC, obligationRepo, auditRepo, actorResolver, windowMonths, log)

	router := httpRouter.NewRouter(&cfg.Server, database.Get(), runManualUC, newBusinessUC, catalogChangeUC, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
