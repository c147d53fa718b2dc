// The worker runs the monthly schedule tick: at startup and then at the
// start of every month it triggers a full-portfolio generation run as the
// system scheduler actor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fiscalis/internal/application/generation/services"
	"fiscalis/internal/application/generation/usecases"
	"fiscalis/internal/infrastructure/config"
	"fiscalis/internal/infrastructure/database"
	"fiscalis/internal/infrastructure/repository"
	"fiscalis/internal/shared/biztime"
	"fiscalis/internal/shared/db"
	"fiscalis/internal/shared/goroutine"
	"fiscalis/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting generation worker", "environment", env)

	if err := biztime.Init(cfg.Generation.Timezone); err != nil {
		log.Fatalw("failed to initialize timezone", "error", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	businessRepo := repository.NewBusinessProfileRepository(database.Get())
	calendarRepo := repository.NewCalendarEntryRepository(database.Get(), log)
	obligationRepo := repository.NewObligationRepository(database.Get())
	auditRepo := repository.NewAuditLogRepository(database.Get())
	txManager := db.NewTransactionManager(database.Get())

	guard := services.NewDuplicateGuard(obligationRepo, log)
	synthesizer := usecases.NewSynthesizeObligationsUseCase(guard, log)
	runUC := usecases.NewRunGenerationUseCase(
		businessRepo, calendarRepo, obligationRepo, synthesizer, txManager, log)
	tickUC := usecases.NewScheduleTickUseCase(runUC, auditRepo, cfg.Generation.WindowMonths, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	runTick := func() {
		goroutine.SafeGo(log, "schedule-tick", func() {
			summary, err := tickUC.Execute(ctx)
			if err != nil {
				log.Errorw("schedule tick failed", "error", err)
				return
			}
			if summary == nil {
				return
			}
			log.Infow("schedule tick completed",
				"run_id", summary.RunID,
				"businesses_considered", summary.BusinessesConsidered,
				"obligations_created", summary.ObligationsCreated,
				"duplicates_skipped", summary.DuplicatesSkipped)
		})
	}

	log.Infow("running initial generation tick")
	runTick()

	for {
		nextTick := biztime.StartOfNextMonthUTC(biztime.NowUTC())
		timer := time.NewTimer(time.Until(nextTick))

		log.Infow("next generation tick scheduled", "at", nextTick)

		select {
		case <-timer.C:
			runTick()
		case sig := <-sigChan:
			timer.Stop()
			log.Infow("received signal, shutting down", "signal", sig)
			cancel()
			return
		}
	}
}
