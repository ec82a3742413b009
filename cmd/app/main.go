package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/avenwood/questscribe/internal/analysis"
	"github.com/avenwood/questscribe/internal/config"
	"github.com/avenwood/questscribe/internal/database"
	"github.com/avenwood/questscribe/internal/database/postgres"
	"github.com/avenwood/questscribe/internal/event"
	"github.com/avenwood/questscribe/internal/handler"
	"github.com/avenwood/questscribe/internal/journal"
	"github.com/avenwood/questscribe/internal/logger"
	"github.com/avenwood/questscribe/internal/progression"
	"github.com/avenwood/questscribe/internal/quest"
	"github.com/avenwood/questscribe/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		false,
	))
	handler.InitValidator()

	pool, err := database.NewPool(
		cfg.GetDBConnString(),
		cfg.DBMaxConns,
		cfg.DBMaxConnIdleTime,
		cfg.DBMaxConnLifetime,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(pool); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	characterRepo := postgres.NewCharacterRepository(pool)
	journalRepo := postgres.NewJournalRepository(pool)
	questRepo := postgres.NewQuestRepository(pool)

	bus := event.NewResilientPublisher(
		event.NewMemoryBus(),
		event.DefaultResilientConfig(cfg.EventDeadLetterPath),
	)

	client := analysis.NewClient(cfg.AnalysisURL, cfg.AnalysisModel, cfg.AnalysisTimeout)
	analyzer := analysis.NewCachingProvider(client, cfg.AnalysisCacheSize, cfg.AnalysisCacheTTL)

	engine := progression.NewEngine()
	scoring := quest.DefaultScoring()
	selector := quest.NewSelector(scoring)
	scorer := quest.NewScorer(scoring)

	journalService := journal.NewService(characterRepo, journalRepo, analyzer, client, engine, selector, bus)
	questService := quest.NewService(characterRepo, questRepo, client, engine, scorer, bus)

	srv := server.NewServer(cfg.Port, pool, journalService, questService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	case <-ctx.Done():
		slog.Default().Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Default().Error("Server shutdown failed", "error", err)
	}
	if err := bus.Shutdown(shutdownCtx); err != nil {
		slog.Default().Error("Event publisher shutdown incomplete", "error", err)
	}
}
