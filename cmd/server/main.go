package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/claims-copilot/backend/internal/config"
	"github.com/claims-copilot/backend/internal/fixtures"
	httpapi "github.com/claims-copilot/backend/internal/http"
	"github.com/claims-copilot/backend/internal/models"
	"github.com/claims-copilot/backend/internal/registry"
	"github.com/claims-copilot/backend/internal/session"
	"github.com/claims-copilot/backend/internal/simulate"
	"github.com/claims-copilot/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "claims-copilot").Logger()

	ctx := context.Background()

	var st store.CaseStore
	if cfg.DatabaseURL == "" {
		st = store.NewMemory(
			fixtures.Cases(),
			fixtures.KnowledgeItems(),
			fixtures.PolicyDocuments(),
			fixtures.PolicyChanges(),
			fixtures.AnalyticsData(),
		)
		logger.Info().Msg("using in-memory fixture store")
	} else {
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect db")
		}
		st = pg
	}
	defer st.Close()

	cases, err := st.ListCases(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load cases")
	}

	sessions := session.NewRegistry(cfg.SessionTTL)
	reg := registry.New(cases)
	reg.Subscribe(func(c *models.Case) {
		if c == nil {
			logger.Info().Msg("case selection cleared")
			return
		}
		logger.Info().Str("case_id", c.ID).Str("case_number", c.CaseNumber).Msg("active case changed")
	})
	runner := simulate.NewRunner(cfg.SimulationDelay)

	router := httpapi.Router(cfg, st, sessions, reg, runner, logger)

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     router,
		ReadTimeout: cfg.RequestTimeout,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
