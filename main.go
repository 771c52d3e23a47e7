package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tamdao/mytask/api"
	"github.com/tamdao/mytask/assistant"
	"github.com/tamdao/mytask/config"
	"github.com/tamdao/mytask/llm"
	"github.com/tamdao/mytask/logging"
	"github.com/tamdao/mytask/policy"
	"github.com/tamdao/mytask/service"
	"github.com/tamdao/mytask/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, true)
	logger.Info().
		Int("port", cfg.Server.Port).
		Str("database", cfg.Database.DSN).
		Str("model", cfg.Groq.Model).
		Msg("starting mytask")

	db, err := store.NewSQLiteStore(cfg.Database.DSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer db.Close()

	var client llm.CompletionClient
	if cfg.Groq.Mock {
		logger.Warn().Msg("using mock completion client")
		client = llm.NewMockClient()
	} else {
		client = llm.NewClient(cfg.Groq.APIURL, cfg.Groq.APIKey, cfg.Groq.Model, cfg.Groq.Temperature, cfg.Groq.Timeout)
	}

	ctx := context.Background()
	policySource := policy.PolicyWithCeiling(cfg.Assistant.MaxTransaction)
	if cfg.Assistant.PolicyFile != "" {
		src, err := os.ReadFile(cfg.Assistant.PolicyFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.Assistant.PolicyFile).Msg("failed to read policy file")
		}
		policySource = string(src)
	}
	guard, err := policy.NewEngine(ctx, policySource)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize policy engine")
	}

	svc := service.New(db)

	ast := assistant.New(db, svc, client, guard, logger, assistant.Options{
		Configured:    cfg.Groq.Mock || cfg.Groq.APIKey != "",
		HistoryWindow: cfg.Assistant.HistoryWindow,
	})

	h := api.NewHandler(svc, ast, logger)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down gracefully")
	}

	logger.Info().Msg("stopped")
}
