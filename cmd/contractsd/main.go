package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bauwerk-digital/contracts-tracker/internal/common"
	"github.com/bauwerk-digital/contracts-tracker/internal/export"
	"github.com/bauwerk-digital/contracts-tracker/internal/llm"
	"github.com/bauwerk-digital/contracts-tracker/internal/llm/ollama"
	"github.com/bauwerk-digital/contracts-tracker/internal/pipeline"
	"github.com/bauwerk-digital/contracts-tracker/internal/repository"
	"github.com/bauwerk-digital/contracts-tracker/internal/server"
)

func main() {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := common.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := common.InitLogger(cfg.Log)
	logger.Info("configuration loaded",
		"addr", cfg.Server.Addr,
		"ollama_url", cfg.Ollama.BaseURL,
		"model", cfg.Ollama.Model,
		"vision", cfg.Ollama.Vision,
		"auth_enabled", cfg.Auth.JWTSecret != "",
	)

	client := ollama.NewClient(ollama.Config{
		BaseURL:     cfg.Ollama.BaseURL,
		Model:       cfg.Ollama.Model,
		Temperature: cfg.Ollama.Temperature,
		Timeout:     cfg.Ollama.Timeout,
	}, logger)

	var generator llm.Generator = client
	generator = llm.WithRetry(generator, cfg.Ollama.MaxRetries, time.Second, logger)

	analyzer := pipeline.NewAnalyzer(generator, pipeline.Config{Vision: cfg.Ollama.Vision}, logger)
	repo := repository.NewMemoryRepository(cfg.Store.MaxContracts, logger)
	exporter := export.NewService(repo, logger)

	contracts := server.NewContractHandler(analyzer, repo, exporter)

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(contracts, &cfg.Auth)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
