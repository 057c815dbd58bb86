package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/bauwerk-digital/contracts-tracker/internal/common"
	"github.com/bauwerk-digital/contracts-tracker/internal/ingest"
	"github.com/bauwerk-digital/contracts-tracker/internal/llm"
	"github.com/bauwerk-digital/contracts-tracker/internal/llm/ollama"
	"github.com/bauwerk-digital/contracts-tracker/internal/pipeline"
)

// analyze runs the extraction pipeline on a single file and prints the
// normalized contract as JSON. Useful for prompt tuning without the server.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: analyze <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg, err := common.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	doc := ingest.Document{
		FileName:    filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Content:     content,
	}

	client := ollama.NewClient(ollama.Config{
		BaseURL:     cfg.Ollama.BaseURL,
		Model:       cfg.Ollama.Model,
		Temperature: cfg.Ollama.Temperature,
		Timeout:     cfg.Ollama.Timeout,
	}, logger)

	var generator llm.Generator = client
	generator = llm.WithRetry(generator, cfg.Ollama.MaxRetries, time.Second, logger)

	analyzer := pipeline.NewAnalyzer(generator, pipeline.Config{Vision: cfg.Ollama.Vision}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Ollama.Timeout+30*time.Second)
	defer cancel()

	result, err := analyzer.Analyze(ctx, doc)
	if err != nil {
		logger.Error("analyze failed", "file", doc.FileName, "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
