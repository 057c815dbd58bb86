package ollama

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the Ollama client. Defaults target a locally hosted instance.
type Config struct {
	BaseURL     string        // default http://localhost:11434
	Model       string        // default gpt-oss:120b
	Temperature float32       // pinned low for near-deterministic JSON output
	Timeout     time.Duration // http client timeout
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-oss:120b"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}
