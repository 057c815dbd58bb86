package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bauwerk-digital/contracts-tracker/internal/common"
	"github.com/bauwerk-digital/contracts-tracker/internal/llm"
)

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Images  []string        `json:"images,omitempty"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float32 `json:"temperature"`
}

type generateResponse struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

// Generate implements llm.Generator against the Ollama /api/generate
// endpoint. The call is one blocking request/response exchange: streaming is
// explicitly disabled and the whole completion arrives in a single body.
func (c *Client) Generate(ctx context.Context, req llm.GenerateRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.generate.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"prompt_len", len(req.Prompt),
		"images", len(req.Images),
	)

	body := generateRequest{
		Model:   c.cfg.Model,
		Prompt:  req.Prompt,
		Stream:  false,
		Images:  req.Images,
		Options: generateOptions{Temperature: c.cfg.Temperature},
	}
	bs, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bs))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Error("llm.generate.send_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("BACKEND_ERROR", "request failed", fmt.Errorf("%w: %w", common.ErrBackend, err))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("llm.generate.body_close_error", "req_id", rid, "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("llm.generate.read_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("BACKEND_ERROR", "response body read failed", fmt.Errorf("%w: %w", common.ErrBackend, err))
	}

	c.log.Info("llm.generate.response",
		"req_id", rid,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return "", common.BackendError(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", common.NewAppError("BACKEND_ERROR", "undecodable response body", fmt.Errorf("%w: %w", common.ErrBackend, err))
	}
	if strings.TrimSpace(gr.Response) == "" {
		return "", common.NewAppError("EMPTY_RESPONSE", "backend returned no text", common.ErrEmptyResponse)
	}
	return gr.Response, nil
}
