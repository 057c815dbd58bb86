package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/bauwerk-digital/contracts-tracker/constants"
	"github.com/bauwerk-digital/contracts-tracker/internal/entity"
	"github.com/bauwerk-digital/contracts-tracker/internal/ingest"
	"github.com/bauwerk-digital/contracts-tracker/internal/llm"
)

// Config holds behavior flags for the analysis pipeline.
type Config struct {
	// Vision sends PDFs and images to the backend as base64 payloads
	// instead of rejecting them. Requires a vision-capable model.
	Vision bool
}

// Analyzer runs the import pipeline: read file, build prompt, call the
// extraction backend, normalize the response into a Contract. One
// sequential chain per import; every hard failure aborts the whole
// operation and no partial record is produced.
type Analyzer struct {
	logger    *slog.Logger
	cfg       Config
	generator llm.Generator
}

func NewAnalyzer(generator llm.Generator, cfg Config, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger, cfg: cfg, generator: generator}
}

// Result is the outcome of one successful import.
type Result struct {
	Contract       entity.Contract `json:"contract"`
	Classification Classification  `json:"classification"`
}

// Analyze processes one uploaded document end to end.
func (a *Analyzer) Analyze(ctx context.Context, doc ingest.Document) (Result, error) {
	start := time.Now()
	a.logger.Info("pipeline.analyze.start",
		"file", doc.FileName,
		"content_type", doc.ContentType,
		"size", len(doc.Content),
		"vision", a.cfg.Vision,
	)

	req, err := a.buildRequest(doc)
	if err != nil {
		a.logger.Error("pipeline.analyze.read_failed", "file", doc.FileName, "error", err)
		return Result{}, err
	}

	response, err := a.generator.Generate(ctx, req)
	if err != nil {
		a.logger.Error("pipeline.analyze.generate_failed",
			"file", doc.FileName,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, err
	}

	contract, classification, err := Normalize(response, doc.FileName, time.Now(), a.logger)
	if err != nil {
		a.logger.Error("pipeline.analyze.normalize_failed",
			"file", doc.FileName,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, err
	}

	a.logger.Info("pipeline.analyze.ok",
		"file", doc.FileName,
		"contract_id", contract.ID,
		"contract_type", contract.ContractType,
		"category", contract.Category,
		"match", classification.Match,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Contract: contract, Classification: classification}, nil
}

// buildRequest chooses the text or vision path for the document. With a
// text-only backend PDFs are rejected before any network call; with a
// vision model PDFs and images travel base64-encoded.
func (a *Analyzer) buildRequest(doc ingest.Document) (llm.GenerateRequest, error) {
	if a.cfg.Vision && (doc.IsPDF() || constants.IsImageExt(doc.Ext())) {
		return llm.GenerateRequest{
			Prompt: llm.BuildVisionPrompt(),
			Images: []string{ingest.ReadBase64(doc)},
		}, nil
	}

	text, err := ingest.ReadText(doc)
	if err != nil {
		return llm.GenerateRequest{}, err
	}
	return llm.GenerateRequest{Prompt: llm.BuildExtractionPrompt(text)}, nil
}
