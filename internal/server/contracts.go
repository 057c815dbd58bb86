package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bauwerk-digital/contracts-tracker/constants"
	"github.com/bauwerk-digital/contracts-tracker/internal/common"
	"github.com/bauwerk-digital/contracts-tracker/internal/export"
	"github.com/bauwerk-digital/contracts-tracker/internal/ingest"
	"github.com/bauwerk-digital/contracts-tracker/internal/middleware"
	"github.com/bauwerk-digital/contracts-tracker/internal/pipeline"
	"github.com/bauwerk-digital/contracts-tracker/internal/repository"
)

// maxUploadBytes caps uploads; contract documents are small text files.
const maxUploadBytes = 10 << 20

type ContractHandler struct {
	analyzer *pipeline.Analyzer
	repo     repository.ContractRepository
	exporter *export.Service
}

func NewContractHandler(analyzer *pipeline.Analyzer, repo repository.ContractRepository, exporter *export.Service) *ContractHandler {
	return &ContractHandler{analyzer: analyzer, repo: repo, exporter: exporter}
}

// analyzeJSONRequest is the non-multipart upload form: base64 or data-URL
// payload in a JSON body.
type analyzeJSONRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type"`
	Data        string `json:"data" binding:"required"`
}

// Analyze accepts an uploaded document (multipart "file" field, or a JSON
// body with a base64 payload), runs the extraction pipeline and stores the
// resulting contract.
func (h *ContractHandler) Analyze(c *gin.Context) {
	doc, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), doc)
	if err != nil {
		status, msg := mapAnalysisError(err)
		c.JSON(status, gin.H{"error": msg, "request_id": middleware.GetRequestID(c)})
		return
	}

	h.repo.Save(result.Contract)
	c.JSON(http.StatusCreated, result)
}

func readUpload(c *gin.Context) (ingest.Document, error) {
	contentType := c.ContentType()
	if contentType == "application/json" {
		var req analyzeJSONRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return ingest.Document{}, fmt.Errorf("invalid request body: %w", err)
		}
		content, err := ingest.DecodePayload(req.Data)
		if err != nil {
			return ingest.Document{}, err
		}
		return ingest.Document{
			FileName:    req.FileName,
			ContentType: req.ContentType,
			Content:     content,
		}, nil
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		return ingest.Document{}, errors.New("no file provided")
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		return ingest.Document{}, fmt.Errorf("file exceeds %d bytes", int64(maxUploadBytes))
	}
	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return ingest.Document{}, fmt.Errorf("read upload: %w", err)
	}
	return ingest.Document{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// mapAnalysisError translates the import failure taxonomy into per-kind
// HTTP responses instead of one generic analysis-failed message.
func mapAnalysisError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType, userMessage(err, "Dateiformat wird nicht unterstützt")
	case errors.Is(err, common.ErrDecodeFailure):
		return http.StatusBadRequest, "Datei konnte nicht gelesen werden"
	case errors.Is(err, common.ErrEmptyResponse):
		return http.StatusBadGateway, "Keine Antwort vom Analyse-Backend erhalten"
	case errors.Is(err, common.ErrBackend):
		return http.StatusBadGateway, "Analyse-Backend nicht erreichbar"
	case errors.Is(err, common.ErrMalformedOutput):
		return http.StatusUnprocessableEntity, "Analyse-Ergebnis konnte nicht verarbeitet werden"
	default:
		return http.StatusInternalServerError, "Analyse fehlgeschlagen"
	}
}

// userMessage prefers the descriptive message carried by an AppError.
func userMessage(err error, fallback string) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// List returns the working set, newest first, honoring q/status/risk/category
// query filters.
func (h *ContractHandler) List(c *gin.Context) {
	filter := repository.Filter{
		Query:    c.Query("q"),
		Status:   constants.ContractStatus(c.Query("status")),
		Risk:     constants.RiskLevel(c.Query("risk")),
		Category: constants.ContractCategory(c.Query("category")),
	}
	contracts := h.repo.List(filter, time.Now())
	c.JSON(http.StatusOK, gin.H{"contracts": contracts, "total": len(contracts)})
}

// Get returns a single contract by id.
func (h *ContractHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}
	contract, ok := h.repo.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "contract not found"})
		return
	}
	c.JSON(http.StatusOK, contract)
}

// Delete removes a contract from the working set.
func (h *ContractHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}
	if !h.repo.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "contract not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats returns the dashboard aggregation.
func (h *ContractHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.Stats(time.Now()))
}

// Export streams the filtered contract list as an XLSX attachment.
func (h *ContractHandler) Export(c *gin.Context) {
	filter := repository.Filter{
		Query:    c.Query("q"),
		Status:   constants.ContractStatus(c.Query("status")),
		Risk:     constants.RiskLevel(c.Query("risk")),
		Category: constants.ContractCategory(c.Query("category")),
	}
	data, err := h.exporter.ExportContractsXLSX(filter, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	filename := "vertraege-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
