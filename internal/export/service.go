package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bauwerk-digital/contracts-tracker/internal/entity"
	"github.com/bauwerk-digital/contracts-tracker/internal/repository"
)

// SheetName is the worksheet the contract list lands on.
const SheetName = "Verträge"

// Service produces XLSX bytes for contract-list exports.
type Service struct {
	repo   repository.ContractRepository
	logger *slog.Logger
}

func NewService(repo repository.ContractRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportContractsXLSX returns an XLSX workbook with one row per contract
// matching the filter.
func (s *Service) ExportContractsXLSX(filter repository.Filter, now time.Time) ([]byte, error) {
	start := time.Now()
	contracts := s.repo.List(filter, now)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("export.xlsx.close_error", "error", err)
		}
	}()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{
		"Titel",
		"Vertragspartner",
		"Kategorie",
		"Vertragstyp",
		"Status",
		"Wert",
		"Währung",
		"Beginn",
		"Ende",
		"Kündigungsfrist",
		"Risiko",
		"Tags",
		"Zusammenfassung",
		"Datei",
		"Hochgeladen am",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}

	for row, c := range contracts {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row+2)
			_ = f.SetCellValue(SheetName, cell, v)
		}

		write(1, c.Title)
		write(2, c.PartnerName)
		write(3, string(c.Category))
		write(4, string(c.ContractType))
		write(5, string(c.Status))
		write(6, c.Value)
		write(7, c.Currency)
		write(8, formatDate(c.StartDate))
		write(9, formatEndDate(c))
		write(10, c.NoticePeriod)
		write(11, string(c.RiskLevel))
		write(12, strings.Join(c.Tags, ", "))
		write(13, c.Summary)
		write(14, c.FileName)
		write(15, c.UploadedAt.Format("2006-01-02 15:04"))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(contracts),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatEndDate(c entity.Contract) string {
	if c.EndDate == nil {
		return "unbefristet"
	}
	return c.EndDate.Format("2006-01-02")
}
