package pipeline

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bauwerk-digital/contracts-tracker/constants"
	"github.com/bauwerk-digital/contracts-tracker/internal/common"
	"github.com/bauwerk-digital/contracts-tracker/internal/entity"
	"github.com/bauwerk-digital/contracts-tracker/internal/llm"
)

// Classification records how the contract type was resolved, so callers can
// surface uncertainty instead of masking the fuzzy fallback.
type Classification struct {
	Input string              `json:"input"`
	Match constants.MatchKind `json:"match"`
}

// Normalize turns raw model response text into a fully populated Contract.
// Steps, each a hard dependency on the previous one succeeding: strip
// Markdown fences, parse JSON, sanitize, validate shape, resolve the
// contract type, derive category and status, fill defaults, stamp
// provenance and assign the id.
func Normalize(response, fileName string, now time.Time, logger *slog.Logger) (entity.Contract, Classification, error) {
	if logger == nil {
		logger = slog.Default()
	}

	jsonText := llm.StripCodeFences(response)

	// Parse failures are not repaired; there is no auto-correction of
	// malformed JSON.
	cleaned, _, err := llm.NormalizeAndSanitizeJSON([]byte(jsonText), logger)
	if err != nil {
		return entity.Contract{}, Classification{}, common.MalformedOutput(err)
	}
	if err := llm.ValidateAgainstSchema(llm.BuildContractJSONSchema(), cleaned); err != nil {
		return entity.Contract{}, Classification{}, common.MalformedOutput(err)
	}

	var fields llm.ContractFields
	if err := json.Unmarshal(cleaned, &fields); err != nil {
		return entity.Contract{}, Classification{}, common.MalformedOutput(err)
	}

	// Type classification: the model-supplied type, or the legacy category
	// field when type is absent. Never fails; the match kind records how
	// approximate the resolution was.
	rawType := fields.ContractType
	if rawType == "" {
		rawType = fields.Category
	}
	contractType, match := constants.ResolveContractType(rawType)
	if match != constants.MatchExact {
		logger.Warn("pipeline.classify.inexact",
			"input", rawType,
			"resolved", contractType,
			"match", match,
		)
	}

	startDate := parseDate(fields.StartDate)
	var endDate *time.Time
	if fields.EndDate != nil {
		endDate = parseDate(*fields.EndDate)
	}

	currency := fields.Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	noticePeriod := fields.NoticePeriod
	if noticePeriod == "" {
		noticePeriod = constants.NoticePeriodUnspecified
	}
	tags := fields.Tags
	if tags == nil {
		tags = []string{}
	}

	contract := entity.Contract{
		ID:           uuid.New(),
		Title:        fields.Title,
		PartnerName:  fields.PartnerName,
		Category:     constants.CategoryOf(contractType),
		ContractType: contractType,
		Status:       constants.DeriveStatus(endDate, now),
		Value:        fields.Value,
		Currency:     currency,
		StartDate:    startDate,
		EndDate:      endDate,
		NoticePeriod: noticePeriod,
		RiskLevel:    constants.ParseRiskLevel(fields.RiskLevel),
		Tags:         tags,
		Summary:      fields.Summary,
		FileName:     fileName,
		UploadedAt:   now,
	}

	return contract, Classification{Input: rawType, Match: match}, nil
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
