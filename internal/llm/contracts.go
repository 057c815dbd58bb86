package llm

import "context"

// ContractFields is the raw shape we want from the model, before
// classification and derivation. Field names match the JSON the prompt
// demands; everything stays loosely typed until the normalizer coerces it.
type ContractFields struct {
	Title        string   `json:"title"`
	PartnerName  string   `json:"partnerName"`
	ContractType string   `json:"contractType,omitempty"`
	Category     string   `json:"category,omitempty"` // older prompt variant; fallback for contractType
	Value        float64  `json:"value,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	StartDate    string   `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate      *string  `json:"endDate,omitempty"`   // YYYY-MM-DD or null
	NoticePeriod string   `json:"noticePeriod,omitempty"`
	RiskLevel    string   `json:"riskLevel,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// GenerateRequest is one completion exchange with the extraction backend.
// Images carries base64 payloads for vision-capable models and stays empty
// on the text-only path.
type GenerateRequest struct {
	Prompt string
	Images []string
}

// Generator is the interface the pipeline depends on for raw completions.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
