package llm

import "github.com/bauwerk-digital/contracts-tracker/constants"

// BuildContractJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, used locally to validate sanitized model output. Only shape
// is enforced here; field-level defaulting and the type/category/status
// derivations happen in the normalizer, so nothing beyond the date formats
// is required.
func BuildContractJSONSchema() map[string]any {
	riskLevels := constants.AllRiskLevels()
	riskEnum := make([]any, len(riskLevels))
	for i, r := range riskLevels {
		riskEnum[i] = string(r)
	}

	props := map[string]any{
		"title":        map[string]any{"type": "string"},
		"partnerName":  map[string]any{"type": "string"},
		"contractType": map[string]any{"type": "string"},
		"category":     map[string]any{"type": "string"},
		"value":        map[string]any{"type": "number", "minimum": 0.0},
		"currency":     map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"startDate":    map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"endDate": map[string]any{
			"type":    []any{"string", "null"},
			"pattern": `^\d{4}-\d{2}-\d{2}$`,
		},
		"noticePeriod": map[string]any{"type": "string"},
		"riskLevel":    map[string]any{"type": "string", "enum": riskEnum},
		"summary":      map[string]any{"type": "string"},
		"tags":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}
