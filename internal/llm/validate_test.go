package llm

import "testing"

func TestValidateAgainstSchemaAccepts(t *testing.T) {
	doc := []byte(`{
		"title": "Mietvertrag Lagerhalle",
		"partnerName": "Grundstücks GmbH",
		"contractType": "Mietvertrag",
		"value": 24000,
		"currency": "EUR",
		"startDate": "2024-01-01",
		"endDate": null,
		"noticePeriod": "3 Monate zum Quartalsende",
		"riskLevel": "Mittel",
		"summary": "Anmietung einer Lagerhalle.",
		"tags": ["miete", "lager"]
	}`)
	if err := ValidateAgainstSchema(BuildContractJSONSchema(), doc); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}
}

func TestValidateAgainstSchemaMinimalObject(t *testing.T) {
	// Field defaulting happens downstream; an empty object is a valid shape.
	if err := ValidateAgainstSchema(BuildContractJSONSchema(), []byte(`{}`)); err != nil {
		t.Errorf("empty object rejected: %v", err)
	}
}

func TestValidateAgainstSchemaRejectsWrongTypes(t *testing.T) {
	tests := []string{
		`{"value": "viel"}`,
		`{"tags": "miete"}`,
		`{"riskLevel": "Critical"}`,
		`{"startDate": "01.02.2024"}`,
		`{"extra": true}`,
	}
	for _, doc := range tests {
		if err := ValidateAgainstSchema(BuildContractJSONSchema(), []byte(doc)); err == nil {
			t.Errorf("document %s passed validation", doc)
		}
	}
}
