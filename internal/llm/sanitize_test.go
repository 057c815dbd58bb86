package llm

import (
	"encoding/json"
	"testing"
)

func TestStripCodeFencesTagged(t *testing.T) {
	input := "```json\n{\"title\": \"Test\"}\n```"
	want := `{"title": "Test"}`
	if got := StripCodeFences(input); got != want {
		t.Errorf("StripCodeFences = %q, want %q", got, want)
	}
}

func TestStripCodeFencesUntagged(t *testing.T) {
	input := "```\n{\"title\": \"Test\"}\n```"
	want := `{"title": "Test"}`
	if got := StripCodeFences(input); got != want {
		t.Errorf("StripCodeFences = %q, want %q", got, want)
	}
}

func TestStripCodeFencesWithSurroundingProse(t *testing.T) {
	input := "Hier ist das Ergebnis:\n```json\n{\"a\": 1}\n```\nViel Erfolg!"
	want := `{"a": 1}`
	if got := StripCodeFences(input); got != want {
		t.Errorf("StripCodeFences = %q, want %q", got, want)
	}
}

func TestStripCodeFencesIdempotent(t *testing.T) {
	unfenced := `{"title": "Test", "value": 5}`
	once := StripCodeFences(unfenced)
	if once != unfenced {
		t.Errorf("stripping unfenced text changed it: %q", once)
	}
	fenced := "```json\n" + unfenced + "\n```"
	first := StripCodeFences(fenced)
	second := StripCodeFences(first)
	if first != second {
		t.Errorf("strip not idempotent: %q != %q", first, second)
	}
}

func sanitizeToMap(t *testing.T, input string) map[string]any {
	t.Helper()
	out, _, err := NormalizeAndSanitizeJSON([]byte(input), nil)
	if err != nil {
		t.Fatalf("NormalizeAndSanitizeJSON: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal sanitized: %v", err)
	}
	return m
}

func TestSanitizeCoercesNumericStringValue(t *testing.T) {
	m := sanitizeToMap(t, `{"value": "1200.50"}`)
	if m["value"] != 1200.50 {
		t.Errorf("value = %v, want 1200.5", m["value"])
	}
}

func TestSanitizeDropsNegativeValue(t *testing.T) {
	m := sanitizeToMap(t, `{"value": -10}`)
	if _, ok := m["value"]; ok {
		t.Errorf("negative value kept: %v", m["value"])
	}
}

func TestSanitizeUppercasesCurrency(t *testing.T) {
	m := sanitizeToMap(t, `{"currency": " eur "}`)
	if m["currency"] != "EUR" {
		t.Errorf("currency = %v, want EUR", m["currency"])
	}
}

func TestSanitizeNormalizesEndDate(t *testing.T) {
	m := sanitizeToMap(t, `{"endDate": "unbefristet"}`)
	if v, ok := m["endDate"]; !ok || v != nil {
		t.Errorf("endDate = %v, want explicit null", v)
	}

	m = sanitizeToMap(t, `{"endDate": "2026-12-31"}`)
	if m["endDate"] != "2026-12-31" {
		t.Errorf("endDate = %v, want 2026-12-31", m["endDate"])
	}
}

func TestSanitizeDropsBadStartDate(t *testing.T) {
	m := sanitizeToMap(t, `{"startDate": "Anfang 2024"}`)
	if _, ok := m["startDate"]; ok {
		t.Errorf("bad startDate kept: %v", m["startDate"])
	}
}

func TestSanitizeCanonicalizesRiskLevel(t *testing.T) {
	m := sanitizeToMap(t, `{"riskLevel": "hoch"}`)
	if m["riskLevel"] != "Hoch" {
		t.Errorf("riskLevel = %v, want Hoch", m["riskLevel"])
	}
	m = sanitizeToMap(t, `{"riskLevel": "irgendwas"}`)
	if m["riskLevel"] != "Unbekannt" {
		t.Errorf("riskLevel = %v, want Unbekannt", m["riskLevel"])
	}
}

func TestSanitizeRemovesUnknownKeys(t *testing.T) {
	m := sanitizeToMap(t, `{"title": "T", "confidence": 0.9, "reasoning": "..."}`)
	if _, ok := m["confidence"]; ok {
		t.Error("unknown key confidence kept")
	}
	if _, ok := m["reasoning"]; ok {
		t.Error("unknown key reasoning kept")
	}
	if m["title"] != "T" {
		t.Errorf("title = %v, want T", m["title"])
	}
}

func TestSanitizeFiltersTagList(t *testing.T) {
	m := sanitizeToMap(t, `{"tags": ["miete", "", 42, " büro "]}`)
	tags, ok := m["tags"].([]any)
	if !ok {
		t.Fatalf("tags = %T, want list", m["tags"])
	}
	if len(tags) != 2 || tags[0] != "miete" || tags[1] != "büro" {
		t.Errorf("tags = %v", tags)
	}
}

func TestSanitizeRejectsNonJSON(t *testing.T) {
	if _, _, err := NormalizeAndSanitizeJSON([]byte("kein json"), nil); err == nil {
		t.Error("expected error for non-JSON input")
	}
}
