package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/bauwerk-digital/contracts-tracker/constants"
)

// Models frequently wrap JSON in Markdown fences despite being told not to.
var fenceRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// StripCodeFences extracts the content of the first fenced code block
// (optionally tagged json) from a response. Text without fences is returned
// trimmed but otherwise unchanged, so the operation is idempotent.
func StripCodeFences(response string) string {
	trimmed := strings.TrimSpace(response)
	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	return trimmed
}

// NormalizeAndSanitizeJSON cleans the parsed model output before schema
// validation:
//   - coerces "value" to a number (string digits accepted, junk dropped)
//   - trims known string fields, drops them when empty
//   - replaces JSON null / non-list tags with omission
//   - removes unknown keys so additionalProperties:false validation holds
//
// It returns the cleaned document plus the list of adjustments made.
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)

	// value: number expected, tolerate numeric strings, drop everything else
	if v, ok := m["value"]; ok {
		switch t := v.(type) {
		case float64:
			if t < 0 {
				delete(m, "value")
				dropped = append(dropped, "value(negative)")
			}
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil && f >= 0 {
				m["value"] = f
			} else {
				delete(m, "value")
				dropped = append(dropped, "value(type)")
			}
		case nil:
			delete(m, "value")
			dropped = append(dropped, "value(null)")
		default:
			delete(m, "value")
			dropped = append(dropped, "value(type)")
		}
	}

	// currency: uppercase ISO-style code
	if v, ok := m["currency"].(string); ok {
		cur := strings.ToUpper(strings.TrimSpace(v))
		if cur == "" {
			delete(m, "currency")
			dropped = append(dropped, "currency(empty)")
		} else {
			m["currency"] = cur
		}
	}

	// endDate: keep null (it means unlimited term), normalize "null" and
	// prose like "unbefristet" to null
	if v, ok := m["endDate"].(string); ok {
		s := strings.TrimSpace(v)
		switch {
		case s == "" || strings.EqualFold(s, "null"):
			m["endDate"] = nil
			dropped = append(dropped, "endDate(empty)")
		case !dateRe.MatchString(s):
			m["endDate"] = nil
			dropped = append(dropped, "endDate(format)")
		default:
			m["endDate"] = s
		}
	}

	// startDate: ISO date or nothing
	if v, ok := m["startDate"].(string); ok {
		if !dateRe.MatchString(strings.TrimSpace(v)) {
			delete(m, "startDate")
			dropped = append(dropped, "startDate(format)")
		}
	}

	// riskLevel: canonicalize to the enum, unknown input becomes Unbekannt
	if v, ok := m["riskLevel"].(string); ok {
		m["riskLevel"] = string(constants.ParseRiskLevel(v))
	}

	// tags: list of strings or nothing
	if v, ok := m["tags"]; ok {
		switch t := v.(type) {
		case []any:
			tags := make([]any, 0, len(t))
			for _, e := range t {
				if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
					tags = append(tags, strings.TrimSpace(s))
				}
			}
			m["tags"] = tags
		case nil:
			delete(m, "tags")
			dropped = append(dropped, "tags(null)")
		default:
			delete(m, "tags")
			dropped = append(dropped, "tags(type)")
		}
	}

	// trim obvious strings, drop empties
	trimKeys := []string{"title", "partnerName", "contractType", "category", "startDate", "noticePeriod", "riskLevel", "summary"}
	for _, k := range trimKeys {
		if v, ok := m[k]; ok {
			s, isStr := v.(string)
			if !isStr {
				delete(m, k)
				dropped = append(dropped, k+"(type)")
				continue
			}
			s = strings.TrimSpace(s)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	// remove unknown keys
	allowed := map[string]struct{}{
		"title": {}, "partnerName": {}, "contractType": {}, "category": {},
		"value": {}, "currency": {}, "startDate": {}, "endDate": {},
		"noticePeriod": {}, "riskLevel": {}, "summary": {}, "tags": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
