package constants

import (
	"strings"
	"time"
)

// ContractStatus is the derived lifecycle state of a contract.
type ContractStatus string

const (
	StatusActive       ContractStatus = "Aktiv"
	StatusExpiringSoon ContractStatus = "Läuft bald ab"
	StatusExpired      ContractStatus = "Abgelaufen"
	StatusDraft        ContractStatus = "Entwurf"
	StatusTerminated   ContractStatus = "Gekündigt"
)

// ExpiryHorizonDays is the window in which a contract counts as expiring soon.
const ExpiryHorizonDays = 90

// DeriveStatus computes the lifecycle status from the end date relative to
// now. A nil end date means an unlimited term. The result is a pure function
// of its inputs; callers recompute it whenever "now" moves.
func DeriveStatus(endDate *time.Time, now time.Time) ContractStatus {
	if endDate == nil {
		return StatusActive
	}
	if endDate.Before(now) {
		return StatusExpired
	}
	if !endDate.After(now.AddDate(0, 0, ExpiryHorizonDays)) {
		return StatusExpiringSoon
	}
	return StatusActive
}

// RiskLevel is the coarse qualitative rating assigned by the extraction model.
type RiskLevel string

const (
	RiskLow     RiskLevel = "Niedrig"
	RiskMedium  RiskLevel = "Mittel"
	RiskHigh    RiskLevel = "Hoch"
	RiskUnknown RiskLevel = "Unbekannt"
)

var allRiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskUnknown}

// AllRiskLevels returns the risk levels in ascending severity order,
// RiskUnknown last.
func AllRiskLevels() []RiskLevel {
	out := make([]RiskLevel, len(allRiskLevels))
	copy(out, allRiskLevels)
	return out
}

// ParseRiskLevel maps a raw model-supplied risk string to a RiskLevel.
// Unrecognized input resolves to RiskUnknown.
func ParseRiskLevel(raw string) RiskLevel {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, r := range allRiskLevels {
		if normalized == strings.ToLower(string(r)) {
			return r
		}
	}
	return RiskUnknown
}
