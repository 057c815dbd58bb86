package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/bauwerk-digital/contracts-tracker/constants"
)

// Contract is the normalized record produced by the extraction pipeline.
// It is assembled exactly once, at the end of normalization, and never
// mutated afterwards; Status is the only field that goes stale and is
// recomputed on read.
type Contract struct {
	ID           uuid.UUID                  `json:"id"`
	Title        string                     `json:"title"`
	PartnerName  string                     `json:"partnerName"`
	Category     constants.ContractCategory `json:"category"`
	ContractType constants.ContractType     `json:"contractType"`
	Status       constants.ContractStatus   `json:"status"`
	Value        float64                    `json:"value"`
	Currency     string                     `json:"currency"`
	StartDate    *time.Time                 `json:"startDate"`
	EndDate      *time.Time                 `json:"endDate"` // nil = unlimited term
	NoticePeriod string                     `json:"noticePeriod"`
	RiskLevel    constants.RiskLevel        `json:"riskLevel"`
	Tags         []string                   `json:"tags"`
	Summary      string                     `json:"summary"`
	FileName     string                     `json:"fileName"`
	UploadedAt   time.Time                  `json:"uploadedAt"`
}

// CategoryStat is one per-category aggregation row.
type CategoryStat struct {
	Category constants.ContractCategory `json:"category"`
	Count    int                        `json:"count"`
	Value    float64                    `json:"value"`
}

// RiskDistribution counts contracts per risk level.
type RiskDistribution struct {
	Low     int `json:"low"`
	Medium  int `json:"medium"`
	High    int `json:"high"`
	Unknown int `json:"unknown"`
}

// ContractStats is the dashboard aggregation over the working set.
type ContractStats struct {
	TotalCount       int              `json:"totalCount"`
	TotalValue       float64          `json:"totalValue"`
	ExpiringSoon     int              `json:"expiringSoon"`
	HighRisk         int              `json:"highRisk"`
	RiskDistribution RiskDistribution `json:"riskDistribution"`
	Categories       []CategoryStat   `json:"categories"`
}
