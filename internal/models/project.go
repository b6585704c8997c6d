package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project statuses
const (
	ProjectActive    = "ACTIVE"
	ProjectCompleted = "COMPLETED"
	ProjectPaused    = "PAUSED"
)

// Project represents a construction site under contract
type Project struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	ClientID       string          `json:"client_id"`
	ForemanID      *string         `json:"foreman_id,omitempty"`
	Name           string          `json:"name"`
	ContractAmount decimal.Decimal `json:"contract_amount"`
	Status         string          `json:"status"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
