package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income schedule statuses
const (
	IncomeScheduled = "SCHEDULED"
	IncomeReceived  = "RECEIVED"
	IncomeOverdue   = "OVERDUE"
)

// Income types
const (
	IncomeTypeProgress = "PROGRESS"
	IncomeTypeAdvance  = "ADVANCE"
	IncomeTypeFinal    = "FINAL"
)

// IncomeSchedule represents expected future income for a project.
// A SCHEDULED row whose date passes without receipt becomes OVERDUE
// (flipped by the daily sweep job, never by the forecast core).
type IncomeSchedule struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	ClientID      string          `json:"client_id"`
	Amount        decimal.Decimal `json:"amount"`
	ScheduledDate time.Time       `json:"scheduled_date"`
	ActualDate    *time.Time      `json:"actual_date,omitempty"`
	IncomeType    string          `json:"income_type"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
