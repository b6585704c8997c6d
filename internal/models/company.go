package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company represents a construction company using the service
type Company struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	BankBalance decimal.Decimal `json:"bank_balance"`
	DangerLine  decimal.Decimal `json:"danger_line"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
