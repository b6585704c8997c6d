package models

import "github.com/shopspring/decimal"

// ProjectSummary represents one active project on the dashboard
type ProjectSummary struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Signal         Signal          `json:"signal"`
	Balance        decimal.Decimal `json:"balance"`
	ContractAmount decimal.Decimal `json:"contract_amount"`
	IncomeTotal    decimal.Decimal `json:"income_total"`
	ExpenseTotal   decimal.Decimal `json:"expense_total"`
	IncomeProgress float64         `json:"income_progress"` // IncomeTotal / ContractAmount
}

// Dashboard bundles everything the landing screen needs in one response
type Dashboard struct {
	BankBalance *decimal.Decimal `json:"bank_balance,omitempty"`
	Signals     []MonthSignal    `json:"signals,omitempty"`
	Alerts      []Alert          `json:"alerts,omitempty"`
	Projects    []ProjectSummary `json:"projects"`
}
