package models

import "github.com/shopspring/decimal"

// Signal is the three-level liquidity risk classification
type Signal string

const (
	SignalGreen  Signal = "green"
	SignalYellow Signal = "yellow"
	SignalRed    Signal = "red"
)

// MonthSignal represents the predicted balance and signal for one month
type MonthSignal struct {
	Month            string          `json:"month"` // Format: YYYY-MM
	PredictedBalance decimal.Decimal `json:"predicted_balance"`
	Signal           Signal          `json:"signal"`
}

// ChartPoint represents one half-month point on the balance trajectory chart
type ChartPoint struct {
	Date       string          `json:"date"` // Format: YYYY-MM-DD
	Balance    decimal.Decimal `json:"balance"`
	DangerLine decimal.Decimal `json:"danger_line"`
}

// PaymentImpact represents the hypothetical after-state of approving one
// payment request. Nothing is mutated to produce it.
type PaymentImpact struct {
	ProjectBalanceAfter decimal.Decimal `json:"project_balance_after"`
	ProjectSignalAfter  Signal          `json:"project_signal_after"`
	CompanyBalanceAfter decimal.Decimal `json:"company_balance_after"`
	CompanySignalAfter  Signal          `json:"company_signal_after"`
}

// Alert types
const (
	AlertWarning = "warning"
	AlertDanger  = "danger"
)

// Alert codes
const (
	AlertPendingApprovals = "pending_approvals"
	AlertIncomeOverdue    = "income_overdue"
	AlertDeficitForecast  = "deficit_forecast"
)

// Alert is a structured advisory record. The core stays language-neutral;
// human wording is rendered by the notification/UI layer from the code.
type Alert struct {
	Type             string          `json:"type"`
	Code             string          `json:"code"`
	Count            int             `json:"count,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	ProjectName      string          `json:"project_name,omitempty"`
	Month            string          `json:"month,omitempty"`
	PredictedBalance decimal.Decimal `json:"predicted_balance"`
}
