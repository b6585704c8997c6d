package models

import "github.com/shopspring/decimal"

// MonthlySummary represents realized income and expense for the current month
type MonthlySummary struct {
	IncomeTotal           decimal.Decimal `json:"income_total"`
	ExpenseTotal          decimal.Decimal `json:"expense_total"`
	NetIncome             decimal.Decimal `json:"net_income"`
	PendingApprovalCount  int             `json:"pending_approval_count"`
	PendingApprovalAmount decimal.Decimal `json:"pending_approval_amount"`
}

// MonthlyTrendItem represents realized income/expense for one past month
type MonthlyTrendItem struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// ProjectHealthItem represents per-project income progress and signal
type ProjectHealthItem struct {
	ProjectID     string  `json:"project_id"`
	ProjectName   string  `json:"project_name"`
	HealthPercent float64 `json:"health_percent"`
	Signal        Signal  `json:"signal"`
}

// ReportSummary is the /reports/summary payload
type ReportSummary struct {
	CurrentMonth  MonthlySummary      `json:"current_month"`
	MonthlyTrend  []MonthlyTrendItem  `json:"monthly_trend"`
	ProjectHealth []ProjectHealthItem `json:"project_health"`
}

// ExpenseByCategory breaks project spending down by payment category
type ExpenseByCategory struct {
	Subcontracting decimal.Decimal `json:"subcontracting"`
	Material       decimal.Decimal `json:"material"`
	Equipment      decimal.Decimal `json:"equipment"`
	Transport      decimal.Decimal `json:"transport"`
	Other          decimal.Decimal `json:"other"`
}

// ProjectFinancial represents one row of the per-project report
type ProjectFinancial struct {
	ProjectID         string            `json:"project_id"`
	ProjectName       string            `json:"project_name"`
	ContractAmount    decimal.Decimal   `json:"contract_amount"`
	IncomeTotal       decimal.Decimal   `json:"income_total"`
	ExpenseTotal      decimal.Decimal   `json:"expense_total"`
	Balance           decimal.Decimal   `json:"balance"`
	Status            Signal            `json:"status"`
	ExpenseByCategory ExpenseByCategory `json:"expense_by_category"`
}

// ProjectReportTotals is the totals row of the per-project report
type ProjectReportTotals struct {
	ContractAmount    decimal.Decimal   `json:"contract_amount"`
	IncomeTotal       decimal.Decimal   `json:"income_total"`
	ExpenseTotal      decimal.Decimal   `json:"expense_total"`
	Balance           decimal.Decimal   `json:"balance"`
	ExpenseByCategory ExpenseByCategory `json:"expense_by_category"`
}

// ProjectReport is the /reports/projects payload
type ProjectReport struct {
	Projects []ProjectFinancial  `json:"projects"`
	Totals   ProjectReportTotals `json:"totals"`
}

// CashflowIncome splits a month's expected income by client type
type CashflowIncome struct {
	GeneralContractor decimal.Decimal `json:"general_contractor"`
	Other             decimal.Decimal `json:"other"`
	Total             decimal.Decimal `json:"total"`
}

// CashflowExpense splits a month's expected expense by category
type CashflowExpense struct {
	Subcontracting decimal.Decimal `json:"subcontracting"`
	Material       decimal.Decimal `json:"material"`
	Other          decimal.Decimal `json:"other"`
	Total          decimal.Decimal `json:"total"`
}

// CashflowMonth represents one month of the cash-flow planning table
type CashflowMonth struct {
	Month          string          `json:"month"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Income         CashflowIncome  `json:"income"`
	Expense        CashflowExpense `json:"expense"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	Signal         Signal          `json:"signal"`
}

// CashflowTable is the /reports/cashflow-table payload
type CashflowTable struct {
	Months       []CashflowMonth `json:"months"`
	DangerMonths []MonthSignal   `json:"danger_months"`
}
