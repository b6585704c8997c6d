package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/genbahq/cashsignal/internal/forecast"
	"github.com/genbahq/cashsignal/internal/models"
	"github.com/genbahq/cashsignal/internal/repository"
)

const trendMonths = 5

// ReportsService builds the owner-facing financial reports
type ReportsService struct {
	repo *repository.Repository
	log  *logrus.Logger
	now  func() time.Time
}

// NewReportsService initializes a new reports service
func NewReportsService(repo *repository.Repository, log *logrus.Logger) *ReportsService {
	return &ReportsService{repo: repo, log: log, now: time.Now}
}

// GetSummary returns the current-month summary, the five-month realized
// trend, and per-project health.
func (s *ReportsService) GetSummary(ctx context.Context, companyID string) (*models.ReportSummary, error) {
	company, err := s.repo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	currentMonth, err := s.currentMonthSummary(ctx, companyID, now)
	if err != nil {
		return nil, err
	}
	trend, err := s.monthlyTrend(ctx, companyID, now)
	if err != nil {
		return nil, err
	}
	health, err := s.projectHealth(ctx, companyID, company.DangerLine)
	if err != nil {
		return nil, err
	}

	return &models.ReportSummary{
		CurrentMonth:  *currentMonth,
		MonthlyTrend:  trend,
		ProjectHealth: health,
	}, nil
}

// GetByProject returns per-project financials with the expense category
// breakdown and a totals row. Committed spend means APPROVED or PAID.
func (s *ReportsService) GetByProject(ctx context.Context, companyID string) (*models.ProjectReport, error) {
	company, err := s.repo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	totals, err := s.repo.ListActiveProjectTotals(ctx, companyID, nil)
	if err != nil {
		return nil, err
	}

	report := &models.ProjectReport{Projects: make([]models.ProjectFinancial, 0, len(totals))}
	committed := []string{models.PaymentApproved, models.PaymentPaid}

	for _, t := range totals {
		byCategory, err := s.repo.SumProjectExpenseByCategory(ctx, t.ProjectID, committed)
		if err != nil {
			return nil, err
		}

		balance := t.IncomeTotal.Sub(t.ExpenseTotal)
		financial := models.ProjectFinancial{
			ProjectID:      t.ProjectID,
			ProjectName:    t.Name,
			ContractAmount: t.ContractAmount,
			IncomeTotal:    t.IncomeTotal,
			ExpenseTotal:   t.ExpenseTotal,
			Balance:        balance,
			Status:         forecast.Classify(balance, company.DangerLine),
			ExpenseByCategory: models.ExpenseByCategory{
				Subcontracting: byCategory[models.CategorySubcontracting],
				Material:       byCategory[models.CategoryMaterial],
				Equipment:      byCategory[models.CategoryEquipment],
				Transport:      byCategory[models.CategoryTransport],
				Other:          byCategory[models.CategoryOther],
			},
		}
		report.Projects = append(report.Projects, financial)

		report.Totals.ContractAmount = report.Totals.ContractAmount.Add(financial.ContractAmount)
		report.Totals.IncomeTotal = report.Totals.IncomeTotal.Add(financial.IncomeTotal)
		report.Totals.ExpenseTotal = report.Totals.ExpenseTotal.Add(financial.ExpenseTotal)
		report.Totals.Balance = report.Totals.Balance.Add(financial.Balance)
		report.Totals.ExpenseByCategory.Subcontracting = report.Totals.ExpenseByCategory.Subcontracting.Add(financial.ExpenseByCategory.Subcontracting)
		report.Totals.ExpenseByCategory.Material = report.Totals.ExpenseByCategory.Material.Add(financial.ExpenseByCategory.Material)
		report.Totals.ExpenseByCategory.Equipment = report.Totals.ExpenseByCategory.Equipment.Add(financial.ExpenseByCategory.Equipment)
		report.Totals.ExpenseByCategory.Transport = report.Totals.ExpenseByCategory.Transport.Add(financial.ExpenseByCategory.Transport)
		report.Totals.ExpenseByCategory.Other = report.Totals.ExpenseByCategory.Other.Add(financial.ExpenseByCategory.Other)
	}

	return report, nil
}

// GetCashflowTable returns the four-month planning table with the
// opening/closing balance chain. Expected expenses here are pessimistic
// (approved plus pending), matching the signal forecast.
func (s *ReportsService) GetCashflowTable(ctx context.Context, companyID string) (*models.CashflowTable, error) {
	company, err := s.repo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	table := &models.CashflowTable{
		Months:       make([]models.CashflowMonth, 0, 4),
		DangerMonths: []models.MonthSignal{},
	}
	opening := company.BankBalance
	expected := []string{models.PaymentApproved, models.PaymentPending}

	for offset := 0; offset < 4; offset++ {
		start, end := forecast.MonthRange(now, offset)
		label := forecast.MonthLabel(now, offset)

		general, otherIncome, err := s.repo.SumScheduledIncomeByClientType(ctx, companyID, start, end)
		if err != nil {
			return nil, err
		}
		incomeTotal := general.Add(otherIncome)

		byCategory, err := s.repo.SumExpenseByCategory(ctx, companyID, &start, &end, expected)
		if err != nil {
			return nil, err
		}
		subcontracting := byCategory[models.CategorySubcontracting]
		material := byCategory[models.CategoryMaterial]
		otherExpense := byCategory[models.CategoryEquipment].
			Add(byCategory[models.CategoryTransport]).
			Add(byCategory[models.CategoryOther])
		expenseTotal := subcontracting.Add(material).Add(otherExpense)

		closing := opening.Add(incomeTotal).Sub(expenseTotal)
		signal := forecast.Classify(closing, company.DangerLine)

		month := models.CashflowMonth{
			Month:          label,
			OpeningBalance: opening,
			Income: models.CashflowIncome{
				GeneralContractor: general,
				Other:             otherIncome,
				Total:             incomeTotal,
			},
			Expense: models.CashflowExpense{
				Subcontracting: subcontracting,
				Material:       material,
				Other:          otherExpense,
				Total:          expenseTotal,
			},
			ClosingBalance: closing,
			Signal:         signal,
		}
		table.Months = append(table.Months, month)

		if signal == models.SignalRed {
			table.DangerMonths = append(table.DangerMonths, models.MonthSignal{
				Month:            label,
				PredictedBalance: closing,
				Signal:           signal,
			})
		}
		opening = closing
	}

	return table, nil
}

func (s *ReportsService) currentMonthSummary(ctx context.Context, companyID string, now time.Time) (*models.MonthlySummary, error) {
	start, end := forecast.MonthRange(now, 0)

	income, err := s.repo.SumCompanyTransactions(ctx, companyID, models.TransactionIncome, start, end)
	if err != nil {
		return nil, err
	}
	expense, err := s.repo.SumCompanyTransactions(ctx, companyID, models.TransactionExpense, start, end)
	if err != nil {
		return nil, err
	}
	pendingCount, pendingAmount, err := s.repo.CountPendingPayments(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return &models.MonthlySummary{
		IncomeTotal:           income,
		ExpenseTotal:          expense,
		NetIncome:             income.Sub(expense),
		PendingApprovalCount:  pendingCount,
		PendingApprovalAmount: pendingAmount,
	}, nil
}

func (s *ReportsService) monthlyTrend(ctx context.Context, companyID string, now time.Time) ([]models.MonthlyTrendItem, error) {
	trend := make([]models.MonthlyTrendItem, 0, trendMonths)

	for offset := -(trendMonths - 1); offset <= 0; offset++ {
		start, end := forecast.MonthRange(now, offset)

		income, err := s.repo.SumCompanyTransactions(ctx, companyID, models.TransactionIncome, start, end)
		if err != nil {
			return nil, err
		}
		expense, err := s.repo.SumCompanyTransactions(ctx, companyID, models.TransactionExpense, start, end)
		if err != nil {
			return nil, err
		}

		trend = append(trend, models.MonthlyTrendItem{
			Month:   forecast.MonthLabel(now, offset),
			Income:  income,
			Expense: expense,
			Net:     income.Sub(expense),
		})
	}
	return trend, nil
}

func (s *ReportsService) projectHealth(ctx context.Context, companyID string, dangerLine decimal.Decimal) ([]models.ProjectHealthItem, error) {
	totals, err := s.repo.ListActiveProjectTotals(ctx, companyID, nil)
	if err != nil {
		return nil, err
	}

	health := make([]models.ProjectHealthItem, 0, len(totals))
	for _, t := range totals {
		percent := 0.0
		if t.ContractAmount.IsPositive() {
			percent = t.IncomeTotal.Div(t.ContractAmount).InexactFloat64()
		}
		balance := t.IncomeTotal.Sub(t.ExpenseTotal)

		health = append(health, models.ProjectHealthItem{
			ProjectID:     t.ProjectID,
			ProjectName:   t.Name,
			HealthPercent: percent,
			Signal:        forecast.Classify(balance, dangerLine),
		})
	}
	return health, nil
}
