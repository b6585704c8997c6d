package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/genbahq/cashsignal/internal/forecast"
	"github.com/genbahq/cashsignal/internal/models"
	"github.com/genbahq/cashsignal/internal/repository"
)

// DashboardService assembles the landing screen data
type DashboardService struct {
	repo    *repository.Repository
	engine  *forecast.Engine
	deriver *forecast.Deriver
	log     *logrus.Logger
}

// NewDashboardService initializes a new dashboard service
func NewDashboardService(repo *repository.Repository, engine *forecast.Engine, deriver *forecast.Deriver, log *logrus.Logger) *DashboardService {
	return &DashboardService{repo: repo, engine: engine, deriver: deriver, log: log}
}

// GetDashboard returns the full dashboard. Foremen only see their own
// project summaries; owner and accounting get the company-wide view.
func (s *DashboardService) GetDashboard(ctx context.Context, companyID, userID, role string) (*models.Dashboard, error) {
	company, err := s.repo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if role == models.RoleForeman {
		projects, err := s.projectSummaries(ctx, companyID, company.DangerLine, &userID)
		if err != nil {
			return nil, err
		}
		return &models.Dashboard{Projects: projects}, nil
	}

	signals, err := s.engine.Signals(ctx, companyID, company.BankBalance, company.DangerLine)
	if err != nil {
		return nil, err
	}
	alerts, err := s.deriver.Derive(ctx, companyID, signals)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectSummaries(ctx, companyID, company.DangerLine, nil)
	if err != nil {
		return nil, err
	}

	balance := company.BankBalance
	return &models.Dashboard{
		BankBalance: &balance,
		Signals:     signals,
		Alerts:      alerts,
		Projects:    projects,
	}, nil
}

// GetSignals returns the three-month signal forecast
func (s *DashboardService) GetSignals(ctx context.Context, companyID string) ([]models.MonthSignal, error) {
	company, err := s.repo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return s.engine.Signals(ctx, companyID, company.BankBalance, company.DangerLine)
}

// GetChart returns the half-month balance trajectory
func (s *DashboardService) GetChart(ctx context.Context, companyID string) ([]models.ChartPoint, error) {
	company, err := s.repo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return s.engine.Chart(ctx, companyID, company.BankBalance, company.DangerLine)
}

// GetAlerts returns the current alert list
func (s *DashboardService) GetAlerts(ctx context.Context, companyID string) ([]models.Alert, error) {
	company, err := s.repo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	signals, err := s.engine.Signals(ctx, companyID, company.BankBalance, company.DangerLine)
	if err != nil {
		return nil, err
	}
	return s.deriver.Derive(ctx, companyID, signals)
}

func (s *DashboardService) projectSummaries(ctx context.Context, companyID string, dangerLine decimal.Decimal, foremanID *string) ([]models.ProjectSummary, error) {
	totals, err := s.repo.ListActiveProjectTotals(ctx, companyID, foremanID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ProjectSummary, 0, len(totals))
	for _, t := range totals {
		balance := t.IncomeTotal.Sub(t.ExpenseTotal)

		progress := 0.0
		if t.ContractAmount.IsPositive() {
			progress = t.IncomeTotal.Div(t.ContractAmount).InexactFloat64()
		}

		summaries = append(summaries, models.ProjectSummary{
			ID:             t.ProjectID,
			Name:           t.Name,
			Signal:         forecast.Classify(balance, dangerLine),
			Balance:        balance,
			ContractAmount: t.ContractAmount,
			IncomeTotal:    t.IncomeTotal,
			ExpenseTotal:   t.ExpenseTotal,
			IncomeProgress: progress,
		})
	}
	return summaries, nil
}
