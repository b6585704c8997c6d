package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/genbahq/cashsignal/internal/integrations/bankfeed"
	"github.com/genbahq/cashsignal/internal/models"
	"github.com/genbahq/cashsignal/internal/repository"
)

// RegisterTransactionInput carries the fields of a new realized transaction
type RegisterTransactionInput struct {
	ProjectID   string          `json:"project_id"`
	ClientID    *string         `json:"client_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
}

// CreateIncomeScheduleInput carries the fields of a new expected income
type CreateIncomeScheduleInput struct {
	ProjectID     string          `json:"project_id"`
	ClientID      string          `json:"client_id"`
	Amount        decimal.Decimal `json:"amount"`
	ScheduledDate time.Time       `json:"scheduled_date"`
	IncomeType    string          `json:"income_type"`
}

// TransactionService records realized cash movement and expected income
type TransactionService struct {
	repo *repository.Repository
	log  *logrus.Logger
}

// NewTransactionService initializes a new transaction service
func NewTransactionService(repo *repository.Repository, log *logrus.Logger) *TransactionService {
	return &TransactionService{repo: repo, log: log}
}

// RegisterIncome records an income transaction. When an open income schedule
// on the same project matches the amount exactly, it is marked RECEIVED.
func (s *TransactionService) RegisterIncome(ctx context.Context, in RegisterTransactionInput) (*models.Transaction, error) {
	if _, err := s.repo.FindProjectByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		ID:          uuid.NewString(),
		ProjectID:   in.ProjectID,
		ClientID:    in.ClientID,
		Type:        models.TransactionIncome,
		Amount:      in.Amount,
		Date:        in.Date,
		Category:    in.Category,
		Description: in.Description,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	schedule, err := s.repo.FindMatchingSchedule(ctx, in.ProjectID, in.Amount)
	if err != nil {
		return nil, err
	}
	if schedule != nil {
		if err := s.repo.MarkScheduleReceived(ctx, schedule.ID, in.Date); err != nil {
			return nil, err
		}
		s.log.Infof("Income %s matched schedule %s", tx.ID, schedule.ID)
	}

	return tx, nil
}

// RegisterExpense records an expense transaction
func (s *TransactionService) RegisterExpense(ctx context.Context, in RegisterTransactionInput) (*models.Transaction, error) {
	if _, err := s.repo.FindProjectByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		ID:          uuid.NewString(),
		ProjectID:   in.ProjectID,
		ClientID:    in.ClientID,
		Type:        models.TransactionExpense,
		Amount:      in.Amount,
		Date:        in.Date,
		Category:    in.Category,
		Description: in.Description,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// List retrieves the company's transactions with optional filters
func (s *TransactionService) List(ctx context.Context, companyID string, projectID *string, start, end *time.Time) ([]models.Transaction, error) {
	return s.repo.ListTransactions(ctx, companyID, projectID, start, end)
}

// CreateIncomeSchedule registers expected future income for a project
func (s *TransactionService) CreateIncomeSchedule(ctx context.Context, in CreateIncomeScheduleInput) (*models.IncomeSchedule, error) {
	if _, err := s.repo.FindProjectByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindClientByID(ctx, in.ClientID); err != nil {
		return nil, err
	}

	schedule := &models.IncomeSchedule{
		ID:            uuid.NewString(),
		ProjectID:     in.ProjectID,
		ClientID:      in.ClientID,
		Amount:        in.Amount,
		ScheduledDate: in.ScheduledDate,
		IncomeType:    in.IncomeType,
		Status:        models.IncomeScheduled,
	}
	if err := s.repo.CreateIncomeSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// ListIncomeSchedules retrieves the company's income schedules
func (s *TransactionService) ListIncomeSchedules(ctx context.Context, companyID string) ([]models.IncomeSchedule, error) {
	return s.repo.ListIncomeSchedules(ctx, companyID)
}

// ImportStatement parses a bank statement XML export and records every entry
// as a transaction on the given project. Credit entries go through income
// schedule matching like manually entered income.
func (s *TransactionService) ImportStatement(ctx context.Context, projectID string, data []byte) ([]models.Transaction, error) {
	if _, err := s.repo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	entries, err := bankfeed.ParseStatement(data)
	if err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(entries))
	for _, entry := range entries {
		tx := &models.Transaction{
			ID:          uuid.NewString(),
			ProjectID:   projectID,
			Type:        entry.Type,
			Amount:      entry.Amount,
			Date:        entry.Date,
			Description: entry.Description,
		}
		if err := s.repo.CreateTransaction(ctx, tx); err != nil {
			return nil, err
		}

		if entry.Type == models.TransactionIncome {
			schedule, err := s.repo.FindMatchingSchedule(ctx, projectID, entry.Amount)
			if err != nil {
				return nil, err
			}
			if schedule != nil {
				if err := s.repo.MarkScheduleReceived(ctx, schedule.ID, entry.Date); err != nil {
					return nil, err
				}
				s.log.Infof("Imported income %s matched schedule %s", tx.ID, schedule.ID)
			}
		}
		transactions = append(transactions, *tx)
	}

	s.log.Infof("Imported %d statement entries for project %s", len(transactions), projectID)
	return transactions, nil
}
