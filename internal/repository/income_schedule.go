package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/genbahq/cashsignal/internal/forecast"
	"github.com/genbahq/cashsignal/internal/models"
)

// OverdueFlip describes one income schedule the daily sweep just marked overdue
type OverdueFlip struct {
	ScheduleID    string
	Amount        decimal.Decimal
	ScheduledDate time.Time
	ProjectID     string
	ProjectName   string
	CompanyID     string
}

// CreateIncomeSchedule creates a new income schedule in the database
func (r *Repository) CreateIncomeSchedule(ctx context.Context, schedule *models.IncomeSchedule) error {
	query := `
		INSERT INTO genba.income_schedules (id, project_id, client_id, amount, scheduled_date, income_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		schedule.ID, schedule.ProjectID, schedule.ClientID, schedule.Amount,
		schedule.ScheduledDate, schedule.IncomeType, schedule.Status).
		Scan(&schedule.CreatedAt, &schedule.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create income schedule: %w", err)
	}
	return nil
}

// ListIncomeSchedules retrieves income schedules for a company ordered by date
func (r *Repository) ListIncomeSchedules(ctx context.Context, companyID string) ([]models.IncomeSchedule, error) {
	query := `
		SELECT s.id, s.project_id, s.client_id, s.amount, s.scheduled_date, s.actual_date, s.income_type, s.status, s.created_at, s.updated_at
		FROM genba.income_schedules s
		JOIN genba.projects p ON p.id = s.project_id
		WHERE p.company_id = $1
		ORDER BY s.scheduled_date`
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income schedules: %w", err)
	}
	defer rows.Close()

	var schedules []models.IncomeSchedule
	for rows.Next() {
		var s models.IncomeSchedule
		if err := rows.Scan(&s.ID, &s.ProjectID, &s.ClientID, &s.Amount, &s.ScheduledDate,
			&s.ActualDate, &s.IncomeType, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan income schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// SumScheduledIncome sums SCHEDULED and RECEIVED income with scheduled date
// in the inclusive range.
func (r *Repository) SumScheduledIncome(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(s.amount), 0)
		FROM genba.income_schedules s
		JOIN genba.projects p ON p.id = s.project_id
		WHERE p.company_id = $1
		  AND s.scheduled_date >= $2 AND s.scheduled_date <= $3
		  AND s.status IN ('SCHEDULED', 'RECEIVED')`
	err := r.db.QueryRowContext(ctx, query, companyID, start, end).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum scheduled income: %w", err)
	}
	return total, nil
}

// SumScheduledIncomeByClientType splits the scheduled income sum between
// general contractor clients and everyone else, for the cash-flow table.
func (r *Repository) SumScheduledIncomeByClientType(ctx context.Context, companyID string, start, end time.Time) (general, other decimal.Decimal, err error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN c.type = 'GENERAL_CONTRACTOR' THEN s.amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN c.type <> 'GENERAL_CONTRACTOR' THEN s.amount ELSE 0 END), 0)
		FROM genba.income_schedules s
		JOIN genba.projects p ON p.id = s.project_id
		JOIN genba.clients c ON c.id = s.client_id
		WHERE p.company_id = $1
		  AND s.scheduled_date >= $2 AND s.scheduled_date <= $3
		  AND s.status IN ('SCHEDULED', 'RECEIVED')`
	err = r.db.QueryRowContext(ctx, query, companyID, start, end).Scan(&general, &other)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum scheduled income by client type: %w", err)
	}
	return general, other, nil
}

// ListOverdueIncome retrieves every OVERDUE income schedule for the company
// with its project name, for the alert deriver.
func (r *Repository) ListOverdueIncome(ctx context.Context, companyID string) ([]forecast.OverdueIncome, error) {
	query := `
		SELECT p.name, s.amount
		FROM genba.income_schedules s
		JOIN genba.projects p ON p.id = s.project_id
		WHERE p.company_id = $1 AND s.status = 'OVERDUE'
		ORDER BY s.scheduled_date`
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue income: %w", err)
	}
	defer rows.Close()

	var overdue []forecast.OverdueIncome
	for rows.Next() {
		var o forecast.OverdueIncome
		if err := rows.Scan(&o.ProjectName, &o.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan overdue income: %w", err)
		}
		overdue = append(overdue, o)
	}
	return overdue, rows.Err()
}

// MarkOverdueSchedules flips SCHEDULED income past its date to OVERDUE and
// returns the affected rows for notification fan-out.
func (r *Repository) MarkOverdueSchedules(ctx context.Context, asOf time.Time) ([]OverdueFlip, error) {
	query := `
		WITH flipped AS (
			UPDATE genba.income_schedules
			SET status = 'OVERDUE', updated_at = CURRENT_TIMESTAMP
			WHERE status = 'SCHEDULED' AND scheduled_date < $1
			RETURNING id, project_id, amount, scheduled_date
		)
		SELECT f.id, f.amount, f.scheduled_date, p.id, p.name, p.company_id
		FROM flipped f
		JOIN genba.projects p ON p.id = f.project_id`
	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to mark overdue schedules: %w", err)
	}
	defer rows.Close()

	var flips []OverdueFlip
	for rows.Next() {
		var f OverdueFlip
		if err := rows.Scan(&f.ScheduleID, &f.Amount, &f.ScheduledDate, &f.ProjectID, &f.ProjectName, &f.CompanyID); err != nil {
			return nil, fmt.Errorf("failed to scan overdue schedule: %w", err)
		}
		flips = append(flips, f)
	}
	return flips, rows.Err()
}

// FindMatchingSchedule finds the oldest SCHEDULED income schedule for the
// project with the exact amount. Returns nil when nothing matches.
func (r *Repository) FindMatchingSchedule(ctx context.Context, projectID string, amount decimal.Decimal) (*models.IncomeSchedule, error) {
	schedule := &models.IncomeSchedule{}
	query := `
		SELECT id, project_id, client_id, amount, scheduled_date, actual_date, income_type, status, created_at, updated_at
		FROM genba.income_schedules
		WHERE project_id = $1 AND status = 'SCHEDULED' AND amount = $2
		ORDER BY scheduled_date
		LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, projectID, amount).
		Scan(&schedule.ID, &schedule.ProjectID, &schedule.ClientID, &schedule.Amount,
			&schedule.ScheduledDate, &schedule.ActualDate, &schedule.IncomeType,
			&schedule.Status, &schedule.CreatedAt, &schedule.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find matching schedule: %w", err)
	}
	return schedule, nil
}

// MarkScheduleReceived flips a schedule to RECEIVED with its actual date
func (r *Repository) MarkScheduleReceived(ctx context.Context, scheduleID string, actualDate time.Time) error {
	query := `
		UPDATE genba.income_schedules
		SET status = 'RECEIVED', actual_date = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, scheduleID, actualDate); err != nil {
		return fmt.Errorf("failed to mark schedule received: %w", err)
	}
	return nil
}
