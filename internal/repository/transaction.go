package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/genbahq/cashsignal/internal/models"
)

// CreateTransaction records a realized cash movement
func (r *Repository) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO genba.transactions (id, project_id, client_id, type, amount, date, category, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		tx.ID, tx.ProjectID, tx.ClientID, tx.Type, tx.Amount, tx.Date, tx.Category, tx.Description).
		Scan(&tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListTransactions retrieves transactions for a company, newest first,
// optionally filtered by project and date range.
func (r *Repository) ListTransactions(ctx context.Context, companyID string, projectID *string, start, end *time.Time) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.project_id, t.client_id, t.type, t.amount, t.date, t.category, t.description, t.created_at
		FROM genba.transactions t
		JOIN genba.projects p ON p.id = t.project_id
		WHERE p.company_id = $1`
	args := []interface{}{companyID}
	if projectID != nil {
		args = append(args, *projectID)
		query += fmt.Sprintf(` AND t.project_id = $%d`, len(args))
	}
	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(` AND t.date >= $%d`, len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(` AND t.date <= $%d`, len(args))
	}
	query += ` ORDER BY t.date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.ClientID, &t.Type, &t.Amount, &t.Date,
			&t.Category, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// SumTransactionDelta returns income minus expense over realized transactions
// for the company with date in the inclusive range.
func (r *Repository) SumTransactionDelta(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error) {
	var delta decimal.Decimal
	query := `
		SELECT COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.amount ELSE -t.amount END), 0)
		FROM genba.transactions t
		JOIN genba.projects p ON p.id = t.project_id
		WHERE p.company_id = $1 AND t.date >= $2 AND t.date <= $3`
	err := r.db.QueryRowContext(ctx, query, companyID, start, end).Scan(&delta)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transaction delta: %w", err)
	}
	return delta, nil
}

// SumProjectTransactions returns the all-time transaction total of one type
// for a single project.
func (r *Repository) SumProjectTransactions(ctx context.Context, projectID, txType string) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM genba.transactions
		WHERE project_id = $1 AND type = $2`
	err := r.db.QueryRowContext(ctx, query, projectID, txType).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum project transactions: %w", err)
	}
	return total, nil
}

// SumCompanyTransactions returns the company-wide transaction total of one
// type with date in the inclusive range.
func (r *Repository) SumCompanyTransactions(ctx context.Context, companyID, txType string, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM genba.transactions t
		JOIN genba.projects p ON p.id = t.project_id
		WHERE p.company_id = $1 AND t.type = $2 AND t.date >= $3 AND t.date <= $4`
	err := r.db.QueryRowContext(ctx, query, companyID, txType, start, end).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum company transactions: %w", err)
	}
	return total, nil
}
