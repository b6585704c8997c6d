package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/genbahq/cashsignal/internal/models"
)

// CreateCompany creates a new company in the database
func (r *Repository) CreateCompany(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO genba.companies (id, name, bank_balance, danger_line, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, company.ID, company.Name, company.BankBalance, company.DangerLine).
		Scan(&company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// FindCompanyByID retrieves a company by id
func (r *Repository) FindCompanyByID(ctx context.Context, id string) (*models.Company, error) {
	company := &models.Company{}
	query := `
		SELECT id, name, bank_balance, danger_line, created_at, updated_at
		FROM genba.companies
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&company.ID, &company.Name, &company.BankBalance, &company.DangerLine, &company.CreatedAt, &company.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("company %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return company, nil
}

// UpdateCompanySettings updates the bank balance and danger line
func (r *Repository) UpdateCompanySettings(ctx context.Context, id string, bankBalance, dangerLine decimal.Decimal) error {
	query := `
		UPDATE genba.companies
		SET bank_balance = $2, danger_line = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, bankBalance, dangerLine)
	if err != nil {
		return fmt.Errorf("failed to update company settings: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update company settings: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("company %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListCompanies retrieves every company, used by the daily summary job
func (r *Repository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	query := `
		SELECT id, name, bank_balance, danger_line, created_at, updated_at
		FROM genba.companies
		ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.BankBalance, &c.DangerLine, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}
