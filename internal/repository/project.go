package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/genbahq/cashsignal/internal/models"
)

// ProjectTotals carries a project row with its realized transaction totals
type ProjectTotals struct {
	ProjectID      string
	Name           string
	ContractAmount decimal.Decimal
	IncomeTotal    decimal.Decimal
	ExpenseTotal   decimal.Decimal
}

// CreateProject creates a new project in the database
func (r *Repository) CreateProject(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO genba.projects (id, company_id, client_id, foreman_id, name, contract_amount, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		project.ID, project.CompanyID, project.ClientID, project.ForemanID,
		project.Name, project.ContractAmount, project.Status, project.StartDate, project.EndDate).
		Scan(&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// FindProjectByID retrieves a project by id
func (r *Repository) FindProjectByID(ctx context.Context, id string) (*models.Project, error) {
	project := &models.Project{}
	query := `
		SELECT id, company_id, client_id, foreman_id, name, contract_amount, status, start_date, end_date, created_at, updated_at
		FROM genba.projects
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&project.ID, &project.CompanyID, &project.ClientID, &project.ForemanID,
			&project.Name, &project.ContractAmount, &project.Status, &project.StartDate,
			&project.EndDate, &project.CreatedAt, &project.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// UpdateProject updates the mutable fields of a project
func (r *Repository) UpdateProject(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE genba.projects
		SET client_id = $2, foreman_id = $3, name = $4, contract_amount = $5,
		    status = $6, start_date = $7, end_date = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query,
		project.ID, project.ClientID, project.ForemanID, project.Name,
		project.ContractAmount, project.Status, project.StartDate, project.EndDate).
		Scan(&project.UpdatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("project %s: %w", project.ID, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// ListProjects retrieves projects for a company, optionally restricted to a foreman
func (r *Repository) ListProjects(ctx context.Context, companyID string, foremanID *string) ([]models.Project, error) {
	query := `
		SELECT id, company_id, client_id, foreman_id, name, contract_amount, status, start_date, end_date, created_at, updated_at
		FROM genba.projects
		WHERE company_id = $1`
	args := []interface{}{companyID}
	if foremanID != nil {
		query += ` AND foreman_id = $2`
		args = append(args, *foremanID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.ClientID, &p.ForemanID, &p.Name,
			&p.ContractAmount, &p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ProjectWithTotals is a project row carrying its realized totals
type ProjectWithTotals struct {
	models.Project
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
}

// ListProjectsWithTotals retrieves every project for a company with its
// all-time realized income and expense, optionally restricted to a foreman.
func (r *Repository) ListProjectsWithTotals(ctx context.Context, companyID string, foremanID *string) ([]ProjectWithTotals, error) {
	query := `
		SELECT p.id, p.company_id, p.client_id, p.foreman_id, p.name, p.contract_amount, p.status, p.start_date, p.end_date, p.created_at, p.updated_at,
		       COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN t.type = 'EXPENSE' THEN t.amount ELSE 0 END), 0)
		FROM genba.projects p
		LEFT JOIN genba.transactions t ON t.project_id = p.id
		WHERE p.company_id = $1`
	args := []interface{}{companyID}
	if foremanID != nil {
		query += ` AND p.foreman_id = $2`
		args = append(args, *foremanID)
	}
	query += `
		GROUP BY p.id
		ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects with totals: %w", err)
	}
	defer rows.Close()

	var projects []ProjectWithTotals
	for rows.Next() {
		var p ProjectWithTotals
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.ClientID, &p.ForemanID, &p.Name,
			&p.ContractAmount, &p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt,
			&p.IncomeTotal, &p.ExpenseTotal); err != nil {
			return nil, fmt.Errorf("failed to scan project with totals: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListActiveProjectTotals retrieves active projects with their all-time
// realized income and expense totals, optionally restricted to a foreman.
func (r *Repository) ListActiveProjectTotals(ctx context.Context, companyID string, foremanID *string) ([]ProjectTotals, error) {
	query := `
		SELECT p.id, p.name, p.contract_amount,
		       COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN t.type = 'EXPENSE' THEN t.amount ELSE 0 END), 0)
		FROM genba.projects p
		LEFT JOIN genba.transactions t ON t.project_id = p.id
		WHERE p.company_id = $1 AND p.status = 'ACTIVE'`
	args := []interface{}{companyID}
	if foremanID != nil {
		query += ` AND p.foreman_id = $2`
		args = append(args, *foremanID)
	}
	query += `
		GROUP BY p.id, p.name, p.contract_amount, p.created_at
		ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list project totals: %w", err)
	}
	defer rows.Close()

	var totals []ProjectTotals
	for rows.Next() {
		var t ProjectTotals
		if err := rows.Scan(&t.ProjectID, &t.Name, &t.ContractAmount, &t.IncomeTotal, &t.ExpenseTotal); err != nil {
			return nil, fmt.Errorf("failed to scan project totals: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
