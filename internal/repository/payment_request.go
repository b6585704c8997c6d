package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/genbahq/cashsignal/internal/models"
)

// CreatePaymentRequest creates a new payment request in the database
func (r *Repository) CreatePaymentRequest(ctx context.Context, request *models.PaymentRequest) error {
	query := `
		INSERT INTO genba.payment_requests (id, project_id, requester_id, client_id, amount, category, desired_date, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		request.ID, request.ProjectID, request.RequesterID, request.ClientID,
		request.Amount, request.Category, request.DesiredDate, request.Status, request.Note).
		Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment request: %w", err)
	}
	return nil
}

// FindPaymentRequestByID retrieves a payment request by id
func (r *Repository) FindPaymentRequestByID(ctx context.Context, id string) (*models.PaymentRequest, error) {
	request := &models.PaymentRequest{}
	query := `
		SELECT id, project_id, requester_id, client_id, amount, category, desired_date, status, note, created_at, updated_at
		FROM genba.payment_requests
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&request.ID, &request.ProjectID, &request.RequesterID, &request.ClientID,
			&request.Amount, &request.Category, &request.DesiredDate, &request.Status,
			&request.Note, &request.CreatedAt, &request.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("payment request %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment request: %w", err)
	}
	return request, nil
}

// FindPaymentRequestWithCompany retrieves a payment request joined to the
// company owning its project. Implements the impact previewer's source.
func (r *Repository) FindPaymentRequestWithCompany(ctx context.Context, id string) (*models.PaymentRequest, *models.Company, error) {
	request := &models.PaymentRequest{}
	company := &models.Company{}
	query := `
		SELECT pr.id, pr.project_id, pr.requester_id, pr.client_id, pr.amount, pr.category, pr.desired_date, pr.status, pr.note, pr.created_at, pr.updated_at,
		       c.id, c.name, c.bank_balance, c.danger_line, c.created_at, c.updated_at
		FROM genba.payment_requests pr
		JOIN genba.projects p ON p.id = pr.project_id
		JOIN genba.companies c ON c.id = p.company_id
		WHERE pr.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&request.ID, &request.ProjectID, &request.RequesterID, &request.ClientID,
			&request.Amount, &request.Category, &request.DesiredDate, &request.Status,
			&request.Note, &request.CreatedAt, &request.UpdatedAt,
			&company.ID, &company.Name, &company.BankBalance, &company.DangerLine,
			&company.CreatedAt, &company.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("payment request %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find payment request: %w", err)
	}
	return request, company, nil
}

// ListPaymentRequests retrieves payment requests for a company, newest first,
// optionally filtered by project and status.
func (r *Repository) ListPaymentRequests(ctx context.Context, companyID string, projectID, status *string) ([]models.PaymentRequest, error) {
	query := `
		SELECT pr.id, pr.project_id, pr.requester_id, pr.client_id, pr.amount, pr.category, pr.desired_date, pr.status, pr.note, pr.created_at, pr.updated_at
		FROM genba.payment_requests pr
		JOIN genba.projects p ON p.id = pr.project_id
		WHERE p.company_id = $1`
	args := []interface{}{companyID}
	if projectID != nil {
		args = append(args, *projectID)
		query += fmt.Sprintf(` AND pr.project_id = $%d`, len(args))
	}
	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(` AND pr.status = $%d`, len(args))
	}
	query += ` ORDER BY pr.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment requests: %w", err)
	}
	defer rows.Close()

	var requests []models.PaymentRequest
	for rows.Next() {
		var pr models.PaymentRequest
		if err := rows.Scan(&pr.ID, &pr.ProjectID, &pr.RequesterID, &pr.ClientID, &pr.Amount,
			&pr.Category, &pr.DesiredDate, &pr.Status, &pr.Note, &pr.CreatedAt, &pr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment request: %w", err)
		}
		requests = append(requests, pr)
	}
	return requests, rows.Err()
}

// ResolvePaymentRequest updates the request status and writes the approval
// log row in one database transaction.
func (r *Repository) ResolvePaymentRequest(ctx context.Context, log *models.ApprovalLog, status string) (*models.PaymentRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	request := &models.PaymentRequest{}
	query := `
		UPDATE genba.payment_requests
		SET status = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, project_id, requester_id, client_id, amount, category, desired_date, status, note, created_at, updated_at`
	err = tx.QueryRowContext(ctx, query, log.RequestID, status).
		Scan(&request.ID, &request.ProjectID, &request.RequesterID, &request.ClientID,
			&request.Amount, &request.Category, &request.DesiredDate, &request.Status,
			&request.Note, &request.CreatedAt, &request.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("payment request %s: %w", log.RequestID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update payment request: %w", err)
	}

	logQuery := `
		INSERT INTO genba.approval_logs (id, request_id, approver_id, action, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err = tx.QueryRowContext(ctx, logQuery, log.ID, log.RequestID, log.ApproverID, log.Action, log.Comment).
		Scan(&log.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create approval log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return request, nil
}

// SumApprovedAndPendingExpense sums APPROVED and PENDING payment requests
// with desired date in the inclusive range. The pessimistic aggregate.
func (r *Repository) SumApprovedAndPendingExpense(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error) {
	return r.sumExpense(ctx, companyID, start, end, []string{models.PaymentApproved, models.PaymentPending})
}

// SumApprovedExpense sums APPROVED payment requests only. The optimistic
// aggregate used by the chart.
func (r *Repository) SumApprovedExpense(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, error) {
	return r.sumExpense(ctx, companyID, start, end, []string{models.PaymentApproved})
}

func (r *Repository) sumExpense(ctx context.Context, companyID string, start, end time.Time, statuses []string) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(pr.amount), 0)
		FROM genba.payment_requests pr
		JOIN genba.projects p ON p.id = pr.project_id
		WHERE p.company_id = $1
		  AND pr.desired_date >= $2 AND pr.desired_date <= $3
		  AND pr.status = ANY($4)`
	err := r.db.QueryRowContext(ctx, query, companyID, start, end, pq.Array(statuses)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expense: %w", err)
	}
	return total, nil
}

// CountPendingPayments returns the count and total amount of PENDING payment
// requests for the company.
func (r *Repository) CountPendingPayments(ctx context.Context, companyID string) (int, decimal.Decimal, error) {
	var count int
	var total decimal.Decimal
	query := `
		SELECT COUNT(*), COALESCE(SUM(pr.amount), 0)
		FROM genba.payment_requests pr
		JOIN genba.projects p ON p.id = pr.project_id
		WHERE p.company_id = $1 AND pr.status = 'PENDING'`
	err := r.db.QueryRowContext(ctx, query, companyID).Scan(&count, &total)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to count pending payments: %w", err)
	}
	return count, total, nil
}

// SumExpenseByCategory breaks payment request amounts down by category for
// the company, restricted to the given statuses and optional date range.
func (r *Repository) SumExpenseByCategory(ctx context.Context, companyID string, start, end *time.Time, statuses []string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT pr.category, COALESCE(SUM(pr.amount), 0)
		FROM genba.payment_requests pr
		JOIN genba.projects p ON p.id = pr.project_id
		WHERE p.company_id = $1 AND pr.status = ANY($2)`
	args := []interface{}{companyID, pq.Array(statuses)}
	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(` AND pr.desired_date >= $%d`, len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(` AND pr.desired_date <= $%d`, len(args))
	}
	query += ` GROUP BY pr.category`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expense by category: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var category string
		var amount decimal.Decimal
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan category sum: %w", err)
		}
		totals[category] = amount
	}
	return totals, rows.Err()
}

// SumProjectExpenseByCategory breaks one project's payment request amounts
// down by category, restricted to the given statuses.
func (r *Repository) SumProjectExpenseByCategory(ctx context.Context, projectID string, statuses []string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM genba.payment_requests
		WHERE project_id = $1 AND status = ANY($2)
		GROUP BY category`
	rows, err := r.db.QueryContext(ctx, query, projectID, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("failed to sum project expense by category: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var category string
		var amount decimal.Decimal
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan category sum: %w", err)
		}
		totals[category] = amount
	}
	return totals, rows.Err()
}
