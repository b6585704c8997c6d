package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/genbahq/cashsignal/internal/models"
)

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO genba.users (id, company_id, name, email, password_hash, role, notify, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.CompanyID, user.Name, user.Email, user.PasswordHash, user.Role, user.Notify).
		Scan(&user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, company_id, name, email, password_hash, role, notify, created_at
		FROM genba.users
		WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.CompanyID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.Notify, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindUserByID retrieves a user by id
func (r *Repository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, company_id, name, email, password_hash, role, notify, created_at
		FROM genba.users
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.CompanyID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.Notify, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListApprovers retrieves the company's owner and accounting users.
// With notifyOnly set, only users who opted into notifications are returned.
func (r *Repository) ListApprovers(ctx context.Context, companyID string, notifyOnly bool) ([]models.User, error) {
	query := `
		SELECT id, company_id, name, email, password_hash, role, notify, created_at
		FROM genba.users
		WHERE company_id = $1 AND role = ANY($2)`
	if notifyOnly {
		query += ` AND notify = TRUE`
	}
	rows, err := r.db.QueryContext(ctx, query, companyID, pq.Array([]string{models.RoleOwner, models.RoleAccounting}))
	if err != nil {
		return nil, fmt.Errorf("failed to list approvers: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Notify, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
