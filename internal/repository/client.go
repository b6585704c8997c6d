package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/genbahq/cashsignal/internal/models"
)

// CreateClient creates a new client in the database
func (r *Repository) CreateClient(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO genba.clients (id, company_id, name, type, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, client.ID, client.CompanyID, client.Name, client.Type).
		Scan(&client.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// FindClientByID retrieves a client by id
func (r *Repository) FindClientByID(ctx context.Context, id string) (*models.Client, error) {
	client := &models.Client{}
	query := `
		SELECT id, company_id, name, type, created_at
		FROM genba.clients
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&client.ID, &client.CompanyID, &client.Name, &client.Type, &client.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("client %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

// ListClients retrieves all clients for a company
func (r *Repository) ListClients(ctx context.Context, companyID string) ([]models.Client, error) {
	query := `
		SELECT id, company_id, name, type, created_at
		FROM genba.clients
		WHERE company_id = $1
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Type, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
