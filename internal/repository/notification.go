package repository

import (
	"context"
	"fmt"

	"github.com/genbahq/cashsignal/internal/models"
)

// CreateNotification creates a new in-app notification
func (r *Repository) CreateNotification(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO genba.notifications (id, user_id, type, title, message, link_url, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, n.ID, n.UserID, n.Type, n.Title, n.Message, n.LinkURL).
		Scan(&n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListNotifications retrieves the newest 50 notifications for a user
func (r *Repository) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, link_url, is_read, created_at
		FROM genba.notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 50`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.LinkURL, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// CountUnreadNotifications returns the unread notification count for a user
func (r *Repository) CountUnreadNotifications(ctx context.Context, userID string) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM genba.notifications
		WHERE user_id = $1 AND is_read = FALSE`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkNotificationRead flags a notification as read
func (r *Repository) MarkNotificationRead(ctx context.Context, id string) error {
	query := `
		UPDATE genba.notifications
		SET is_read = TRUE
		WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
