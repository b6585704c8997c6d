package models

import "time"

// Notification types
const (
	NotifyApprovalRequest = "APPROVAL_REQUEST"
	NotifyDangerAlert     = "DANGER_ALERT"
	NotifyDailySummary    = "DAILY_SUMMARY"
	NotifyOverdue         = "OVERDUE"
)

// Notification represents an in-app notification for a user
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	LinkURL   string    `json:"link_url,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
