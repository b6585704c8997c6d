package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment request statuses
const (
	PaymentPending  = "PENDING"
	PaymentApproved = "APPROVED"
	PaymentRejected = "REJECTED"
	PaymentPaid     = "PAID"
)

// Payment categories
const (
	CategorySubcontracting = "SUBCONTRACTING"
	CategoryMaterial       = "MATERIAL"
	CategoryEquipment      = "EQUIPMENT"
	CategoryTransport      = "TRANSPORT"
	CategoryOther          = "OTHER"
)

// PaymentRequest represents a pending or resolved outgoing payment
type PaymentRequest struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	RequesterID string          `json:"requester_id"`
	ClientID    string          `json:"client_id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	DesiredDate time.Time       `json:"desired_date"`
	Status      string          `json:"status"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ApprovalLog records an approve/reject decision on a payment request
type ApprovalLog struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id"`
	ApproverID string    `json:"approver_id"`
	Action     string    `json:"action"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
