package models

import "time"

// Client types
const (
	ClientGeneralContractor = "GENERAL_CONTRACTOR"
	ClientSubcontractor     = "SUBCONTRACTOR"
)

// Client represents a business counterparty (general contractor or subcontractor)
type Client struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
