package models

import "time"

// User roles
const (
	RoleOwner      = "OWNER"
	RoleAccounting = "ACCOUNTING"
	RoleForeman    = "FOREMAN"
)

// User represents a user in the system
type User struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Not serialized
	Role         string    `json:"role"`
	Notify       bool      `json:"notify"`
	CreatedAt    time.Time `json:"created_at"`
}
