package entity

import "time"

type UserRole string

const (
	RoleViewer      UserRole = "viewer"
	RoleParticipant UserRole = "participant"
	RoleAdmin       UserRole = "admin"
)

type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	Password      string    `json:"-"`
	Role          UserRole  `json:"role"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
