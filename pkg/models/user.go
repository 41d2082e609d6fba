package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleViewer      UserRole = "viewer"
	RoleParticipant UserRole = "participant"
	RoleAdmin       UserRole = "admin"
)

type User struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	Username      string    `gorm:"uniqueIndex;not null" json:"username"`
	Password      string    `gorm:"not null" json:"-"`
	Role          UserRole  `gorm:"type:varchar(20);default:'viewer'" json:"role"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
