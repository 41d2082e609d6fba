package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdStatus string

const (
	StatusPending  AdStatus = "pending"
	StatusApproved AdStatus = "approved"
	StatusRejected AdStatus = "rejected"
)

type Ad struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID    string    `gorm:"type:uuid;not null;index" json:"author_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	TargetURL   string    `gorm:"not null" json:"target_url"`
	CreativeURL string    `json:"creative_url"`
	Status      AdStatus  `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a *Ad) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
