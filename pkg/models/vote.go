package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vote struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	AdID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_votes_ad_user" json:"ad_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_votes_ad_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
