package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting keys used by the tokenomics service.
const (
	SettingFounderProfitPercentage = "founderProfitPercentage"
	SettingPlatformWalletAddress   = "platformWalletAddress"
	SettingParticipantLimit        = "participantLimit"
)

type Setting struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Key         string    `gorm:"uniqueIndex;not null" json:"key"`
	Value       string    `gorm:"not null" json:"value"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
