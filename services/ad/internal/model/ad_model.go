package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID    string    `gorm:"type:uuid;not null;index" json:"author_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	TargetURL   string    `gorm:"not null" json:"target_url"`
	CreativeURL string    `json:"creative_url"`
	Status      string    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (AdModel) TableName() string {
	return "ads"
}

func (a *AdModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

type VoteModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	AdID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_votes_ad_user" json:"ad_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_votes_ad_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (VoteModel) TableName() string {
	return "votes"
}

func (v *VoteModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

type SettingModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Key         string    `gorm:"uniqueIndex;not null" json:"key"`
	Value       string    `gorm:"not null" json:"value"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (SettingModel) TableName() string {
	return "settings"
}
