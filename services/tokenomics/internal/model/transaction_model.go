package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionModel struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID          string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount          string    `gorm:"type:numeric(30,6);not null" json:"amount"`
	Type            string    `gorm:"type:varchar(20);not null;index" json:"type"`
	PlatformFee     string    `gorm:"type:numeric(30,6);not null" json:"platform_fee"`
	FounderProfit   string    `gorm:"type:numeric(30,6);not null" json:"founder_profit"`
	TransactionHash string    `gorm:"uniqueIndex;not null" json:"transaction_hash"`
	Status          string    `gorm:"type:varchar(20);default:'confirmed'" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
