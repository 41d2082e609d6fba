package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeAdSubmission   TransactionType = "adSubmission"
	TransactionTypeVote           TransactionType = "vote"
	TransactionTypeProgressUpdate TransactionType = "progressUpdate"
	TransactionTypeNFTMinting     TransactionType = "nftMinting"
)

// Transaction is one ledger entry. Amounts are stored as fixed 6-decimal
// strings; records are never updated after creation.
type Transaction struct {
	ID              string          `gorm:"type:uuid;primary_key" json:"id"`
	UserID          string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount          string          `gorm:"type:numeric(30,6);not null" json:"amount"`
	Type            TransactionType `gorm:"type:varchar(20);not null;index" json:"type"`
	PlatformFee     string          `gorm:"type:numeric(30,6);not null" json:"platform_fee"`
	FounderProfit   string          `gorm:"type:numeric(30,6);not null" json:"founder_profit"`
	TransactionHash string          `gorm:"uniqueIndex;not null" json:"transaction_hash"`
	Status          string          `gorm:"type:varchar(20);default:'confirmed'" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
