package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeAdSubmission   TransactionType = "adSubmission"
	TypeVote           TransactionType = "vote"
	TypeProgressUpdate TransactionType = "progressUpdate"
	TypeNFTMinting     TransactionType = "nftMinting"
)

// KnownTypes lists every transaction type the ledger aggregates over.
var KnownTypes = []TransactionType{
	TypeAdSubmission,
	TypeVote,
	TypeProgressUpdate,
	TypeNFTMinting,
}

// ParseTransactionType rejects unknown labels at construction time so a
// bad type can never fall out of the overview aggregation silently.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeAdSubmission, TypeVote, TypeProgressUpdate, TypeNFTMinting:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

const StatusConfirmed = "confirmed"

// Transaction is an immutable ledger entry. Amount, PlatformFee and
// FounderProfit are fixed 6-decimal strings and always satisfy
// PlatformFee + FounderProfit == Amount.
type Transaction struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Amount          string          `json:"amount"`
	Type            TransactionType `json:"type"`
	PlatformFee     string          `json:"platform_fee"`
	FounderProfit   string          `json:"founder_profit"`
	TransactionHash string          `json:"transaction_hash"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// FeeBreakdown is the split of one gross amount between the platform and
// the founder, computed against the settings in effect at call time.
type FeeBreakdown struct {
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PlatformFee    decimal.Decimal `json:"platform_fee"`
	FounderProfit  decimal.Decimal `json:"founder_profit"`
	PlatformWallet string          `json:"platform_wallet"`
}

// TokenomicsOverview is recomputed from the full transaction set on every
// request; nothing here is cached or maintained incrementally.
type TokenomicsOverview struct {
	TotalFeesCollected string         `json:"total_fees_collected"`
	FounderProfit      string         `json:"founder_profit"`
	PlatformOperations string         `json:"platform_operations"`
	TransactionCount   int            `json:"transaction_count"`
	Distribution       map[string]int `json:"distribution"`
	PlatformWallet     string         `json:"platform_wallet"`
}

// SimulationReport summarizes one simulator run.
type SimulationReport struct {
	AdTransactions   int    `json:"ad_transactions"`
	VoteTransactions int    `json:"vote_transactions"`
	TotalProfit      string `json:"total_profit"`
}
