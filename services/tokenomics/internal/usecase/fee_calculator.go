package usecase

import (
	"coinpitch/services/tokenomics/internal/entity"
	"coinpitch/services/tokenomics/internal/repo/persistent"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// defaultFees is the canonical charge per transaction type, used when no
// fee_<type> setting overrides it.
var defaultFees = map[entity.TransactionType]decimal.Decimal{
	entity.TypeAdSubmission:   decimal.RequireFromString("0.025"),
	entity.TypeVote:           decimal.RequireFromString("0.005"),
	entity.TypeProgressUpdate: decimal.Zero,
	entity.TypeNFTMinting:     decimal.RequireFromString("0.01"),
}

var genericFee = decimal.RequireFromString("0.01")

// FeeCalculator computes the platform/founder split for a transaction
// amount. It is read-only over settings and has no other state, so two
// calls under the same settings always agree.
type FeeCalculator struct {
	settingsRepo persistent.SettingsRepository
}

func NewFeeCalculator(settingsRepo persistent.SettingsRepository) *FeeCalculator {
	return &FeeCalculator{settingsRepo: settingsRepo}
}

// Breakdown splits amount between founder profit and platform fee using the
// founder percentage in effect right now. Transactions processed under
// different settings values keep the split they were created with.
func (c *FeeCalculator) Breakdown(amount decimal.Decimal, txType entity.TransactionType) entity.FeeBreakdown {
	pct := c.founderPercentage()
	founderProfit := amount.Mul(pct).Div(hundred)
	platformFee := amount.Sub(founderProfit)

	return entity.FeeBreakdown{
		TotalAmount:    amount,
		PlatformFee:    platformFee,
		FounderProfit:  founderProfit,
		PlatformWallet: c.PlatformWallet(),
	}
}

// FeeForType returns the canonical amount to charge for a transaction type.
// This is the price of an action, not the split of an amount; the two fee
// notions are deliberately separate.
func (c *FeeCalculator) FeeForType(txType entity.TransactionType) decimal.Decimal {
	if setting, err := c.settingsRepo.Get(entity.FeeSettingPrefix + string(txType)); err == nil {
		if fee, err := decimal.NewFromString(setting.Value); err == nil {
			return fee
		}
	}
	if fee, ok := defaultFees[txType]; ok {
		return fee
	}
	return genericFee
}

func (c *FeeCalculator) PlatformWallet() string {
	if setting, err := c.settingsRepo.Get(entity.KeyPlatformWalletAddress); err == nil && setting.Value != "" {
		return setting.Value
	}
	return entity.DefaultPlatformWallet
}

func (c *FeeCalculator) founderPercentage() decimal.Decimal {
	if setting, err := c.settingsRepo.Get(entity.KeyFounderProfitPercentage); err == nil {
		if pct, err := decimal.NewFromString(setting.Value); err == nil {
			return pct
		}
	}
	return decimal.RequireFromString(entity.DefaultFounderPercentage)
}
