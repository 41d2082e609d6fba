package usecase

import (
	"strings"
	"testing"

	"coinpitch/pkg/logger"
	"coinpitch/services/tokenomics/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor() (*TransactionProcessor, *fakeTransactionRepo, *fakeSettingsRepo) {
	settingsRepo := newFakeSettingsRepo()
	txRepo := newFakeTransactionRepo()
	feeCalc := NewFeeCalculator(settingsRepo)
	processor := NewTransactionProcessor(txRepo, feeCalc, nil, logger.New())
	return processor, txRepo, settingsRepo
}

func TestProcess_WorkedExample(t *testing.T) {
	processor, txRepo, _ := newTestProcessor()

	transaction, err := processor.Process("user-1", decimal.RequireFromString("0.025"), entity.TypeAdSubmission, "")
	require.NoError(t, err)

	// Default 30% founder split of 0.025
	assert.Equal(t, "0.007500", transaction.FounderProfit)
	assert.Equal(t, "0.017500", transaction.PlatformFee)
	assert.Equal(t, "0.025000", transaction.Amount)
	assert.Equal(t, entity.StatusConfirmed, transaction.Status)
	assert.NotEmpty(t, transaction.ID)
	assert.Len(t, txRepo.transactions, 1)
}

func TestProcess_SynthesizesHash(t *testing.T) {
	processor, _, _ := newTestProcessor()

	first, err := processor.Process("user-1", decimal.RequireFromString("0.005"), entity.TypeVote, "")
	require.NoError(t, err)
	second, err := processor.Process("user-1", decimal.RequireFromString("0.005"), entity.TypeVote, "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.TransactionHash, "tx_"))
	assert.True(t, strings.HasPrefix(second.TransactionHash, "tx_"))
	// Unique even when both calls land in the same millisecond
	assert.NotEqual(t, first.TransactionHash, second.TransactionHash)
}

func TestProcess_UsesProvidedHash(t *testing.T) {
	processor, _, _ := newTestProcessor()

	transaction, err := processor.Process("user-1", decimal.RequireFromString("0.01"), entity.TypeNFTMinting, "0xdeadbeef")
	require.NoError(t, err)

	assert.Equal(t, "0xdeadbeef", transaction.TransactionHash)
}

func TestProcess_RejectsNonPositiveAmount(t *testing.T) {
	processor, txRepo, _ := newTestProcessor()

	_, err := processor.Process("user-1", decimal.Zero, entity.TypeVote, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = processor.Process("user-1", decimal.RequireFromString("-0.005"), entity.TypeVote, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Empty(t, txRepo.transactions)
}

func TestProcess_RejectsUnknownType(t *testing.T) {
	processor, txRepo, _ := newTestProcessor()

	_, err := processor.Process("user-1", decimal.NewFromInt(1), entity.TransactionType("donation"), "")
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Empty(t, txRepo.transactions)
}

func TestProcess_SettingsChangeBetweenCalls(t *testing.T) {
	processor, _, settingsRepo := newTestProcessor()
	amount := decimal.NewFromInt(1)

	settingsRepo.CreateOrUpdate(entity.KeyFounderProfitPercentage, "30", "")
	first, err := processor.Process("user-1", amount, entity.TypeAdSubmission, "")
	require.NoError(t, err)

	settingsRepo.CreateOrUpdate(entity.KeyFounderProfitPercentage, "50", "")
	second, err := processor.Process("user-1", amount, entity.TypeAdSubmission, "")
	require.NoError(t, err)

	// Each record keeps the split in effect at its own creation time
	assert.Equal(t, "0.300000", first.FounderProfit)
	assert.Equal(t, "0.700000", first.PlatformFee)
	assert.Equal(t, "0.500000", second.FounderProfit)
	assert.Equal(t, "0.500000", second.PlatformFee)
	assert.NotEqual(t, first.FounderProfit, second.FounderProfit)
}

func TestProcess_PersistFailure(t *testing.T) {
	settingsRepo := newFakeSettingsRepo()
	txRepo := newFakeTransactionRepo()
	txRepo.createErr = assert.AnError
	processor := NewTransactionProcessor(txRepo, NewFeeCalculator(settingsRepo), nil, logger.New())

	_, err := processor.Process("user-1", decimal.NewFromInt(1), entity.TypeVote, "")
	assert.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
