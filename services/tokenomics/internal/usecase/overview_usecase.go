package usecase

import (
	"fmt"

	"coinpitch/pkg/logger"
	"coinpitch/services/tokenomics/internal/entity"
	"coinpitch/services/tokenomics/internal/repo/persistent"

	"github.com/shopspring/decimal"
)

// TokenDistribution is the intended token-governance split. It is static
// configuration, not derived from ledger data, and the two must not be
// conflated in the API surface.
var TokenDistribution = map[string]int{
	"founder":      30,
	"operations":   25,
	"marketing":    15,
	"participants": 15,
	"partners":     10,
	"publicSale":   5,
}

// OverviewUseCase derives platform-wide summary statistics by scanning the
// full transaction set on every call. O(n) per call is accepted at contest
// scale; do not optimize without changing the staleness contract.
type OverviewUseCase struct {
	txRepo  persistent.TransactionRepository
	feeCalc *FeeCalculator
	logger  *logger.Logger
}

func NewOverviewUseCase(txRepo persistent.TransactionRepository, feeCalc *FeeCalculator, logger *logger.Logger) *OverviewUseCase {
	return &OverviewUseCase{
		txRepo:  txRepo,
		feeCalc: feeCalc,
		logger:  logger,
	}
}

func (uc *OverviewUseCase) Overview() (*entity.TokenomicsOverview, error) {
	founderProfit, err := uc.txRepo.FounderProfitTotal()
	if err != nil {
		uc.logger.Error("Failed to get founder profit total: %v", err)
		return nil, fmt.Errorf("failed to get founder profit total: %w", err)
	}

	totalFees := decimal.Zero
	count := 0
	for _, txType := range entity.KnownTypes {
		transactions, err := uc.txRepo.GetByType(txType)
		if err != nil {
			uc.logger.Error("Failed to get %s transactions: %v", txType, err)
			return nil, fmt.Errorf("failed to get transactions: %w", err)
		}
		for _, transaction := range transactions {
			amount, err := decimal.NewFromString(transaction.Amount)
			if err != nil {
				return nil, fmt.Errorf("corrupt amount on transaction %s: %w", transaction.ID, err)
			}
			totalFees = totalFees.Add(amount)
		}
		count += len(transactions)
	}

	platformOperations := totalFees.Sub(founderProfit)

	return &entity.TokenomicsOverview{
		TotalFeesCollected: totalFees.StringFixed(6),
		FounderProfit:      founderProfit.StringFixed(6),
		PlatformOperations: platformOperations.StringFixed(6),
		TransactionCount:   count,
		Distribution:       TokenDistribution,
		PlatformWallet:     uc.feeCalc.PlatformWallet(),
	}, nil
}

func (uc *OverviewUseCase) RecentTransactions(limit int) ([]*entity.Transaction, error) {
	transactions, err := uc.txRepo.GetRecent(limit)
	if err != nil {
		uc.logger.Error("Failed to get recent transactions: %v", err)
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

func (uc *OverviewUseCase) TransactionsByType(txType entity.TransactionType) ([]*entity.Transaction, error) {
	transactions, err := uc.txRepo.GetByType(txType)
	if err != nil {
		uc.logger.Error("Failed to get %s transactions: %v", txType, err)
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}
