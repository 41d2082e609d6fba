package usecase

import (
	"fmt"

	"coinpitch/pkg/logger"
	"coinpitch/services/tokenomics/internal/entity"
	"coinpitch/services/tokenomics/internal/repo/persistent"

	"github.com/shopspring/decimal"
)

// Simulator drives the processor with synthetic contest activity so the
// fee-split arithmetic can be verified end to end without real payments.
type Simulator struct {
	processor *TransactionProcessor
	feeCalc   *FeeCalculator
	userRepo  persistent.UserRepository
	logger    *logger.Logger
}

func NewSimulator(
	processor *TransactionProcessor,
	feeCalc *FeeCalculator,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) *Simulator {
	return &Simulator{
		processor: processor,
		feeCalc:   feeCalc,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Run creates count ad-payment transactions and 2*count vote transactions
// for the simulation user, each charged at its canonical fee, and reports
// the founder profit generated by the batch.
func (s *Simulator) Run(count int) (*entity.SimulationReport, error) {
	if count <= 0 {
		return nil, fmt.Errorf("simulation count must be positive")
	}

	user, err := s.userRepo.GetOrCreateByUsername(entity.FallbackUsername)
	if err != nil {
		s.logger.Error("Failed to resolve simulation user: %v", err)
		return nil, fmt.Errorf("failed to resolve simulation user: %w", err)
	}

	totalProfit := decimal.Zero
	adFee := s.feeCalc.FeeForType(entity.TypeAdSubmission)
	voteFee := s.feeCalc.FeeForType(entity.TypeVote)

	ads := 0
	for i := 0; i < count; i++ {
		transaction, err := s.processor.Process(user.ID, adFee, entity.TypeAdSubmission, "")
		if err != nil {
			return nil, fmt.Errorf("simulated ad payment %d failed: %w", i+1, err)
		}
		profit, err := decimal.NewFromString(transaction.FounderProfit)
		if err != nil {
			return nil, err
		}
		totalProfit = totalProfit.Add(profit)
		ads++
	}

	votes := 0
	for i := 0; i < 2*count; i++ {
		transaction, err := s.processor.Process(user.ID, voteFee, entity.TypeVote, "")
		if err != nil {
			return nil, fmt.Errorf("simulated vote %d failed: %w", i+1, err)
		}
		profit, err := decimal.NewFromString(transaction.FounderProfit)
		if err != nil {
			return nil, err
		}
		totalProfit = totalProfit.Add(profit)
		votes++
	}

	s.logger.Info("Simulation complete: %d ads, %d votes, founder profit %s", ads, votes, totalProfit.StringFixed(6))

	return &entity.SimulationReport{
		AdTransactions:   ads,
		VoteTransactions: votes,
		TotalProfit:      totalProfit.StringFixed(6),
	}, nil
}
