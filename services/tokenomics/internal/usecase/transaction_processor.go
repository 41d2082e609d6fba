package usecase

import (
	"fmt"
	"time"

	"coinpitch/pkg/logger"
	"coinpitch/pkg/queue"
	"coinpitch/services/tokenomics/internal/entity"
	"coinpitch/services/tokenomics/internal/repo/persistent"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = fmt.Errorf("transaction amount must be positive")
	ErrUnknownType   = fmt.Errorf("unknown transaction type")
)

// TransactionProcessor is the single write path into the ledger.
type TransactionProcessor struct {
	txRepo      persistent.TransactionRepository
	feeCalc     *FeeCalculator
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewTransactionProcessor(
	txRepo persistent.TransactionRepository,
	feeCalc *FeeCalculator,
	queueClient *queue.Client,
	logger *logger.Logger,
) *TransactionProcessor {
	return &TransactionProcessor{
		txRepo:      txRepo,
		feeCalc:     feeCalc,
		queueClient: queueClient,
		logger:      logger,
	}
}

// Process computes the fee split for one transaction and persists it.
// Non-positive amounts and unknown types are rejected outright rather than
// producing structurally valid but nonsensical records.
func (p *TransactionProcessor) Process(userID string, amount decimal.Decimal, txType entity.TransactionType, txHash string) (*entity.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, err := entity.ParseTransactionType(string(txType)); err != nil {
		return nil, ErrUnknownType
	}

	breakdown := p.feeCalc.Breakdown(amount, txType)

	if txHash == "" {
		txHash = synthesizeHash()
	}

	transaction := &entity.Transaction{
		UserID:          userID,
		Amount:          amount.StringFixed(6),
		Type:            txType,
		PlatformFee:     breakdown.PlatformFee.StringFixed(6),
		FounderProfit:   breakdown.FounderProfit.StringFixed(6),
		TransactionHash: txHash,
		Status:          entity.StatusConfirmed,
	}

	if err := p.txRepo.Create(transaction); err != nil {
		p.logger.Error("Failed to persist transaction: %v", err)
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	// The ledger write is already committed; event delivery is best effort
	if p.queueClient != nil {
		event := queue.LedgerEvent{
			TransactionID:   transaction.ID,
			UserID:          transaction.UserID,
			Type:            string(transaction.Type),
			Amount:          transaction.Amount,
			PlatformFee:     transaction.PlatformFee,
			FounderProfit:   transaction.FounderProfit,
			TransactionHash: transaction.TransactionHash,
		}
		if err := p.queueClient.PublishLedgerEvent(event); err != nil {
			p.logger.Error("Failed to publish ledger event: %v", err)
		}
	}

	return transaction, nil
}

// synthesizeHash keeps the timestamp prefix for display purposes but adds a
// uuid fragment so concurrent calls in the same millisecond cannot collide.
func synthesizeHash() string {
	return fmt.Sprintf("tx_%d_%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}
