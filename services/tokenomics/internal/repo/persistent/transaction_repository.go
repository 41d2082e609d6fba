package persistent

import (
	"coinpitch/services/tokenomics/internal/entity"
	"coinpitch/services/tokenomics/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(transaction *entity.Transaction) error
	GetByType(txType entity.TransactionType) ([]*entity.Transaction, error)
	GetRecent(limit int) ([]*entity.Transaction, error)
	FounderProfitTotal() (decimal.Decimal, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(transaction *entity.Transaction) error {
	transactionModel := ToTransactionModel(transaction)
	if err := r.db.Create(transactionModel).Error; err != nil {
		return err
	}
	// id and timestamp are assigned on insert
	transaction.ID = transactionModel.ID
	transaction.CreatedAt = transactionModel.CreatedAt
	return nil
}

func (r *transactionRepository) GetByType(txType entity.TransactionType) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	if err := r.db.Where("type = ?", string(txType)).Order("created_at DESC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = ToTransactionEntity(&transactionModels[i])
	}
	return transactions, nil
}

func (r *transactionRepository) GetRecent(limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = ToTransactionEntity(&transactionModels[i])
	}
	return transactions, nil
}

// FounderProfitTotal is the running sum of founder_profit across every
// transaction ever processed.
func (r *transactionRepository) FounderProfitTotal() (decimal.Decimal, error) {
	var total string
	err := r.db.Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(founder_profit), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(total)
}
