package usecase

import (
	"time"

	"coinpitch/services/tokenomics/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeSettingsRepo struct {
	values map[string]*entity.Setting
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: make(map[string]*entity.Setting)}
}

func (f *fakeSettingsRepo) Get(key string) (*entity.Setting, error) {
	if setting, ok := f.values[key]; ok {
		return setting, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSettingsRepo) CreateOrUpdate(key, value, description string) (*entity.Setting, error) {
	setting := &entity.Setting{
		Key:         key,
		Value:       value,
		Description: description,
		UpdatedAt:   time.Now(),
	}
	f.values[key] = setting
	return setting, nil
}

func (f *fakeSettingsRepo) List() ([]*entity.Setting, error) {
	settings := make([]*entity.Setting, 0, len(f.values))
	for _, setting := range f.values {
		settings = append(settings, setting)
	}
	return settings, nil
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	createErr    error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{}
}

func (f *fakeTransactionRepo) Create(transaction *entity.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	transaction.CreatedAt = time.Now()
	copied := *transaction
	f.transactions = append(f.transactions, &copied)
	return nil
}

func (f *fakeTransactionRepo) GetByType(txType entity.TransactionType) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, transaction := range f.transactions {
		if transaction.Type == txType {
			result = append(result, transaction)
		}
	}
	return result, nil
}

func (f *fakeTransactionRepo) GetRecent(limit int) ([]*entity.Transaction, error) {
	if limit <= 0 || limit > len(f.transactions) {
		limit = len(f.transactions)
	}
	result := make([]*entity.Transaction, 0, limit)
	for i := len(f.transactions) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, f.transactions[i])
	}
	return result, nil
}

func (f *fakeTransactionRepo) FounderProfitTotal() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, transaction := range f.transactions {
		profit, err := decimal.NewFromString(transaction.FounderProfit)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(profit)
	}
	return total, nil
}

type fakeUserRepo struct {
	users   map[string]*entity.User
	created int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetOrCreateByUsername(username string) (*entity.User, error) {
	if user, ok := f.users[username]; ok {
		return user, nil
	}
	user := &entity.User{
		ID:       uuid.New().String(),
		Username: username,
		Role:     "viewer",
	}
	f.users[username] = user
	f.created++
	return user, nil
}
