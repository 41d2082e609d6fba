package persistent

import (
	"coinpitch/services/tokenomics/internal/entity"
	"coinpitch/services/tokenomics/internal/model"
)

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		Type:            entity.TransactionType(m.Type),
		PlatformFee:     m.PlatformFee,
		FounderProfit:   m.FounderProfit,
		TransactionHash: m.TransactionHash,
		Status:          m.Status,
		CreatedAt:       m.CreatedAt,
	}
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:              e.ID,
		UserID:          e.UserID,
		Amount:          e.Amount,
		Type:            string(e.Type),
		PlatformFee:     e.PlatformFee,
		FounderProfit:   e.FounderProfit,
		TransactionHash: e.TransactionHash,
		Status:          e.Status,
		CreatedAt:       e.CreatedAt,
	}
}

func ToSettingEntity(m *model.SettingModel) *entity.Setting {
	if m == nil {
		return nil
	}

	return &entity.Setting{
		Key:         m.Key,
		Value:       m.Value,
		Description: m.Description,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}
