package persistent

import (
	"coinpitch/services/auth/internal/entity"
	"coinpitch/services/auth/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		Username:      m.Username,
		Password:      m.Password,
		Role:          entity.UserRole(m.Role),
		WalletAddress: m.WalletAddress,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:            e.ID,
		Email:         e.Email,
		Username:      e.Username,
		Password:      e.Password,
		Role:          string(e.Role),
		WalletAddress: e.WalletAddress,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
