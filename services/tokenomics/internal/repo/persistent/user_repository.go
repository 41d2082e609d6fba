package persistent

import (
	"coinpitch/services/tokenomics/internal/entity"
	"coinpitch/services/tokenomics/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	GetOrCreateByUsername(username string) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

// GetOrCreateByUsername backs the webhook fallback user. The same record is
// reused on every subsequent call.
func (r *userRepository) GetOrCreateByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.Where("username = ?", username).First(&userModel).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		userModel = model.UserModel{
			Username: username,
			Email:    username + "@coinpitch.local",
			Password: "-",
			Role:     "viewer",
			IsActive: true,
		}
		if err := r.db.Create(&userModel).Error; err != nil {
			return nil, err
		}
	}
	return ToUserEntity(&userModel), nil
}
