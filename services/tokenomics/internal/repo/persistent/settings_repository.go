package persistent

import (
	"coinpitch/services/tokenomics/internal/entity"
	"coinpitch/services/tokenomics/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get(key string) (*entity.Setting, error)
	CreateOrUpdate(key, value, description string) (*entity.Setting, error)
	List() ([]*entity.Setting, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(key string) (*entity.Setting, error) {
	var settingModel model.SettingModel
	if err := r.db.Where("key = ?", key).First(&settingModel).Error; err != nil {
		return nil, err
	}
	return ToSettingEntity(&settingModel), nil
}

func (r *settingsRepository) CreateOrUpdate(key, value, description string) (*entity.Setting, error) {
	var settingModel model.SettingModel
	err := r.db.Where("key = ?", key).First(&settingModel).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		settingModel = model.SettingModel{
			Key:         key,
			Value:       value,
			Description: description,
		}
		if err := r.db.Create(&settingModel).Error; err != nil {
			return nil, err
		}
		return ToSettingEntity(&settingModel), nil
	}

	settingModel.Value = value
	if description != "" {
		settingModel.Description = description
	}
	if err := r.db.Save(&settingModel).Error; err != nil {
		return nil, err
	}
	return ToSettingEntity(&settingModel), nil
}

func (r *settingsRepository) List() ([]*entity.Setting, error) {
	var settingModels []model.SettingModel
	if err := r.db.Order("key ASC").Find(&settingModels).Error; err != nil {
		return nil, err
	}

	settings := make([]*entity.Setting, len(settingModels))
	for i := range settingModels {
		settings[i] = ToSettingEntity(&settingModels[i])
	}
	return settings, nil
}
