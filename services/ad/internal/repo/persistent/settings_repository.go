package persistent

import (
	"coinpitch/services/ad/internal/model"

	"gorm.io/gorm"
)

// SettingsReader gives the ad service read access to fee settings.
// Writes stay with the tokenomics service.
type SettingsReader interface {
	GetValue(key string) (string, error)
}

type settingsReader struct {
	db *gorm.DB
}

func NewSettingsReader(db *gorm.DB) SettingsReader {
	return &settingsReader{db: db}
}

func (r *settingsReader) GetValue(key string) (string, error) {
	var settingModel model.SettingModel
	if err := r.db.Where("key = ?", key).First(&settingModel).Error; err != nil {
		return "", err
	}
	return settingModel.Value, nil
}
