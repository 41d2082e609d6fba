package usecase

import (
	"fmt"

	"coinpitch/pkg/logger"
	"coinpitch/services/tokenomics/internal/entity"
	"coinpitch/services/tokenomics/internal/repo/persistent"
)

// SettingsUseCase exposes the admin-facing settings operations. The ledger
// itself only ever reads settings; deletion is not supported at all.
type SettingsUseCase struct {
	settingsRepo persistent.SettingsRepository
	logger       *logger.Logger
}

func NewSettingsUseCase(settingsRepo persistent.SettingsRepository, logger *logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// EnsureDefaults seeds the baseline settings at process start. Existing
// values are left untouched so admin overrides survive restarts.
func (uc *SettingsUseCase) EnsureDefaults() error {
	defaults := []struct {
		key, value, description string
	}{
		{entity.KeyFounderProfitPercentage, entity.DefaultFounderPercentage, "Founder share of every transaction, in percent"},
		{entity.KeyPlatformWalletAddress, entity.DefaultPlatformWallet, "Wallet receiving contest payments"},
		{entity.KeyParticipantLimit, entity.DefaultParticipantLimit, "Maximum participant registrations for the contest"},
	}

	for _, d := range defaults {
		if _, err := uc.settingsRepo.Get(d.key); err == nil {
			continue
		}
		if _, err := uc.settingsRepo.CreateOrUpdate(d.key, d.value, d.description); err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", d.key, err)
		}
		uc.logger.Info("Seeded default setting %s=%s", d.key, d.value)
	}
	return nil
}

func (uc *SettingsUseCase) List() ([]*entity.Setting, error) {
	settings, err := uc.settingsRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list settings: %v", err)
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

func (uc *SettingsUseCase) Update(key, value, description string) (*entity.Setting, error) {
	if key == "" || value == "" {
		return nil, fmt.Errorf("key and value are required")
	}
	setting, err := uc.settingsRepo.CreateOrUpdate(key, value, description)
	if err != nil {
		uc.logger.Error("Failed to update setting %s: %v", key, err)
		return nil, fmt.Errorf("failed to update setting: %w", err)
	}
	return setting, nil
}
