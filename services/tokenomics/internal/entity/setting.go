package entity

import "time"

// Setting keys the ledger reads. Fee overrides use FeeSettingPrefix + the
// transaction type label, e.g. "fee_adSubmission".
const (
	KeyFounderProfitPercentage = "founderProfitPercentage"
	KeyPlatformWalletAddress   = "platformWalletAddress"
	KeyParticipantLimit        = "participantLimit"
	FeeSettingPrefix           = "fee_"
)

// Fallbacks used when a setting is absent or unparsable.
const (
	DefaultFounderPercentage = "30"
	DefaultPlatformWallet    = "0x7F9c47B8E1d4a2305C9a0Db5E8f3D6a1b42C8e90"
	DefaultParticipantLimit  = "50"
)

type Setting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}
