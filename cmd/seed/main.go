package main

import (
	"flag"
	"fmt"

	"coinpitch/pkg/config"
	"coinpitch/pkg/database"
	"coinpitch/pkg/logger"
	"coinpitch/pkg/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	var withDemo bool
	flag.BoolVar(&withDemo, "demo", false, "Seed demo participants, ads and transactions")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log, withDemo); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger, withDemo bool) error {
	if err := seedSettings(db, log); err != nil {
		return err
	}

	admin, err := seedUser(db, log, "admin@coinpitch.local", "admin", "admin123", models.RoleAdmin)
	if err != nil {
		return err
	}
	log.Info("Admin user ready: %s", admin.Username)

	if !withDemo {
		return nil
	}

	demoUsers := []struct {
		email    string
		username string
		role     models.UserRole
	}{
		{"alice@coinpitch.local", "alice_pitch", models.RoleParticipant},
		{"bob@coinpitch.local", "bob_pitch", models.RoleParticipant},
		{"carol@coinpitch.local", "carol_pitch", models.RoleViewer},
	}

	users := make([]*models.User, 0, len(demoUsers))
	for _, u := range demoUsers {
		user, err := seedUser(db, log, u.email, u.username, "password123", u.role)
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	for i, user := range users[:2] {
		ad := &models.Ad{
			AuthorID:    user.ID,
			Title:       fmt.Sprintf("Demo pitch %d", i+1),
			Description: "Seeded contest ad",
			TargetURL:   "https://example.com",
			Status:      models.StatusApproved,
		}

		var existing models.Ad
		if db.Where("author_id = ? AND title = ?", ad.AuthorID, ad.Title).First(&existing).Error == nil {
			log.Info("Ad %q already exists, skipping", ad.Title)
			continue
		}

		if err := db.Create(ad).Error; err != nil {
			return fmt.Errorf("failed to create demo ad: %w", err)
		}
		log.Info("Created demo ad: %s", ad.Title)

		if err := seedTransaction(db, user.ID, models.TransactionTypeAdSubmission, "0.025", i); err != nil {
			return err
		}
	}

	return nil
}

func seedSettings(db *gorm.DB, log *logger.Logger) error {
	defaults := []models.Setting{
		{Key: models.SettingFounderProfitPercentage, Value: "30", Description: "Founder share of each platform fee, percent"},
		{Key: models.SettingPlatformWalletAddress, Value: "0x7F9c47B8E1d4a2305C9a0Db5E8f3D6a1b42C8e90", Description: "Wallet that receives platform fees"},
		{Key: models.SettingParticipantLimit, Value: "50", Description: "Maximum number of contest participants"},
	}

	for _, setting := range defaults {
		var existing models.Setting
		if db.Where("key = ?", setting.Key).First(&existing).Error == nil {
			log.Info("Setting %s already exists, skipping", setting.Key)
			continue
		}

		if err := db.Create(&setting).Error; err != nil {
			return fmt.Errorf("failed to create setting %s: %w", setting.Key, err)
		}
		log.Info("Created setting: %s=%s", setting.Key, setting.Value)
	}
	return nil
}

func seedUser(db *gorm.DB, log *logger.Logger, email, username, password string, role models.UserRole) (*models.User, error) {
	var existing models.User
	if db.Where("email = ? OR username = ?", email, username).First(&existing).Error == nil {
		log.Info("User %s already exists, skipping", username)
		return &existing, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", username, err)
	}

	log.Info("Created user: %s (%s)", user.Username, user.Email)
	return user, nil
}

func seedTransaction(db *gorm.DB, userID string, txType models.TransactionType, amount string, n int) error {
	total, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	founderProfit := total.Mul(decimal.NewFromInt(30)).Div(decimal.NewFromInt(100))
	platformFee := total.Sub(founderProfit)

	txn := &models.Transaction{
		UserID:          userID,
		Amount:          total.StringFixed(6),
		Type:            txType,
		PlatformFee:     platformFee.StringFixed(6),
		FounderProfit:   founderProfit.StringFixed(6),
		TransactionHash: fmt.Sprintf("seed_%s_%d", txType, n),
		Status:          "confirmed",
	}

	var existing models.Transaction
	if db.Where("transaction_hash = ?", txn.TransactionHash).First(&existing).Error == nil {
		return nil
	}
	return db.Create(txn).Error
}
