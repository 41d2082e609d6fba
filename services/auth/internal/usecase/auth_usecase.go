package usecase

import (
	"fmt"
	"strconv"

	"coinpitch/pkg/jwt"
	"coinpitch/pkg/logger"
	"coinpitch/services/auth/internal/entity"
	"coinpitch/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const (
	participantLimitKey     = "participantLimit"
	defaultParticipantLimit = 50
)

type AuthUseCase interface {
	Register(email, username, password string, role entity.UserRole) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo     persistent.UserRepository
	settingsRepo persistent.SettingsReader
	jwtService   *jwt.Service
	logger       *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	settingsRepo persistent.SettingsReader,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

func (uc *authUseCase) Register(email, username, password string, role entity.UserRole) (*entity.User, string, error) {
	if role != entity.RoleViewer && role != entity.RoleParticipant {
		return nil, "", fmt.Errorf("invalid role")
	}

	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", fmt.Errorf("user with this email already exists")
	}

	_, err = uc.userRepo.GetByUsername(username)
	if err == nil {
		return nil, "", fmt.Errorf("username already taken")
	}

	if role == entity.RoleParticipant {
		count, err := uc.userRepo.CountByRole(entity.RoleParticipant)
		if err != nil {
			uc.logger.Error("Failed to count participants: %v", err)
			return nil, "", fmt.Errorf("failed to process registration")
		}
		if count >= int64(uc.participantLimit()) {
			return nil, "", fmt.Errorf("participant limit reached")
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
		IsActive: true,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("account is deactivated")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) participantLimit() int {
	value, err := uc.settingsRepo.GetValue(participantLimitKey)
	if err != nil {
		return defaultParticipantLimit
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		return defaultParticipantLimit
	}
	return limit
}
