package usecase

import (
	"fmt"
	"testing"

	"coinpitch/pkg/jwt"
	"coinpitch/pkg/logger"
	"coinpitch/services/auth/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users     map[string]*entity.User
	createErr error
	nextID    int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) CountByRole(role entity.UserRole) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeSettingsReader struct {
	values map[string]string
}

func (r *fakeSettingsReader) GetValue(key string) (string, error) {
	if value, ok := r.values[key]; ok {
		return value, nil
	}
	return "", gorm.ErrRecordNotFound
}

func newAuthUseCase(userRepo *fakeUserRepo, settings map[string]string) AuthUseCase {
	return NewAuthUseCase(
		userRepo,
		&fakeSettingsReader{values: settings},
		jwt.NewService("test-secret"),
		logger.New(),
	)
}

func TestRegisterReturnsTokenAndUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUseCase(userRepo, nil)

	user, token, err := uc.Register("alice@example.com", "alice", "password123", entity.RoleViewer)
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, entity.RoleViewer, user.Role)
	assert.True(t, user.IsActive)
	assert.Empty(t, user.Password)

	stored := userRepo.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.Password)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUseCase(userRepo, nil)

	_, _, err := uc.Register("alice@example.com", "alice", "password123", entity.RoleViewer)
	require.NoError(t, err)

	_, _, err = uc.Register("alice@example.com", "alice2", "password123", entity.RoleViewer)
	assert.EqualError(t, err, "user with this email already exists")

	_, _, err = uc.Register("alice2@example.com", "alice", "password123", entity.RoleViewer)
	assert.EqualError(t, err, "username already taken")
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	uc := newAuthUseCase(newFakeUserRepo(), nil)

	_, _, err := uc.Register("root@example.com", "root", "password123", entity.RoleAdmin)
	assert.EqualError(t, err, "invalid role")
}

func TestRegisterEnforcesParticipantLimit(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUseCase(userRepo, map[string]string{"participantLimit": "2"})

	for i := 0; i < 2; i++ {
		_, _, err := uc.Register(
			fmt.Sprintf("p%d@example.com", i),
			fmt.Sprintf("participant%d", i),
			"password123",
			entity.RoleParticipant,
		)
		require.NoError(t, err)
	}

	_, _, err := uc.Register("p2@example.com", "participant2", "password123", entity.RoleParticipant)
	assert.EqualError(t, err, "participant limit reached")

	// Viewers are not capped
	_, _, err = uc.Register("v@example.com", "viewer0", "password123", entity.RoleViewer)
	assert.NoError(t, err)
}

func TestRegisterParticipantLimitDefaultsWhenSettingMissing(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUseCase(userRepo, map[string]string{"participantLimit": "not-a-number"})

	_, _, err := uc.Register("p@example.com", "participant", "password123", entity.RoleParticipant)
	assert.NoError(t, err)
}

func TestLoginSuccess(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUseCase(userRepo, nil)

	_, _, err := uc.Register("alice@example.com", "alice", "password123", entity.RoleParticipant)
	require.NoError(t, err)

	user, token, err := uc.Login("alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Password)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUseCase(userRepo, nil)

	_, _, err := uc.Register("alice@example.com", "alice", "password123", entity.RoleViewer)
	require.NoError(t, err)

	_, _, err = uc.Login("alice@example.com", "wrong-password")
	assert.EqualError(t, err, "invalid credentials")

	_, _, err = uc.Login("nobody@example.com", "password123")
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUseCase(userRepo, nil)

	user, _, err := uc.Register("alice@example.com", "alice", "password123", entity.RoleViewer)
	require.NoError(t, err)
	userRepo.users[user.ID].IsActive = false

	_, _, err = uc.Login("alice@example.com", "password123")
	assert.EqualError(t, err, "account is deactivated")
}

func TestGetUserStripsPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUseCase(userRepo, nil)

	created, _, err := uc.Register("alice@example.com", "alice", "password123", entity.RoleViewer)
	require.NoError(t, err)

	user, err := uc.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Password)

	_, err = uc.GetUser("missing")
	assert.Error(t, err)
}
