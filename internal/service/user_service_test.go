package service

import (
	"Photoshare/internal/api/config"
	"Photoshare/internal/api/dto"
	"Photoshare/internal/pkg/consts"
	"Photoshare/internal/pkg/queue"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserService(t *testing.T) (UserService, *mockUserRepo) {
	t.Helper()
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Issuer: "test", ExpireHour: 1},
	}
	userRepo := newMockUserRepo()
	emailQueue := queue.NewQueue(testRedis(), consts.QueueEmailKey, 3, 1)
	return NewUserService(userRepo, emailQueue), userRepo
}

func TestRegister(t *testing.T) {
	svc, _ := setupUserService(t)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, consts.RoleUser, user.Role)
	assert.Equal(t, consts.UserStatusActive, user.Status)
	assert.NotZero(t, user.ID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Name: "Other", Username: "alice", Email: "other@example.com", Password: "secret-password",
	})
	assert.ErrorIs(t, err, ErrUserUsernameExist)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Name: "Other", Username: "other", Email: "alice@example.com", Password: "secret-password",
	})
	assert.ErrorIs(t, err, ErrUserEmailExist)
}

func TestLogin(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "secret-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice", result.User.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLogin_Inactive(t *testing.T) {
	svc, userRepo := setupUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "secret-password",
	})
	require.NoError(t, err)
	userRepo.users[user.ID].Status = consts.UserStatusInactive

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "secret-password"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestSetStatus(t *testing.T) {
	svc, userRepo := setupUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, user.ID, consts.UserStatusInactive))
	assert.Equal(t, consts.UserStatusInactive, userRepo.users[user.ID].Status)

	err = svc.SetStatus(ctx, user.ID, consts.UserStatusInactive)
	assert.ErrorIs(t, err, ErrNothingUpdated)
}

func TestSetStatus_UserNotFound(t *testing.T) {
	svc, _ := setupUserService(t)

	err := svc.SetStatus(context.Background(), 999, consts.UserStatusInactive)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResetPassword(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "secret-password",
	})
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, user.ID, &dto.ResetPasswordRequest{
		OldPassword: "wrong", NewPassword: "another-password",
	})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	err = svc.ResetPassword(ctx, user.ID, &dto.ResetPasswordRequest{
		OldPassword: "secret-password", NewPassword: "another-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "another-password"})
	require.NoError(t, err)
}
