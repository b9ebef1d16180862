package service

import (
	"Photoshare/internal/model"
	"Photoshare/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFollowService(t *testing.T) (FollowService, *mockUserRepo) {
	t.Helper()
	followRepo := newMockFollowRepo()
	userRepo := newMockUserRepo()
	return NewFollowService(followRepo, userRepo), userRepo
}

func seedUser(t *testing.T, userRepo *mockUserRepo, username string) *model.User {
	t.Helper()
	user := &model.User{
		Name:     username,
		Username: username,
		Email:    username + "@example.com",
		Role:     consts.RoleUser,
		Status:   consts.UserStatusActive,
	}
	require.NoError(t, userRepo.CreateUser(context.Background(), user))
	return user
}

func TestFollow(t *testing.T) {
	svc, userRepo := setupFollowService(t)
	ctx := context.Background()
	alice := seedUser(t, userRepo, "alice")
	bob := seedUser(t, userRepo, "bob")

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))

	err := svc.Follow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrUserFollowExist)
}

func TestFollow_Self(t *testing.T) {
	svc, userRepo := setupFollowService(t)
	alice := seedUser(t, userRepo, "alice")

	err := svc.Follow(context.Background(), alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrUserFollowSelf)
}

func TestFollow_TargetNotFound(t *testing.T) {
	svc, userRepo := setupFollowService(t)
	alice := seedUser(t, userRepo, "alice")

	err := svc.Follow(context.Background(), alice.ID, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUnfollow(t *testing.T) {
	svc, userRepo := setupFollowService(t)
	ctx := context.Background()
	alice := seedUser(t, userRepo, "alice")
	bob := seedUser(t, userRepo, "bob")

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID))

	err := svc.Unfollow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrUserFollowNotFound)
}
