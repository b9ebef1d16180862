package security

import (
	"Photoshare/internal/api/config"
	"Photoshare/internal/pkg/consts"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.NoError(t, CheckPasswordHash("secret-password", hash))
	assert.Error(t, CheckPasswordHash("wrong", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Issuer: "test", ExpireHour: 1},
	}

	token, err := GenerateToken(42, consts.RoleModerator)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, consts.RoleModerator, claims.Role)
	assert.Equal(t, "test", claims.Issuer)
}

func TestValidateToken_Garbage(t *testing.T) {
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Issuer: "test", ExpireHour: 1},
	}

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestCanManage(t *testing.T) {
	// 属主
	assert.True(t, CanManage(1, consts.RoleUser, 1))
	// 其他普通用户
	assert.False(t, CanManage(2, consts.RoleUser, 1))
	// moderator 和 admin 可管理任意资源
	assert.True(t, CanManage(2, consts.RoleModerator, 1))
	assert.True(t, CanManage(2, consts.RoleAdmin, 1))
}
