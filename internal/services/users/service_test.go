package users

import (
	"context"
	"testing"
	"time"

	"github.com/barterhub/barter-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	return NewService(NewRepository(db), "test-secret", time.Hour)
}

func TestService_RegisterHashesPassword(t *testing.T) {
	svc := setupService(t)

	user, err := svc.Register(context.Background(), "Ada", "Ada@Example.com", "hunter22", "Madrid")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "hunter22", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Impostor", "ada@example.com", "other", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Authenticate(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "hunter22", "")
	require.NoError(t, err)

	t.Run("valid credentials issue a usable token", func(t *testing.T) {
		user, token, err := svc.Authenticate(context.Background(), "ada@example.com", "hunter22")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Authenticate(context.Background(), "ada@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email looks identical to wrong password", func(t *testing.T) {
		_, _, err := svc.Authenticate(context.Background(), "nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_ValidateToken(t *testing.T) {
	svc := setupService(t)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := setupService(t)
		_, err := other.Register(context.Background(), "Eve", "eve@example.com", "pw", "")
		require.NoError(t, err)
		_, token, err := other.Authenticate(context.Background(), "eve@example.com", "pw")
		require.NoError(t, err)

		forged := NewService(NewRepository(nil), "different-secret", time.Hour)
		_, err = forged.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		short := setupService(t)
		short.tokenTTL = -time.Minute
		_, err := short.Register(context.Background(), "Ada", "late@example.com", "pw", "")
		require.NoError(t, err)
		_, token, err := short.Authenticate(context.Background(), "late@example.com", "pw")
		require.NoError(t, err)

		_, err = short.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
