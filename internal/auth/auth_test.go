package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/storage"
	"github.com/splitease/backend/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestShadowUsername(t *testing.T) {
	tests := []struct {
		name   string
		member string
		tripID string
		want   string
	}{
		{"simple", "Priya", "abcdef12-3456", "priya.abcdef12"},
		{"multi word", "Ravi Kumar", "abcdef12-3456", "ravi.kumar.abcdef12"},
		{"extra whitespace", "  Ravi   Kumar ", "abcdef12-3456", "ravi.kumar.abcdef12"},
		{"short trip id", "Priya", "abc", "priya.abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShadowUsername(tt.member, tt.tripID))
		})
	}

	t.Run("deterministic", func(t *testing.T) {
		a := ShadowUsername("Priya", "trip-1-aaaa")
		b := ShadowUsername("Priya", "trip-1-aaaa")
		assert.Equal(t, a, b)
		assert.NotEqual(t, a, ShadowUsername("Priya", "trip-2-bbbb"))
	})
}

func TestResolve(t *testing.T) {
	store := newTestStore(t)
	provisioner := NewShadowProvisioner(store)
	ctx := context.Background()

	t.Run("links registered account case-insensitively", func(t *testing.T) {
		registered := models.NewUser("priya", "", "some-hash")
		require.NoError(t, store.CreateUser(ctx, registered))

		resolved, err := provisioner.Resolve(ctx, "Priya", "trip-1-aaaa")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, resolved.ID)
	})

	t.Run("provisions and reuses a shadow account", func(t *testing.T) {
		first, err := provisioner.Resolve(ctx, "Ravi Kumar", "trip-1-aaaa")
		require.NoError(t, err)
		assert.True(t, first.IsShadow())
		assert.Equal(t, "Ravi Kumar", first.FirstName)

		second, err := provisioner.Resolve(ctx, "Ravi Kumar", "trip-1-aaaa")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID, "same name on the same trip must reuse the account")

		elsewhere, err := provisioner.Resolve(ctx, "Ravi Kumar", "trip-2-bbbb")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, elsewhere.ID, "same name on another trip is a different person")
	})
}

func TestPasswordAuthenticator(t *testing.T) {
	store := newTestStore(t)
	authenticator := NewPasswordAuthenticator(store)
	ctx := context.Background()

	t.Run("register and authenticate", func(t *testing.T) {
		user, err := authenticator.Register(ctx, "ravi", "Ravi", "password123")
		require.NoError(t, err)
		assert.False(t, user.IsShadow())
		assert.NotEqual(t, "password123", user.PasswordHash)

		got, err := authenticator.Authenticate(ctx, "ravi", "password123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "ravi", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "nobody", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := authenticator.Register(ctx, "other", "", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := authenticator.Register(ctx, "RAVI", "", "password123")
		assert.ErrorIs(t, err, ErrUsernameExists)
	})

	t.Run("shadow accounts cannot log in", func(t *testing.T) {
		shadow := models.NewUser("priya.trip-1-a", "Priya", "")
		require.NoError(t, store.CreateUser(ctx, shadow))

		_, err := authenticator.Authenticate(ctx, "priya.trip-1-a", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret-key", time.Hour)
	user := models.NewUser("ravi", "Ravi", "hash")

	token, err := manager.Generate(user)
	require.NoError(t, err)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ravi", claims.Username)

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := manager.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := NewJWTManager("different-secret", time.Hour)
		otherToken, err := other.Generate(user)
		require.NoError(t, err)

		_, err = manager.Validate(otherToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expiring := NewJWTManager("test-secret-key", -time.Minute)
		expired, err := expiring.Generate(user)
		require.NoError(t, err)

		_, err = manager.Validate(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
