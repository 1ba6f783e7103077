package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/reelrank/core/internal/model"
	users_mocks "github.com/reelrank/core/internal/service/auth/mocks/users"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	userID := uuid.New().String()

	token, err := manager.Generate(userID, "Ada", "https://example.com/ada.png")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "https://example.com/ada.png", claims.Picture)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).Generate(uuid.New().String(), "", "")
	assert.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)
	token, err := manager.Generate(uuid.New().String(), "", "")
	assert.NoError(t, err)

	_, err = manager.Verify(token)
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	manager := NewJWTManager("test-secret", time.Hour)
	userID := uuid.New()

	t.Run("resolves a valid token and ensures the user", func(t *testing.T) {
		users := users_mocks.NewUserRepository(t)
		service := New(manager, users)

		stored := model.User{ID: userID, DisplayName: "Ada"}
		users.On("Ensure", ctx, model.User{ID: userID, DisplayName: "Ada"}).Return(stored, nil).Once()

		token, err := manager.Generate(userID.String(), "Ada", "")
		assert.NoError(t, err)

		user, err := service.Authenticate(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		users := users_mocks.NewUserRepository(t)
		service := New(manager, users)

		_, err := service.Authenticate(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects tokens with a non-uuid subject", func(t *testing.T) {
		users := users_mocks.NewUserRepository(t)
		service := New(manager, users)

		token, err := manager.Generate("user-7", "", "")
		assert.NoError(t, err)

		_, err = service.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
