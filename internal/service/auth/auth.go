package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/reelrank/core/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrInternal     = errors.New("internal error")
)

//go:generate mockery --name=UserRepository --output=./mocks/users --filename=users.go
type UserRepository interface {
	// Ensure creates the user on first sight and refreshes the profile fields
	// on subsequent calls, returning the stored row.
	Ensure(ctx context.Context, user model.User) (model.User, error)
}

// Service resolves bearer tokens into users. Identity itself is owned by the
// token issuer; the service only verifies signatures and keeps a local user
// row for attribution.
type Service struct {
	jwt   *JWTManager
	users UserRepository
}

func New(jwt *JWTManager, users UserRepository) *Service {
	return &Service{jwt: jwt, users: users}
}

func (s *Service) Authenticate(ctx context.Context, token string) (model.User, error) {
	claims, err := s.jwt.Verify(token)
	if err != nil {
		return model.User{}, errors.Join(ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.User{}, errors.Join(ErrInvalidToken, err)
	}

	user, err := s.users.Ensure(ctx, model.User{
		ID:          userID,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
	})
	if err != nil {
		return model.User{}, errors.Join(ErrInternal, err)
	}
	return user, nil
}
