package repository

import (
	"context"

	authdomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/domain"
)

// UserRepository defines the interface for user and refresh token storage.
// Finders return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *authdomain.User) error
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
	Count(ctx context.Context) (int64, error)

	SaveRefreshToken(ctx context.Context, token *authdomain.RefreshToken) error
	FindRefreshToken(ctx context.Context, token string) (*authdomain.RefreshToken, error)
	// DeleteRefreshToken reports whether a stored token was removed.
	DeleteRefreshToken(ctx context.Context, token string) (bool, error)
}
