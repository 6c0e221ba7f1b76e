package usecase

import (
	"context"

	authdomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/domain"
	authdto "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	SignUp(ctx context.Context, req *authdto.SignUpRequest) (*authdto.TokenResponse, error)
	SignIn(ctx context.Context, req *authdto.SignInRequest) (*authdto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*authdto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// ValidateToken resolves an access token to its user
	ValidateToken(ctx context.Context, token string) (*authdomain.User, error)
	GetProfile(ctx context.Context, userID string) (*authdomain.User, error)
}
