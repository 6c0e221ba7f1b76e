// Package seed fills an empty database with a default user and a sample
// exchange so a fresh install can be tried end to end.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	authdto "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/dto"
	authrepo "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/repository"
	authusecase "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/usecase"
	exchangedto "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/dto"
	exchangeusecase "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/usecase"

	"go.uber.org/zap"
)

// DefaultExchangeTitle is the title of the seeded sample exchange.
const DefaultExchangeTitle = "First Exchange."

//go:embed data/exchange1.json
var defaultExchange []byte

// Admin is the account created when no user exists yet.
type Admin struct {
	Email    string
	Password string
	Name     string
}

type Seeder struct {
	authUsecase     authusecase.AuthUsecase
	userRepo        authrepo.UserRepository
	exchangeUsecase exchangeusecase.ExchangeUsecase
	admin           Admin
	log             *zap.Logger
}

func NewSeeder(authUc authusecase.AuthUsecase, userRepo authrepo.UserRepository, exchangeUc exchangeusecase.ExchangeUsecase, admin Admin, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{
		authUsecase:     authUc,
		userRepo:        userRepo,
		exchangeUsecase: exchangeUc,
		admin:           admin,
		log:             log.Named("seed"),
	}
}

// Run seeds each table only when it is empty, so it is safe on every start.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedDefaultUser(ctx); err != nil {
		return err
	}
	return s.seedDefaultExchange(ctx)
}

func (s *Seeder) seedDefaultUser(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		s.log.Info("users already exist, skipping user seed")
		return nil
	}

	_, err = s.authUsecase.SignUp(ctx, &authdto.SignUpRequest{
		Email:    s.admin.Email,
		Password: s.admin.Password,
		Name:     s.admin.Name,
	})
	if err != nil {
		return fmt.Errorf("seed default user: %w", err)
	}

	s.log.Info("default user seeded", zap.String("email", s.admin.Email))
	return nil
}

func (s *Seeder) seedDefaultExchange(ctx context.Context) error {
	count, err := s.exchangeUsecase.CountExchanges(ctx)
	if err != nil {
		return fmt.Errorf("count exchanges: %w", err)
	}
	if count > 0 {
		s.log.Info("exchanges already exist, skipping exchange seed")
		return nil
	}

	req := exchangedto.CreateExchangeRequest{Title: DefaultExchangeTitle}
	if err := json.Unmarshal(defaultExchange, &req.Content); err != nil {
		return fmt.Errorf("decode default exchange: %w", err)
	}

	exchange, err := s.exchangeUsecase.CreateExchange(ctx, req.Title, req.ToSegments())
	if err != nil {
		return fmt.Errorf("seed default exchange: %w", err)
	}

	s.log.Info("default exchange seeded",
		zap.String("exchange_id", exchange.ID),
		zap.Int("messages", len(exchange.Messages)))
	return nil
}
