package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	api "github.com/aladdin-code/addvocate-meeting-summeriser/cmd/api"
	authdomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/domain"
	authRepo "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/repository"
	authUsecase "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/usecase"
	exchangedomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/domain"
	exchangeRepo "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/repository"
	exchangeUsecase "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/usecase"
	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/seed"
	summarydomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/domain"
	summaryRepo "github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/repository"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/config"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/database"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds everything both commands need.
type app struct {
	cfg        *config.Config
	log        *zap.Logger
	db         *gorm.DB
	userRepo   authRepo.UserRepository
	authUc     authUsecase.AuthUsecase
	exchangeUc exchangeUsecase.ExchangeUsecase
}

func main() {
	root := &cobra.Command{
		Use:           "addvocate",
		Short:         "Exchange transcripts and AI meeting summaries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default user and sample exchange if the tables are empty",
		RunE:  runSeed,
	}
	root.AddCommand(serveCmd, seedCmd)
	root.RunE = runServe

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bootstrap() (*app, error) {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{}, &authdomain.RefreshToken{},
		&exchangedomain.Exchange{}, &exchangedomain.Message{},
		&summarydomain.Summary{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	// Initialize repositories and use cases (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	return &app{
		cfg:        cfg,
		log:        log,
		db:         db,
		userRepo:   userRepo,
		authUc:     authUsecase.NewAuthUsecase(userRepo, cfg),
		exchangeUc: exchangeUsecase.NewExchangeUsecase(exchangeRepo.NewGormExchangeRepository(db), log),
	}, nil
}

func (a *app) seeder() *seed.Seeder {
	return seed.NewSeeder(a.authUc, a.userRepo, a.exchangeUc, seed.Admin{
		Email:    a.cfg.SeedAdminEmail,
		Password: a.cfg.SeedAdminPassword,
		Name:     a.cfg.SeedAdminName,
	}, a.log)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.cfg.SeedOnStart {
		if err := a.seeder().Run(ctx); err != nil {
			a.log.Error("seeding failed", zap.Error(err))
		}
	}

	// Initialize HTTP handler
	handler := api.NewHandler(a.cfg, a.log, a.authUc, a.exchangeUc, summaryRepo.NewGormSummaryRepository(a.db), nil)

	return handler.Start(ctx, ":"+a.cfg.Port)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	return a.seeder().Run(cmd.Context())
}
