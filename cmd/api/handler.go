package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	authusecase "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/usecase"
	exchangedelivery "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/delivery"
	exchangeusecase "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/usecase"
	summarydelivery "github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/delivery"
	summaryrepo "github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/repository"
	summaryusecase "github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/usecase"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/ai"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/config"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/logger"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	authUsecase     authusecase.AuthUsecase
	exchangeHandler *exchangedelivery.ExchangeHandler
	summaryHandler  *summarydelivery.SummaryHandler
	settingsHandler *SettingsHandler
	metrics         *metrics.Recorder
	config          *config.Config
	log             *zap.Logger
}

// unavailableOracle stands in when no provider could be configured, so the
// rest of the API keeps working and generate requests fail as upstream errors.
type unavailableOracle struct {
	provider string
	err      error
}

func (o unavailableOracle) GenerateSummaryJSON(context.Context, string) (string, error) {
	return "", o.err
}

func (o unavailableOracle) Provider() string { return o.provider }

// NewHandler wires the oracle, the summary lifecycle and the HTTP handlers.
// oracle may be nil, in which case one is built from cfg.
func NewHandler(cfg *config.Config, log *zap.Logger, authUc authusecase.AuthUsecase, exchangeUc exchangeusecase.ExchangeUsecase, summaryRepository summaryrepo.SummaryRepository, oracle ai.SummaryOracle) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("api")

	// Runtime settings start empty so the static model per provider applies
	// until someone overrides it.
	runtime := ai.NewRuntimeSettings("", cfg.OllamaBaseURL)

	if oracle == nil {
		var err error
		oracle, err = ai.NewSummaryOracle(ai.Config{
			Provider:      ai.ProviderType(cfg.AIProvider),
			OpenAIApiKey:  cfg.OpenAIApiKey,
			OpenAIModel:   cfg.OpenAIModel,
			OpenAIBaseURL: cfg.OpenAIBaseURL,
			GeminiApiKey:  cfg.GeminiApiKey,
			GeminiModel:   cfg.GeminiModel,
			OllamaBaseURL: cfg.OllamaBaseURL,
			OllamaModel:   cfg.OllamaModel,
			Runtime:       runtime,
		})
		if err != nil {
			log.Warn("summarization oracle unavailable; generate requests will fail", zap.Error(err))
			oracle = unavailableOracle{provider: cfg.AIProvider, err: err}
		} else {
			log.Info("summarization oracle initialized", zap.String("provider", oracle.Provider()))
		}
	}

	recorder := metrics.NewRecorder()
	orchestrator := summaryusecase.NewOrchestrator(oracle, summaryusecase.OrchestratorConfig{
		Timeout:        cfg.AITimeout,
		MaxConcurrency: cfg.AIMaxConcurrency,
	}, recorder, log)
	summaryUc := summaryusecase.NewSummaryUsecase(summaryRepository, exchangeUc, orchestrator, log)

	return &Handler{
		authUsecase:     authUc,
		exchangeHandler: exchangedelivery.NewExchangeHandler(exchangeUc, summaryUc, cfg.PaginationDefaultLimit, cfg.PaginationMaxLimit),
		summaryHandler:  summarydelivery.NewSummaryHandler(summaryUc),
		settingsHandler: NewSettingsHandler(runtime, oracle.Provider()),
		metrics:         recorder,
		config:          cfg,
		log:             log,
	}
}

// Engine builds the gin engine with middleware and routes.
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware(h.log), h.metrics.GinMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	h.SetupRoutes(r)
	return r
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (h *Handler) Start(ctx context.Context, addr string) error {
	gin.SetMode(h.config.GinMode)

	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.log.Info("server starting", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	h.log.Info("server shutting down")
	// The drain window covers one full oracle call.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.config.AITimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
