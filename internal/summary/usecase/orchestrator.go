package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	exchangedomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/domain"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/ai"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/apperror"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const unknownSpeaker = "Unknown Speaker"

// Orchestrator turns an exchange transcript into a raw summary document by
// asking the oracle. It never retries: a failed call is reported as
// apperror.ErrUpstream, an unparseable reply as apperror.ErrUpstreamFormat.
type Orchestrator struct {
	oracle  ai.SummaryOracle
	sem     *semaphore.Weighted
	timeout time.Duration
	metrics *metrics.Recorder
	log     *zap.Logger
}

// OrchestratorConfig bounds oracle calls. Timeout applies separately to the
// wait for a free slot and to the call itself. Zero values mean no timeout
// and a single call in flight.
type OrchestratorConfig struct {
	Timeout        time.Duration
	MaxConcurrency int64
}

// NewOrchestrator creates an Orchestrator. recorder and log may be nil.
func NewOrchestrator(oracle ai.SummaryOracle, cfg OrchestratorConfig, recorder *metrics.Recorder, log *zap.Logger) *Orchestrator {
	if cfg.MaxConcurrency < 1 {
		cfg.MaxConcurrency = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		oracle:  oracle,
		sem:     semaphore.NewWeighted(cfg.MaxConcurrency),
		timeout: cfg.Timeout,
		metrics: recorder,
		log:     log.Named("orchestrator"),
	}
}

// FormatTranscript renders one "<speaker>: <text>" line per segment.
func FormatTranscript(segments []exchangedomain.Segment) (string, error) {
	lines := make([]string, 0, len(segments))
	for i, seg := range segments {
		if !utf8.ValidString(seg.Speaker) || !utf8.ValidString(seg.Text) {
			return "", fmt.Errorf("transcript segment %d is not valid UTF-8: %w", i, apperror.ErrUpstreamFormat)
		}
		speaker := strings.TrimSpace(seg.Speaker)
		if speaker == "" {
			speaker = unknownSpeaker
		}
		lines = append(lines, speaker+": "+seg.Text)
	}
	return strings.Join(lines, "\n"), nil
}

// Summarize formats segments, calls the oracle and returns its reply as raw
// JSON. The reply is only checked for JSON syntax; shape validation is the
// normalizer's job.
func (o *Orchestrator) Summarize(ctx context.Context, segments []exchangedomain.Segment) (json.RawMessage, error) {
	transcript, err := FormatTranscript(segments)
	if err != nil {
		return nil, err
	}

	if err := o.acquire(ctx); err != nil {
		return nil, err
	}
	defer o.sem.Release(1)

	callCtx := ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	provider := o.oracle.Provider()
	start := time.Now()
	reply, err := o.oracle.GenerateSummaryJSON(callCtx, transcript)
	elapsed := time.Since(start)

	if err != nil {
		outcome := "error"
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			outcome = "timeout"
		}
		o.metrics.ObserveOracleCall(provider, outcome, elapsed)
		o.log.Warn("oracle call failed",
			zap.String("provider", provider),
			zap.String("outcome", outcome),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return nil, fmt.Errorf("%s call failed: %v: %w", provider, err, apperror.ErrUpstream)
	}

	raw := json.RawMessage(strings.TrimSpace(stripCodeFence(reply)))
	if !json.Valid(raw) {
		o.metrics.ObserveOracleCall(provider, "format_error", elapsed)
		o.log.Warn("oracle reply is not JSON",
			zap.String("provider", provider),
			zap.Int("reply_bytes", len(reply)))
		return nil, fmt.Errorf("%s reply is not valid JSON: %w", provider, apperror.ErrUpstreamFormat)
	}

	o.metrics.ObserveOracleCall(provider, "ok", elapsed)
	o.log.Info("oracle call succeeded",
		zap.String("provider", provider),
		zap.Duration("elapsed", elapsed),
		zap.Int("segments", len(segments)))
	return raw, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models add even in
// JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return s
}

// acquire waits at most the configured timeout for a free oracle slot.
func (o *Orchestrator) acquire(ctx context.Context) error {
	waitCtx := ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := o.sem.Acquire(waitCtx, 1); err != nil {
		provider := o.oracle.Provider()
		o.metrics.ObserveOracleCall(provider, "busy", time.Since(start))
		o.log.Warn("no free oracle slot",
			zap.String("provider", provider),
			zap.Duration("waited", time.Since(start)),
			zap.Error(err))
		return fmt.Errorf("waiting for oracle slot: %v: %w", err, apperror.ErrUpstream)
	}
	return nil
}
