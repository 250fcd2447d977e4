// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/quotastic/quotastic/internal/domain"
	"github.com/quotastic/quotastic/internal/moderation"
	"github.com/quotastic/quotastic/internal/platform/metrics"
	"github.com/quotastic/quotastic/internal/ports"
)

// QuoteService orchestrates the quote pipeline: structural validation, then
// moderation, then the store - in that order, with no store mutation before
// both gates pass. It depends on port interfaces, not concrete
// implementations.
type QuoteService struct {
	store      ports.QuoteStore
	classifier moderation.Classifier
	metrics    *metrics.Registry
	logger     *slog.Logger

	// Process-lifetime event counters, reset only on restart. These feed
	// stats snapshots; the Prometheus registry is updated alongside.
	added   atomic.Int64
	blocked atomic.Int64
}

// QuoteServiceConfig contains dependencies for the quote service.
type QuoteServiceConfig struct {
	Store      ports.QuoteStore
	Classifier moderation.Classifier
	Metrics    *metrics.Registry
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Store and Classifier are required; Metrics and Logger default sensibly.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteService requires a store")
	}
	if cfg.Classifier == nil {
		panic("app: QuoteService requires a classifier")
	}

	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &QuoteService{
		store:      cfg.Store,
		classifier: cfg.Classifier,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
	}
}

// Submit runs a candidate quote through validation and moderation, then
// stores it. The inputs are raw decoded JSON values; the validation pipeline
// owns presence and type checking. Rejections happen before any store
// mutation, and moderation never runs on structurally invalid input.
func (s *QuoteService) Submit(ctx context.Context, text, author any) (*domain.Quote, error) {
	sub, err := domain.NormalizeSubmission(text, author)
	if err != nil {
		return nil, err
	}

	if result := moderation.Classify(s.classifier, sub.Text, sub.Author); !result.Valid {
		s.blocked.Add(1)
		s.metrics.ProfanityBlocked.Inc()

		s.logger.InfoContext(ctx, "submission blocked by moderation",
			slog.String("field", result.Field),
		)

		return nil, domain.NewModerationError(result.Field, result.Reason)
	}

	quote, err := s.store.Add(ctx, sub)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store quote",
			slog.Any("error", err),
		)
		return nil, err
	}

	s.added.Add(1)
	s.metrics.QuotesAdded.Inc()

	s.logger.InfoContext(ctx, "quote added",
		slog.Int64("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return quote, nil
}

// Random retrieves a random quote. The store increments the quote's view
// counter as part of the read. An empty store yields (nil, nil).
func (s *QuoteService) Random(ctx context.Context) (*domain.Quote, error) {
	quote, err := s.store.Random(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch random quote",
			slog.Any("error", err),
		)
		return nil, err
	}

	if quote == nil {
		return nil, nil
	}

	s.metrics.QuotesServed.Inc()

	return quote, nil
}

// List returns all live quotes in creation order.
func (s *QuoteService) List(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list quotes",
			slog.Any("error", err),
		)
		return nil, err
	}

	return quotes, nil
}

// Delete removes a quote by id and reports whether a deletion occurred.
// A missing id is a normal false outcome, not an error.
func (s *QuoteService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete quote",
			slog.Int64("quote_id", id),
			slog.Any("error", err),
		)
		return false, err
	}

	s.logger.InfoContext(ctx, "delete processed",
		slog.Int64("quote_id", id),
		slog.Bool("deleted", deleted),
	)

	return deleted, nil
}

// Snapshot merges a fresh store count with the process-lifetime event
// counters. It is read-only: calling it repeatedly with no intervening
// writes returns identical values.
func (s *QuoteService) Snapshot(ctx context.Context) (domain.StatsSnapshot, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read store stats",
			slog.Any("error", err),
		)
		return domain.StatsSnapshot{}, err
	}

	return domain.StatsSnapshot{
		TotalQuotes:      stats.TotalQuotes,
		TotalViews:       stats.TotalViews,
		QuotesAdded:      s.added.Load(),
		ProfanityBlocked: s.blocked.Load(),
	}, nil
}
