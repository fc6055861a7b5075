// Package app contains application services that orchestrate use cases.
// Services depend on ports, read the caller from the session in the context
// and return typed domain errors.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/quotes-api/internal/app/session"
	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/platform/metrics"
	"github.com/jsamuelsen/quotes-api/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// Messages returned by the quote flows.
const (
	MsgQuoteCreated  = "Quote created successfully."
	MsgQuoteNotFound = "Quote not found."
	MsgNotQuoteOwner = "You are not authorized to delete this quote."
	MsgQuoteDeleted  = "Quote deleted successfully."
)

// QuoteService orchestrates quote use cases for the session user.
type QuoteService struct {
	quotes   ports.QuoteRepository
	tags     *TagService
	executor *Executor
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Quotes  ports.QuoteRepository
	Tags    *TagService
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewQuoteService creates a new quote service. It panics if Quotes or Tags
// is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Quotes == nil || cfg.Tags == nil {
		panic("app: NewQuoteService requires Quotes and Tags")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.QuoteService"))

	return &QuoteService{
		quotes:   cfg.Quotes,
		tags:     cfg.Tags,
		executor: NewExecutor(logger),
		metrics:  cfg.Metrics,
		logger:   logger,
	}
}

// List returns the session user's quotes with their tags.
func (s *QuoteService) List(ctx context.Context) ([]domain.Quote, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	quotes, err := s.quotes.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	return quotes, nil
}

type createInput struct {
	userID   int64
	text     string
	tagNames []string
}

// Create stores a quote owned by the session user. Tag names are resolved
// through the tag upsert before the quote is written.
func (s *QuoteService) Create(ctx context.Context, text string, tagNames []string) (quote *domain.Quote, err error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartSpan(ctx, "QuoteService.Create", attribute.Int64("user.id", sess.UserID))
	defer func() { telemetry.EndSpan(span, err) }()

	op := Operation[createInput, []int64, *domain.Quote]{
		Name: "quote.create",
		Load: func(ctx context.Context, in createInput) ([]int64, error) {
			if len(in.tagNames) == 0 {
				return nil, nil
			}

			return s.tags.UpsertTags(ctx, in.tagNames)
		},
		Perform: func(ctx context.Context, in createInput, tagIDs []int64) (*domain.Quote, error) {
			return s.quotes.Create(ctx, domain.NewQuote{
				Text:   in.text,
				UserID: in.userID,
				TagIDs: tagIDs,
			})
		},
	}

	quote, err = Execute(ctx, s.executor, op, createInput{userID: sess.UserID, text: text, tagNames: tagNames})
	if err != nil {
		return nil, err
	}

	s.metrics.QuoteCreated()

	return quote, nil
}

// Delete removes one of the session user's quotes. The existence check runs
// before the ownership check, and neither mutates anything. Tags the quote
// carried are removed afterwards if no other quote uses them.
func (s *QuoteService) Delete(ctx context.Context, id int64) (deleted *domain.Quote, err error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartSpan(ctx, "QuoteService.Delete",
		attribute.Int64("user.id", sess.UserID),
		attribute.Int64("quote.id", id),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	op := Operation[int64, *domain.Quote, *domain.Quote]{
		Name: "quote.delete",
		Load: func(ctx context.Context, id int64) (*domain.Quote, error) {
			q, err := s.quotes.GetByID(ctx, id)
			if err != nil {
				if domain.IsNotFound(err) {
					return nil, domain.NewValidationErrorWithValue("", MsgQuoteNotFound, strconv.FormatInt(id, 10))
				}

				return nil, fmt.Errorf("loading quote: %w", err)
			}

			if !q.OwnedBy(sess.UserID) {
				return nil, domain.NewUnauthorizedError("delete quote", MsgNotQuoteOwner)
			}

			return q, nil
		},
		Perform: func(ctx context.Context, id int64, _ *domain.Quote) (*domain.Quote, error) {
			q, err := s.quotes.Delete(ctx, id)
			if domain.IsNotFound(err) {
				return nil, domain.NewValidationError("", MsgQuoteNotFound)
			}

			return q, err
		},
		Cleanup: func(ctx context.Context, _ int64, loaded, _ *domain.Quote) error {
			if len(loaded.Tags) == 0 {
				return nil
			}

			return s.tags.DeleteOrphanedTags(ctx, loaded.TagIDs())
		},
	}

	deleted, err = Execute(ctx, s.executor, op, id)
	if err != nil {
		return nil, err
	}

	s.metrics.QuoteDeleted()

	return deleted, nil
}
