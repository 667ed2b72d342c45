// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
	"github.com/jsamuelsen/quotekeeper/internal/ports"
)

// CatalogService orchestrates author and quote use cases.
// It depends on port interfaces, not concrete implementations.
type CatalogService struct {
	authors ports.AuthorRepository
	quotes  ports.QuoteRepository
	logger  *slog.Logger
}

// CatalogServiceConfig contains dependencies for the catalog service.
type CatalogServiceConfig struct {
	Authors ports.AuthorRepository
	Quotes  ports.QuoteRepository
	Logger  *slog.Logger
}

// NewCatalogService creates a new catalog service with the provided dependencies.
// Panics if either repository is nil; a nil logger defaults to slog.Default().
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	if cfg.Authors == nil {
		panic("app: CatalogService requires an author repository")
	}

	if cfg.Quotes == nil {
		panic("app: CatalogService requires a quote repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogService{
		authors: cfg.Authors,
		quotes:  cfg.Quotes,
		logger:  logger,
	}
}

// ListAuthors returns all authors ordered by last name.
func (s *CatalogService) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	authors, err := s.authors.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list authors", slog.Any("error", err))
		return nil, err
	}

	return authors, nil
}

// GetAuthor returns one author by id for edit-form pre-population.
func (s *CatalogService) GetAuthor(ctx context.Context, id int64) (*domain.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch author",
			slog.Int64("author_id", id),
			slog.Any("error", err),
		)

		return nil, err
	}

	return author, nil
}

// CreateAuthor inserts a new author. Re-submitting the same form creates a
// duplicate row; there is no idempotency key.
func (s *CatalogService) CreateAuthor(ctx context.Context, author *domain.Author) error {
	err := s.authors.Create(ctx, author)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create author", slog.Any("error", err))
		return err
	}

	s.logger.InfoContext(ctx, "author created",
		slog.Int64("author_id", author.ID),
		slog.String("last_name", author.LastName),
	)

	return nil
}

// UpdateAuthor overwrites the author row. Updating a nonexistent id is a
// silent no-op; concurrent updates race last-write-wins at the store.
func (s *CatalogService) UpdateAuthor(ctx context.Context, author *domain.Author) error {
	err := s.authors.Update(ctx, author)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update author",
			slog.Int64("author_id", author.ID),
			slog.Any("error", err),
		)

		return err
	}

	s.logger.InfoContext(ctx, "author updated", slog.Int64("author_id", author.ID))

	return nil
}

// DeleteAuthor removes the author row unconditionally. A nonexistent id is
// indistinguishable from a successful delete.
func (s *CatalogService) DeleteAuthor(ctx context.Context, id int64) error {
	err := s.authors.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete author",
			slog.Int64("author_id", id),
			slog.Any("error", err),
		)

		return err
	}

	s.logger.InfoContext(ctx, "author deleted", slog.Int64("author_id", id))

	return nil
}

// ListQuotes returns all quotes joined with author names, ordered by quote id.
func (s *CatalogService) ListQuotes(ctx context.Context) ([]domain.QuoteWithAuthor, error) {
	quotes, err := s.quotes.ListWithAuthors(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list quotes", slog.Any("error", err))
		return nil, err
	}

	return quotes, nil
}

// QuoteFormOptions fetches the author options and the distinct category set
// concurrently. Both lists are recomputed per request.
func (s *CatalogService) QuoteFormOptions(ctx context.Context) ([]domain.AuthorOption, []string, error) {
	options, categories, err := Parallel2(ctx,
		s.authors.ListOptions,
		s.quotes.ListCategories,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load quote form options", slog.Any("error", err))
		return nil, nil, err
	}

	return options, categories, nil
}

// QuoteForEdit fetches the quote, the author options, and the category set
// with a three-way concurrent join. All three must resolve before the edit
// form renders; the first failure abandons the render.
func (s *CatalogService) QuoteForEdit(ctx context.Context, id int64) (*domain.Quote, []domain.AuthorOption, []string, error) {
	quote, options, categories, err := Parallel3(ctx,
		func(ctx context.Context) (*domain.Quote, error) {
			return s.quotes.GetByID(ctx, id)
		},
		s.authors.ListOptions,
		s.quotes.ListCategories,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load quote edit form",
			slog.Int64("quote_id", id),
			slog.Any("error", err),
		)

		return nil, nil, nil, err
	}

	return quote, options, categories, nil
}

// CreateQuote inserts a new quote referencing an existing author.
func (s *CatalogService) CreateQuote(ctx context.Context, quote *domain.Quote) error {
	err := s.quotes.Create(ctx, quote)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create quote", slog.Any("error", err))
		return err
	}

	s.logger.InfoContext(ctx, "quote created",
		slog.Int64("quote_id", quote.ID),
		slog.Int64("author_id", quote.AuthorID),
	)

	return nil
}

// UpdateQuote overwrites the quote row. Updating a nonexistent id is a
// silent no-op.
func (s *CatalogService) UpdateQuote(ctx context.Context, quote *domain.Quote) error {
	err := s.quotes.Update(ctx, quote)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update quote",
			slog.Int64("quote_id", quote.ID),
			slog.Any("error", err),
		)

		return err
	}

	s.logger.InfoContext(ctx, "quote updated", slog.Int64("quote_id", quote.ID))

	return nil
}

// DeleteQuote removes the quote row unconditionally.
func (s *CatalogService) DeleteQuote(ctx context.Context, id int64) error {
	err := s.quotes.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete quote",
			slog.Int64("quote_id", id),
			slog.Any("error", err),
		)

		return err
	}

	s.logger.InfoContext(ctx, "quote deleted", slog.Int64("quote_id", id))

	return nil
}
