package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// QuoteRepository implements ports.QuoteRepository against q_quotes.
type QuoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a quote repository on the shared pool.
func NewQuoteRepository(db *DB) *QuoteRepository {
	return &QuoteRepository{db: db.gorm}
}

// ListWithAuthors returns every quote joined with its author's name,
// ordered by quote id ascending.
func (r *QuoteRepository) ListWithAuthors(ctx context.Context) ([]domain.QuoteWithAuthor, error) {
	var rows []quoteJoinRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT q.quoteId, q.quote, q.authorId, q.category, q.likes,
		       a.firstName, a.lastName
		FROM q_quotes q
		JOIN q_authors a ON q.authorId = a.authorId
		ORDER BY q.quoteId`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	quotes := make([]domain.QuoteWithAuthor, len(rows))
	for i := range rows {
		quotes[i] = rows[i].toDomain()
	}

	return quotes, nil
}

// GetByID retrieves one quote. Returns domain.ErrNotFound for unknown ids.
func (r *QuoteRepository) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	var row quoteRow

	err := r.db.WithContext(ctx).Where("quoteId = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("quote", id)
		}

		return nil, fmt.Errorf("fetching quote %d: %w", id, err)
	}

	quote := row.toDomain()

	return &quote, nil
}

// ListCategories recomputes the distinct category set on every call,
// ordered alphabetically. Nothing is cached.
func (r *QuoteRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string

	err := r.db.WithContext(ctx).
		Model(&quoteRow{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	return categories, nil
}

// Create inserts a new quote row and fills in the generated id. Referential
// integrity of authorId is the store's concern.
func (r *QuoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	row := quoteRow{
		Quote:    quote.Text,
		AuthorID: quote.AuthorID,
		Category: quote.Category,
		Likes:    quote.Likes,
	}

	err := r.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.NewConflictError("quote", "author does not exist")
		}

		return fmt.Errorf("creating quote: %w", err)
	}

	quote.ID = row.QuoteID

	return nil
}

// Update overwrites all mutable columns by id. A nonexistent id matches zero
// rows and is reported as success.
func (r *QuoteRepository) Update(ctx context.Context, quote *domain.Quote) error {
	// Map form keeps NULL likes writable; struct updates would skip them.
	err := r.db.WithContext(ctx).
		Model(&quoteRow{}).
		Where("quoteId = ?", quote.ID).
		Updates(map[string]any{
			"quote":    quote.Text,
			"authorId": quote.AuthorID,
			"category": quote.Category,
			"likes":    quote.Likes,
		}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.NewConflictError("quote", "author does not exist")
		}

		return fmt.Errorf("updating quote %d: %w", quote.ID, err)
	}

	return nil
}

// Delete removes the row unconditionally. Unknown ids are silent no-ops.
func (r *QuoteRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Where("quoteId = ?", id).Delete(&quoteRow{}).Error
	if err != nil {
		return fmt.Errorf("deleting quote %d: %w", id, err)
	}

	return nil
}
