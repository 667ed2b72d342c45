// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port design principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// AuthorRepository persists and queries Author entities.
type AuthorRepository interface {
	// List returns all authors ordered by last name ascending.
	List(ctx context.Context) ([]domain.Author, error)

	// GetByID retrieves one author by id.
	// Returns domain.ErrNotFound if the author does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Author, error)

	// ListOptions returns the slim author projection used for
	// selection widgets, ordered by last name ascending.
	ListOptions(ctx context.Context) ([]domain.AuthorOption, error)

	// Create inserts a new author and fills in the generated ID.
	Create(ctx context.Context, author *domain.Author) error

	// Update overwrites the author row identified by author.ID.
	// Updating a nonexistent id is a silent no-op.
	Update(ctx context.Context, author *domain.Author) error

	// Delete removes the author row. Deleting a nonexistent id is a
	// silent no-op; deleting an author that quotes still reference
	// surfaces the store's constraint error as domain.ErrConflict.
	Delete(ctx context.Context, id int64) error
}

// QuoteRepository persists and queries Quote entities.
type QuoteRepository interface {
	// ListWithAuthors returns all quotes joined with their author's
	// first and last name, ordered by quote id ascending.
	ListWithAuthors(ctx context.Context) ([]domain.QuoteWithAuthor, error)

	// GetByID retrieves one quote by id.
	// Returns domain.ErrNotFound if the quote does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)

	// ListCategories returns the distinct set of category values
	// currently in use, ordered alphabetically. The set is recomputed
	// on every call; nothing is cached.
	ListCategories(ctx context.Context) ([]string, error)

	// Create inserts a new quote and fills in the generated ID.
	Create(ctx context.Context, quote *domain.Quote) error

	// Update overwrites the quote row identified by quote.ID.
	// Updating a nonexistent id is a silent no-op.
	Update(ctx context.Context, quote *domain.Quote) error

	// Delete removes the quote row. Deleting a nonexistent id is a
	// silent no-op.
	Delete(ctx context.Context, id int64) error
}
