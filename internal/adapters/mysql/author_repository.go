package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// AuthorRepository implements ports.AuthorRepository against q_authors.
type AuthorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates an author repository on the shared pool.
func NewAuthorRepository(db *DB) *AuthorRepository {
	return &AuthorRepository{db: db.gorm}
}

// List returns all authors ordered by last name ascending. The listing is
// deliberately unpaginated.
func (r *AuthorRepository) List(ctx context.Context) ([]domain.Author, error) {
	var rows []authorRow

	err := r.db.WithContext(ctx).Order("lastName").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}

	authors := make([]domain.Author, len(rows))
	for i := range rows {
		authors[i] = rows[i].toDomain()
	}

	return authors, nil
}

// GetByID retrieves one author. Returns domain.ErrNotFound for unknown ids.
func (r *AuthorRepository) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	var row authorRow

	err := r.db.WithContext(ctx).Where("authorId = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("author", id)
		}

		return nil, fmt.Errorf("fetching author %d: %w", id, err)
	}

	author := row.toDomain()

	return &author, nil
}

// ListOptions returns the slim projection for select widgets, ordered by
// last name ascending.
func (r *AuthorRepository) ListOptions(ctx context.Context) ([]domain.AuthorOption, error) {
	var rows []authorOptionRow

	err := r.db.WithContext(ctx).
		Model(&authorRow{}).
		Select("authorId", "firstName", "lastName").
		Order("lastName").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing author options: %w", err)
	}

	options := make([]domain.AuthorOption, len(rows))
	for i := range rows {
		options[i] = rows[i].toDomain()
	}

	return options, nil
}

// Create inserts a new author row and fills in the generated id.
func (r *AuthorRepository) Create(ctx context.Context, author *domain.Author) error {
	row := authorRowFromDomain(author)
	row.AuthorID = 0

	err := r.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		return fmt.Errorf("creating author: %w", err)
	}

	author.ID = row.AuthorID

	return nil
}

// Update overwrites all mutable columns by id. A nonexistent id matches zero
// rows and is reported as success, matching the redirect-anyway contract.
func (r *AuthorRepository) Update(ctx context.Context, author *domain.Author) error {
	// Map form keeps NULL death dates writable; struct updates would skip them.
	err := r.db.WithContext(ctx).
		Model(&authorRow{}).
		Where("authorId = ?", author.ID).
		Updates(map[string]any{
			"firstName":  author.FirstName,
			"lastName":   author.LastName,
			"dob":        author.BirthDate,
			"dod":        author.DeathDate,
			"sex":        author.Sex,
			"profession": author.Profession,
			"country":    author.Country,
			"portrait":   author.Portrait,
			"biography":  author.Biography,
		}).Error
	if err != nil {
		return fmt.Errorf("updating author %d: %w", author.ID, err)
	}

	return nil
}

// Delete removes the row unconditionally. Unknown ids are silent no-ops;
// rows still referenced by quotes surface the FK violation as a conflict.
func (r *AuthorRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Where("authorId = ?", id).Delete(&authorRow{}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.NewConflictError("author", "quotes still reference this author")
		}

		return fmt.Errorf("deleting author %d: %w", id, err)
	}

	return nil
}
