package forms

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// QuoteForm carries the fields of the quote create form. The text and author
// are required; category is free text and may be left empty.
type QuoteForm struct {
	Text     string `form:"quote"    validate:"required"`
	AuthorID string `form:"authorId" validate:"required"`
	Category string `form:"category"`
	Likes    string `form:"likes"`
}

// QuoteEditForm is the quote form plus the identity of the row being updated.
type QuoteEditForm struct {
	QuoteForm

	QuoteID string `form:"quoteId" validate:"required"`
}

// toDomain coerces the raw string fields into a domain quote. An empty likes
// input means "not counted yet" and is stored as NULL.
func (f *QuoteForm) toDomain() (*domain.Quote, error) {
	authorID, err := parseID("authorId", f.AuthorID)
	if err != nil {
		return nil, err
	}

	likes, err := optionalInt("likes", f.Likes)
	if err != nil {
		return nil, err
	}

	return &domain.Quote{
		Text:     f.Text,
		AuthorID: authorID,
		Category: f.Category,
		Likes:    likes,
	}, nil
}

// BindQuoteCreate binds and validates the quote create form.
func BindQuoteCreate(c *gin.Context) (*domain.Quote, error) {
	var form QuoteForm
	if err := bindAndValidate(c, &form); err != nil {
		return nil, err
	}

	return form.toDomain()
}

// BindQuoteUpdate binds and validates the quote edit form, including the
// target id.
func BindQuoteUpdate(c *gin.Context) (*domain.Quote, error) {
	var form QuoteEditForm
	if err := bindAndValidate(c, &form); err != nil {
		return nil, err
	}

	quote, err := form.toDomain()
	if err != nil {
		return nil, err
	}

	id, err := parseID("quoteId", form.QuoteID)
	if err != nil {
		return nil, err
	}

	quote.ID = id

	return quote, nil
}
