// Package mocks provides testify mocks for the port interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// MockAuthorRepository is a testify mock of ports.AuthorRepository.
type MockAuthorRepository struct {
	mock.Mock
}

// NewMockAuthorRepository creates a mock that asserts its expectations on cleanup.
func NewMockAuthorRepository(t *testing.T) *MockAuthorRepository {
	m := &MockAuthorRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthorRepository) List(ctx context.Context) ([]domain.Author, error) {
	args := m.Called(ctx)

	var authors []domain.Author
	if v := args.Get(0); v != nil {
		authors = v.([]domain.Author)
	}

	return authors, args.Error(1)
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	args := m.Called(ctx, id)

	var author *domain.Author
	if v := args.Get(0); v != nil {
		author = v.(*domain.Author)
	}

	return author, args.Error(1)
}

func (m *MockAuthorRepository) ListOptions(ctx context.Context) ([]domain.AuthorOption, error) {
	args := m.Called(ctx)

	var options []domain.AuthorOption
	if v := args.Get(0); v != nil {
		options = v.([]domain.AuthorOption)
	}

	return options, args.Error(1)
}

func (m *MockAuthorRepository) Create(ctx context.Context, author *domain.Author) error {
	return m.Called(ctx, author).Error(0)
}

func (m *MockAuthorRepository) Update(ctx context.Context, author *domain.Author) error {
	return m.Called(ctx, author).Error(0)
}

func (m *MockAuthorRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockQuoteRepository is a testify mock of ports.QuoteRepository.
type MockQuoteRepository struct {
	mock.Mock
}

// NewMockQuoteRepository creates a mock that asserts its expectations on cleanup.
func NewMockQuoteRepository(t *testing.T) *MockQuoteRepository {
	m := &MockQuoteRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQuoteRepository) ListWithAuthors(ctx context.Context) ([]domain.QuoteWithAuthor, error) {
	args := m.Called(ctx)

	var quotes []domain.QuoteWithAuthor
	if v := args.Get(0); v != nil {
		quotes = v.([]domain.QuoteWithAuthor)
	}

	return quotes, args.Error(1)
}

func (m *MockQuoteRepository) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	args := m.Called(ctx, id)

	var quote *domain.Quote
	if v := args.Get(0); v != nil {
		quote = v.(*domain.Quote)
	}

	return quote, args.Error(1)
}

func (m *MockQuoteRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	var categories []string
	if v := args.Get(0); v != nil {
		categories = v.([]string)
	}

	return categories, args.Error(1)
}

func (m *MockQuoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	return m.Called(ctx, quote).Error(0)
}

func (m *MockQuoteRepository) Update(ctx context.Context, quote *domain.Quote) error {
	return m.Called(ctx, quote).Error(0)
}

func (m *MockQuoteRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
