package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/listenupapp/shelves-server/internal/domain"
	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
	"github.com/listenupapp/shelves-server/internal/id"
	"github.com/listenupapp/shelves-server/internal/store"
	"github.com/listenupapp/shelves-server/internal/validation"
)

// BookService manages a user's own catalogue.
type BookService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewBookService creates a new book service.
func NewBookService(store store.Store, logger *slog.Logger) *BookService {
	return &BookService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// CreateBookParams contains fields for creating a book.
type CreateBookParams struct {
	Title       string `json:"title" validate:"required,max=200"`
	Author      string `json:"author" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// CreateBook adds a book owned by principal.
func (s *BookService) CreateBook(ctx context.Context, principal string, params CreateBookParams) (*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	params.Title = cleanText(params.Title)
	params.Author = cleanText(params.Author)
	params.Description = cleanText(params.Description)
	if err := s.validator.Validate(params); err != nil {
		return nil, err
	}

	bookID, err := id.Generate(id.PrefixBook)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "generate book id")
	}

	book := &domain.Book{
		CreatedAt:   time.Now(),
		ID:          bookID,
		OwnerID:     principal,
		Title:       params.Title,
		Author:      params.Author,
		Description: params.Description,
	}
	if err := s.store.CreateBook(ctx, book); err != nil {
		return nil, storeError(err, "user")
	}

	s.logger.Info("book created",
		"book_id", bookID,
		"owner_id", principal,
	)

	return book, nil
}

// ListMyBooks returns the books principal owns, oldest first.
func (s *BookService) ListMyBooks(ctx context.Context, principal string) ([]*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	books, err := s.store.ListBooksByOwner(ctx, principal)
	if err != nil {
		return nil, storeError(err, "book")
	}
	return books, nil
}

// GetBook returns one of principal's books. Books owned by someone else are
// reported as not found; they are reachable through shelves instead.
func (s *BookService) GetBook(ctx context.Context, principal, bookID string) (*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if err := checkID(id.PrefixBook, bookID, "book_id"); err != nil {
		return nil, err
	}

	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return nil, storeError(err, "book")
	}
	if !book.IsOwnedBy(principal) {
		return nil, domainerrors.NotFound("book not found")
	}
	return book, nil
}
