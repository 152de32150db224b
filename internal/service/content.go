package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/listenupapp/shelves-server/internal/access"
	"github.com/listenupapp/shelves-server/internal/domain"
	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
	"github.com/listenupapp/shelves-server/internal/id"
	"github.com/listenupapp/shelves-server/internal/store"
)

// ContentService puts books on shelves, takes them off, and removes books
// from every shelf when they are deleted.
type ContentService struct {
	store  store.Store
	logger *slog.Logger
}

// NewContentService creates a new content service.
func NewContentService(store store.Store, logger *slog.Logger) *ContentService {
	return &ContentService{
		store:  store,
		logger: logger,
	}
}

// AddBookToShelf links a book to a shelf. Requires ownership or membership
// of the shelf. Adding a book that is already there is a Conflict.
func (s *ContentService) AddBookToShelf(ctx context.Context, principal, shelfID, bookID string) (*domain.ShelfBookLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if err := checkID(id.PrefixShelf, shelfID, "shelf_id"); err != nil {
		return nil, err
	}
	if err := checkID(id.PrefixBook, bookID, "book_id"); err != nil {
		return nil, err
	}

	if err := s.authorizeContentChange(ctx, principal, shelfID); err != nil {
		return nil, err
	}

	if _, err := s.store.GetBook(ctx, bookID); err != nil {
		return nil, storeError(err, "book")
	}

	link := &domain.ShelfBookLink{
		CreatedAt: time.Now(),
		ID:        id.NewRowID(),
		ShelfID:   shelfID,
		BookID:    bookID,
	}
	if err := s.store.CreateLink(ctx, link); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("book is already on this shelf")
		}
		// The book may have been deleted since it was loaded.
		return nil, storeError(err, "book")
	}

	s.logger.Info("book added to shelf",
		"shelf_id", shelfID,
		"book_id", bookID,
		"user_id", principal,
	)

	return link, nil
}

// RemoveBookFromShelf unlinks a book from a shelf. Requires ownership or
// membership of the shelf. Removing a book that is not there succeeds.
func (s *ContentService) RemoveBookFromShelf(ctx context.Context, principal, shelfID, bookID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := requirePrincipal(principal); err != nil {
		return err
	}
	if err := checkID(id.PrefixShelf, shelfID, "shelf_id"); err != nil {
		return err
	}
	if err := checkID(id.PrefixBook, bookID, "book_id"); err != nil {
		return err
	}

	if err := s.authorizeContentChange(ctx, principal, shelfID); err != nil {
		return err
	}

	removed, err := s.store.DeleteLink(ctx, shelfID, bookID)
	if err != nil {
		return storeError(err, "book")
	}

	if removed {
		s.logger.Info("book removed from shelf",
			"shelf_id", shelfID,
			"book_id", bookID,
			"user_id", principal,
		)
	}

	return nil
}

// ListBooksOnShelf returns the shelf's books in the order they were added.
// It does not check visibility; callers establish that with
// MembershipService.GetShelf first.
func (s *ContentService) ListBooksOnShelf(ctx context.Context, principal, shelfID string) ([]*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if err := checkID(id.PrefixShelf, shelfID, "shelf_id"); err != nil {
		return nil, err
	}

	if _, err := s.store.GetShelf(ctx, shelfID); err != nil {
		return nil, storeError(err, "shelf")
	}

	books, err := s.store.ListBooksOnShelf(ctx, shelfID)
	if err != nil {
		return nil, storeError(err, "shelf")
	}
	return books, nil
}

// DeleteBookEverywhere deletes a book owned by principal. Every shelf link
// to the book is removed before the book row, in the same transaction.
func (s *ContentService) DeleteBookEverywhere(ctx context.Context, principal, bookID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := requirePrincipal(principal); err != nil {
		return err
	}
	if err := checkID(id.PrefixBook, bookID, "book_id"); err != nil {
		return err
	}

	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return storeError(err, "book")
	}
	if !access.CanDeleteBook(principal, book) {
		return domainerrors.Forbidden("only the owner can delete this book")
	}

	var linksRemoved int
	err = s.store.InTx(ctx, func(q store.Queries) error {
		n, err := q.DeleteLinksForBook(ctx, bookID)
		if err != nil {
			return err
		}
		linksRemoved = n
		return q.DeleteBook(ctx, bookID)
	})
	if err != nil {
		return storeError(err, "book")
	}

	s.logger.Info("book deleted",
		"book_id", bookID,
		"owner_id", principal,
		"links_removed", linksRemoved,
	)

	return nil
}

// authorizeContentChange loads the shelf and checks that principal may
// change what is on it.
func (s *ContentService) authorizeContentChange(ctx context.Context, principal, shelfID string) error {
	shelf, isMember, err := loadShelf(ctx, s.store, principal, shelfID)
	if err != nil {
		return err
	}
	if !access.CanModifyShelfContent(principal, shelf, isMember) {
		return domainerrors.Forbidden("you cannot change the books on this shelf")
	}
	return nil
}
