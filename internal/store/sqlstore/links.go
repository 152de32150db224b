package sqlstore

import (
	"context"

	"github.com/listenupapp/shelves-server/internal/domain"
)

// CreateLink puts a book on a shelf.
// Returns store.ErrAlreadyExists if the book is already there and
// store.ErrNotFound if the shelf or book is missing.
func (q *queries) CreateLink(ctx context.Context, link *domain.ShelfBookLink) error {
	_, err := q.exec(ctx, `
		INSERT INTO shelf_books (id, shelf_id, book_id, created_at)
		VALUES (?, ?, ?, ?)`,
		link.ID,
		link.ShelfID,
		link.BookID,
		q.dialect.TimeArg(link.CreatedAt),
	)
	if err != nil {
		return q.insertError(err)
	}
	return nil
}

// DeleteLink takes a book off a shelf and reports whether a link was removed.
func (q *queries) DeleteLink(ctx context.Context, shelfID, bookID string) (bool, error) {
	res, err := q.exec(ctx,
		`DELETE FROM shelf_books WHERE shelf_id = ? AND book_id = ?`, shelfID, bookID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteLinksForBook takes a book off every shelf and returns how many links
// were removed.
func (q *queries) DeleteLinksForBook(ctx context.Context, bookID string) (int, error) {
	res, err := q.exec(ctx, `DELETE FROM shelf_books WHERE book_id = ?`, bookID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ListBooksOnShelf returns the shelf's books in the order they were added.
func (q *queries) ListBooksOnShelf(ctx context.Context, shelfID string) ([]*domain.Book, error) {
	rows, err := q.query(ctx, `
		SELECT `+bookColumns+`
		FROM shelf_books l
		JOIN books b ON b.id = l.book_id
		WHERE l.shelf_id = ?
		ORDER BY l.created_at, l.id`, shelfID)
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}
