package sqlstore

import (
	"context"
	"database/sql"

	"github.com/listenupapp/shelves-server/internal/domain"
	"github.com/listenupapp/shelves-server/internal/store"
)

// bookColumns must match the scan order in scanBook. Queries alias books as b.
const bookColumns = `b.id, b.owner_id, b.title, b.author, b.description, b.created_at`

func scanBook(s scanner) (*domain.Book, error) {
	var (
		b           domain.Book
		description sql.NullString
		createdAt   timestamp
	)
	if err := s.Scan(&b.ID, &b.OwnerID, &b.Title, &b.Author, &description, &createdAt); err != nil {
		return nil, err
	}
	b.Description = description.String
	b.CreatedAt = createdAt.Time
	return &b, nil
}

func scanBooks(rows *sql.Rows) ([]*domain.Book, error) {
	defer rows.Close()

	books := []*domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook inserts a book. Returns store.ErrNotFound if the owner does not exist.
func (q *queries) CreateBook(ctx context.Context, book *domain.Book) error {
	_, err := q.exec(ctx, `
		INSERT INTO books (id, owner_id, title, author, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		book.ID,
		book.OwnerID,
		book.Title,
		book.Author,
		nullString(book.Description),
		q.dialect.TimeArg(book.CreatedAt),
	)
	if err != nil {
		return q.insertError(err)
	}
	return nil
}

// GetBook returns the book with the given ID.
func (q *queries) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	row := q.queryRow(ctx, `SELECT `+bookColumns+` FROM books b WHERE b.id = ?`, id)
	b, err := scanBook(row)
	if err != nil {
		return nil, notFound(err)
	}
	return b, nil
}

// ListBooksByOwner returns the user's books, oldest first.
func (q *queries) ListBooksByOwner(ctx context.Context, ownerID string) ([]*domain.Book, error) {
	rows, err := q.query(ctx, `
		SELECT `+bookColumns+`
		FROM books b
		WHERE b.owner_id = ?
		ORDER BY b.created_at, b.id`, ownerID)
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}

// DeleteBook removes the book row. Shelf links must already be gone; the
// foreign key rejects the delete with store.ErrReferenced otherwise.
func (q *queries) DeleteBook(ctx context.Context, id string) error {
	res, err := q.exec(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return q.deleteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
