package sqlstore

import (
	"context"
	"database/sql"

	"github.com/listenupapp/shelves-server/internal/domain"
)

// shelfColumns must match the scan order in scanShelf. Queries alias shelves as s.
const shelfColumns = `s.id, s.owner_id, s.name, s.description, s.is_public, s.created_at`

func scanShelf(sc scanner) (*domain.Shelf, error) {
	var (
		s         domain.Shelf
		isPublic  bool
		createdAt timestamp
	)
	if err := sc.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Description, &isPublic, &createdAt); err != nil {
		return nil, err
	}
	s.Visibility = domain.VisibilityFromBool(isPublic)
	s.CreatedAt = createdAt.Time
	return &s, nil
}

func scanShelves(rows *sql.Rows) ([]*domain.Shelf, error) {
	defer rows.Close()

	shelves := []*domain.Shelf{}
	for rows.Next() {
		s, err := scanShelf(rows)
		if err != nil {
			return nil, err
		}
		shelves = append(shelves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return shelves, nil
}

// CreateShelf inserts the shelf row only. The owner's membership is a
// separate insert that callers pair with this one inside a transaction.
func (q *queries) CreateShelf(ctx context.Context, shelf *domain.Shelf) error {
	_, err := q.exec(ctx, `
		INSERT INTO shelves (id, owner_id, name, description, is_public, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		shelf.ID,
		shelf.OwnerID,
		shelf.Name,
		shelf.Description,
		shelf.IsPublic(),
		q.dialect.TimeArg(shelf.CreatedAt),
	)
	if err != nil {
		return q.insertError(err)
	}
	return nil
}

// GetShelf returns the shelf with the given ID.
func (q *queries) GetShelf(ctx context.Context, id string) (*domain.Shelf, error) {
	row := q.queryRow(ctx, `SELECT `+shelfColumns+` FROM shelves s WHERE s.id = ?`, id)
	s, err := scanShelf(row)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// ListShelvesForMember returns every shelf the user holds a membership on,
// owned or joined.
func (q *queries) ListShelvesForMember(ctx context.Context, userID string) ([]*domain.Shelf, error) {
	rows, err := q.query(ctx, `
		SELECT `+shelfColumns+`
		FROM shelves s
		JOIN shelf_members m ON m.shelf_id = s.id
		WHERE m.user_id = ?
		ORDER BY s.created_at, s.id`, userID)
	if err != nil {
		return nil, err
	}
	return scanShelves(rows)
}

// ListJoinableShelves returns public shelves the user neither owns nor
// belongs to.
func (q *queries) ListJoinableShelves(ctx context.Context, userID string) ([]*domain.Shelf, error) {
	rows, err := q.query(ctx, `
		SELECT `+shelfColumns+`
		FROM shelves s
		WHERE s.is_public = ?
		  AND s.owner_id <> ?
		  AND NOT EXISTS (
			SELECT 1 FROM shelf_members m
			WHERE m.shelf_id = s.id AND m.user_id = ?
		  )
		ORDER BY s.created_at, s.id`, true, userID, userID)
	if err != nil {
		return nil, err
	}
	return scanShelves(rows)
}
