package sqlstore

import (
	"context"
	"database/sql"

	"github.com/listenupapp/shelves-server/internal/domain"
)

// CreateMembership inserts a (shelf, user) membership.
// Returns store.ErrAlreadyExists if the pair exists and store.ErrNotFound if
// either side is missing.
func (q *queries) CreateMembership(ctx context.Context, m *domain.Membership) error {
	_, err := q.exec(ctx, `
		INSERT INTO shelf_members (id, shelf_id, user_id, created_at)
		VALUES (?, ?, ?, ?)`,
		m.ID,
		m.ShelfID,
		m.UserID,
		q.dialect.TimeArg(m.CreatedAt),
	)
	if err != nil {
		return q.insertError(err)
	}
	return nil
}

// MembershipExists reports whether the user is a member of the shelf.
func (q *queries) MembershipExists(ctx context.Context, shelfID, userID string) (bool, error) {
	var exists bool
	err := q.queryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM shelf_members WHERE shelf_id = ? AND user_id = ?
		)`, shelfID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListMembers returns the shelf's members in the order they joined.
func (q *queries) ListMembers(ctx context.Context, shelfID string) ([]domain.UserSummary, error) {
	rows, err := q.query(ctx, `
		SELECT u.id, u.handle, u.contact
		FROM shelf_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.shelf_id = ?
		ORDER BY m.created_at, m.id`, shelfID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.UserSummary{}
	for rows.Next() {
		var (
			u       domain.UserSummary
			contact sql.NullString
		)
		if err := rows.Scan(&u.ID, &u.Handle, &contact); err != nil {
			return nil, err
		}
		u.Contact = contact.String
		members = append(members, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}
