package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/listenupapp/shelves-server/internal/domain"
)

// userColumns must match the scan order in scanUser.
const userColumns = `id, handle, contact, created_at, updated_at`

func scanUser(s scanner) (*domain.User, error) {
	var (
		u         domain.User
		contact   sql.NullString
		createdAt timestamp
		updatedAt timestamp
	)
	if err := s.Scan(&u.ID, &u.Handle, &contact, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	u.Contact = contact.String
	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time
	return &u, nil
}

// CreateUser inserts a user. Returns store.ErrAlreadyExists on a duplicate
// ID or handle.
func (q *queries) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := q.exec(ctx, `
		INSERT INTO users (id, handle, contact, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		user.ID,
		user.Handle,
		nullString(user.Contact),
		q.dialect.TimeArg(user.CreatedAt),
		q.dialect.TimeArg(user.UpdatedAt),
	)
	if err != nil {
		return q.insertError(err)
	}
	return nil
}

// GetUser returns the user with the given ID.
func (q *queries) GetUser(ctx context.Context, id string) (*domain.User, error) {
	row := q.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// GetUserByHandle returns the user with the given handle.
func (q *queries) GetUserByHandle(ctx context.Context, handle string) (*domain.User, error) {
	row := q.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE handle = ?`, handle)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// UpdateUserContact sets the user's contact and returns the updated row.
// An empty contact is stored as NULL.
func (q *queries) UpdateUserContact(ctx context.Context, id, contact string) (*domain.User, error) {
	row := q.queryRow(ctx, `
		UPDATE users SET contact = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+userColumns,
		nullString(contact),
		q.dialect.TimeArg(time.Now()),
		id,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}
