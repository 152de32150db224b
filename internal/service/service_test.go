package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/shelves-server/internal/domain"
	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
	"github.com/listenupapp/shelves-server/internal/store"
	"github.com/listenupapp/shelves-server/internal/store/sqlstore"
)

// testEnv wires every service to one temporary SQLite store.
type testEnv struct {
	store       *sqlstore.Store
	users       *UserService
	books       *BookService
	memberships *MembershipService
	content     *ContentService
	profiles    *ProfileService
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	s, err := sqlstore.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return &testEnv{
		store:       s,
		users:       NewUserService(s, logger),
		books:       NewBookService(s, logger),
		memberships: NewMembershipService(s, logger),
		content:     NewContentService(s, logger),
		profiles:    NewProfileService(s, logger),
	}
}

func (e *testEnv) register(t *testing.T, handle string) *domain.User {
	t.Helper()
	u, err := e.users.Register(context.Background(), handle, "")
	require.NoError(t, err)
	return u
}

func (e *testEnv) book(t *testing.T, owner *domain.User, title string) *domain.Book {
	t.Helper()
	b, err := e.books.CreateBook(context.Background(), owner.ID, CreateBookParams{
		Title:  title,
		Author: "Octavia E. Butler",
	})
	require.NoError(t, err)
	return b
}

func (e *testEnv) shelf(t *testing.T, owner *domain.User, name string, public bool) *domain.Shelf {
	t.Helper()
	s, err := e.memberships.CreateShelf(context.Background(), owner.ID, CreateShelfParams{
		Name:     name,
		IsPublic: &public,
	})
	require.NoError(t, err)
	return s
}

func shelfIDs(shelves []*domain.Shelf) []string {
	ids := make([]string, len(shelves))
	for i, s := range shelves {
		ids[i] = s.ID
	}
	return ids
}

func bookIDs(books []*domain.Book) []string {
	ids := make([]string, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}

func memberIDs(members []domain.UserSummary) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}

func TestStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *domainerrors.Error
	}{
		{"missing row", store.ErrNotFound, domainerrors.ErrNotFound},
		{"duplicate row", store.ErrAlreadyExists, domainerrors.ErrConflict},
		{"referenced on delete", fmt.Errorf("delete book: %w", store.ErrReferenced), domainerrors.ErrConflict},
		{"domain error passes through", domainerrors.Forbidden("no"), domainerrors.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, storeError(tt.err, "book"), tt.want)
		})
	}

	t.Run("other failures are internal", func(t *testing.T) {
		err := storeError(io.ErrUnexpectedEOF, "book")
		var de *domainerrors.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domainerrors.CodeInternal, de.Code)
		assert.NotContains(t, de.Message, "unexpected EOF")
	})

	t.Run("cancellation is returned unchanged", func(t *testing.T) {
		assert.ErrorIs(t, storeError(context.Canceled, "book"), context.Canceled)
	})
}
