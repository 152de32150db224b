package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/shelves-server/internal/domain"
	"github.com/listenupapp/shelves-server/internal/id"
	"github.com/listenupapp/shelves-server/internal/store"
)

func bookIDs(books []*domain.Book) []string {
	ids := make([]string, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}

func TestLinks(t *testing.T) {
	eachStore(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		base := time.Now().Add(-time.Hour)
		owner := seedUser(t, s, "librarian")
		shelfA := seedShelf(t, s, owner.ID, "A", true, base)
		shelfB := seedShelf(t, s, owner.ID, "B", false, base)

		link := func(shelfID, bookID string, at time.Time) error {
			return s.CreateLink(ctx, &domain.ShelfBookLink{
				CreatedAt: at,
				ID:        id.NewRowID(),
				ShelfID:   shelfID,
				BookID:    bookID,
			})
		}

		t.Run("pair is unique", func(t *testing.T) {
			b := seedBook(t, s, owner.ID, "Dup", base)
			require.NoError(t, link(shelfA.ID, b.ID, base))
			assert.ErrorIs(t, link(shelfA.ID, b.ID, base), store.ErrAlreadyExists)

			assert.Equal(t, 1, countLinks(t, s, b.ID))
		})

		t.Run("missing book or shelf", func(t *testing.T) {
			assert.ErrorIs(t, link(shelfA.ID, id.MustGenerate(id.PrefixBook), base), store.ErrNotFound)

			b := seedBook(t, s, owner.ID, "Homeless", base)
			assert.ErrorIs(t, link(id.MustGenerate(id.PrefixShelf), b.ID, base), store.ErrNotFound)
		})

		t.Run("books in insertion order", func(t *testing.T) {
			first := seedBook(t, s, owner.ID, "First", base)
			second := seedBook(t, s, owner.ID, "Second", base)
			require.NoError(t, link(shelfB.ID, second.ID, base.Add(time.Minute)))
			require.NoError(t, link(shelfB.ID, first.ID, base.Add(2*time.Minute)))

			books, err := s.ListBooksOnShelf(ctx, shelfB.ID)
			require.NoError(t, err)
			assert.Equal(t, []string{second.ID, first.ID}, bookIDs(books))
			assert.Equal(t, "Second", books[0].Title)
		})

		t.Run("delete link reports removal", func(t *testing.T) {
			b := seedBook(t, s, owner.ID, "Removable", base)
			require.NoError(t, link(shelfA.ID, b.ID, base))

			removed, err := s.DeleteLink(ctx, shelfA.ID, b.ID)
			require.NoError(t, err)
			assert.True(t, removed)

			removed, err = s.DeleteLink(ctx, shelfA.ID, b.ID)
			require.NoError(t, err)
			assert.False(t, removed)
		})

		t.Run("delete links for book", func(t *testing.T) {
			b := seedBook(t, s, owner.ID, "Everywhere", base)
			require.NoError(t, link(shelfA.ID, b.ID, base))
			require.NoError(t, link(shelfB.ID, b.ID, base))

			n, err := s.DeleteLinksForBook(ctx, b.ID)
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			assert.Zero(t, countLinks(t, s, b.ID))

			require.NoError(t, s.DeleteBook(ctx, b.ID))
		})
	})
}

// countLinks returns the number of shelves the book is on.
func countLinks(t *testing.T, s *Store, bookID string) int {
	t.Helper()
	var n int
	err := s.queryRow(context.Background(), `SELECT COUNT(*) FROM shelf_books WHERE book_id = ?`, bookID).Scan(&n)
	require.NoError(t, err)
	return n
}
