package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
)

func TestCreateBook(t *testing.T) {
	env := setupTest(t)
	ctx := context.Background()
	owner := env.register(t, "reader")

	b, err := env.books.CreateBook(ctx, owner.ID, CreateBookParams{
		Title:       " The Left Hand of Darkness ",
		Author:      "Ursula K. Le Guin",
		Description: "Winter.",
	})
	require.NoError(t, err)
	assert.Equal(t, "The Left Hand of Darkness", b.Title)
	assert.Equal(t, owner.ID, b.OwnerID)

	tests := []struct {
		name   string
		params CreateBookParams
	}{
		{"missing title", CreateBookParams{Author: "A"}},
		{"missing author", CreateBookParams{Title: "T"}},
		{"long title", CreateBookParams{Title: strings.Repeat("t", 201), Author: "A"}},
		{"long description", CreateBookParams{Title: "T", Author: "A", Description: strings.Repeat("d", 2001)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.books.CreateBook(ctx, owner.ID, tt.params)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestListMyBooksAndGetBook(t *testing.T) {
	env := setupTest(t)
	ctx := context.Background()
	owner := env.register(t, "reader")
	other := env.register(t, "neighbour")

	first := env.book(t, owner, "First")
	second := env.book(t, owner, "Second")
	env.book(t, other, "Theirs")

	books, err := env.books.ListMyBooks(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, second.ID}, bookIDs(books))

	got, err := env.books.GetBook(ctx, owner.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)

	_, err = env.books.GetBook(ctx, other.ID, first.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCreateBook_NormalizesUnicode(t *testing.T) {
	env := setupTest(t)
	owner := env.register(t, "reader")

	// "Les Misérables" with a combining acute accent.
	b, err := env.books.CreateBook(context.Background(), owner.ID, CreateBookParams{
		Title:  "Les Mise\u0301rables",
		Author: "Victor Hugo",
	})
	require.NoError(t, err)
	assert.Equal(t, "Les Mis\u00e9rables", b.Title)
}
