package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooks_CreateAndList(t *testing.T) {
	ts := setupTestServer(t, 100)
	alice, aliceAuth := ts.register(t, "alice")
	_, bobAuth := ts.register(t, "bob")

	first := ts.createBook(t, aliceAuth, "Kindred")
	second := ts.createBook(t, aliceAuth, "Dawn")
	assert.Equal(t, alice.ID, first.OwnerID)

	resp := ts.api.Get("/api/v1/books", aliceAuth)
	require.Equal(t, http.StatusOK, resp.Code)
	var mine ListBooksResponse
	decodeEnvelope(t, resp, &mine)
	require.Len(t, mine.Books, 2)
	assert.Equal(t, first.ID, mine.Books[0].ID)
	assert.Equal(t, second.ID, mine.Books[1].ID)

	resp = ts.api.Get("/api/v1/books", bobAuth)
	require.Equal(t, http.StatusOK, resp.Code)
	var theirs ListBooksResponse
	decodeEnvelope(t, resp, &theirs)
	assert.NotNil(t, theirs.Books)
	assert.Empty(t, theirs.Books)
}

func TestBooks_CreateRequiresAuthor(t *testing.T) {
	ts := setupTestServer(t, 100)
	_, authz := ts.register(t, "alice")

	resp := ts.api.Post("/api/v1/books", authz, map[string]any{"title": "Kindred", "author": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBooks_GetIsOwnerOnly(t *testing.T) {
	ts := setupTestServer(t, 100)
	_, aliceAuth := ts.register(t, "alice")
	_, bobAuth := ts.register(t, "bob")

	book := ts.createBook(t, aliceAuth, "Kindred")

	resp := ts.api.Get("/api/v1/books/"+book.ID, aliceAuth)
	require.Equal(t, http.StatusOK, resp.Code)
	var got BookResponse
	decodeEnvelope(t, resp, &got)
	assert.Equal(t, "Kindred", got.Title)

	resp = ts.api.Get("/api/v1/books/"+book.ID, bobAuth)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteBook_RemovesItFromEveryShelf(t *testing.T) {
	ts := setupTestServer(t, 100)
	_, aliceAuth := ts.register(t, "alice")
	_, bobAuth := ts.register(t, "bob")

	book := ts.createBook(t, aliceAuth, "Kindred")
	shelves := []ShelfResponse{
		ts.createShelf(t, aliceAuth, "Classics", true),
		ts.createShelf(t, aliceAuth, "Favourites", false),
	}
	for _, shelf := range shelves {
		resp := ts.api.Post("/api/v1/shelves/"+shelf.ID+"/books", aliceAuth, map[string]any{"book_id": book.ID})
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	}

	resp := ts.api.Delete("/api/v1/books/"+book.ID, bobAuth)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = ts.api.Delete("/api/v1/books/"+book.ID, aliceAuth)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	for _, shelf := range shelves {
		resp := ts.api.Get("/api/v1/shelves/"+shelf.ID+"/books", aliceAuth)
		require.Equal(t, http.StatusOK, resp.Code)
		var books ListBooksResponse
		decodeEnvelope(t, resp, &books)
		assert.Empty(t, books.Books)
	}

	resp = ts.api.Delete("/api/v1/books/"+book.ID, aliceAuth)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
