package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibilityFromBool(t *testing.T) {
	assert.Equal(t, VisibilityPublic, VisibilityFromBool(true))
	assert.Equal(t, VisibilityPrivate, VisibilityFromBool(false))
}

func TestShelf_IsPublic(t *testing.T) {
	public := &Shelf{ID: "shelf-1", OwnerID: "user-1", Visibility: VisibilityPublic}
	private := &Shelf{ID: "shelf-2", OwnerID: "user-1", Visibility: VisibilityPrivate}
	unset := &Shelf{ID: "shelf-3", OwnerID: "user-1"}

	assert.True(t, public.IsPublic())
	assert.False(t, private.IsPublic())
	assert.False(t, unset.IsPublic(), "zero visibility must not read as public")
}

func TestShelf_IsOwnedBy(t *testing.T) {
	shelf := &Shelf{ID: "shelf-1", OwnerID: "user-1"}

	assert.True(t, shelf.IsOwnedBy("user-1"))
	assert.False(t, shelf.IsOwnedBy("user-2"))
	assert.False(t, shelf.IsOwnedBy(""))
}

func TestBook_IsOwnedBy(t *testing.T) {
	book := &Book{ID: "book-1", OwnerID: "user-1"}

	assert.True(t, book.IsOwnedBy("user-1"))
	assert.False(t, book.IsOwnedBy("user-2"))
}

func TestUser_Summary(t *testing.T) {
	user := &User{ID: "user-1", Handle: "ada", Contact: "@ada"}

	assert.Equal(t, UserSummary{ID: "user-1", Handle: "ada", Contact: "@ada"}, user.Summary())
}
