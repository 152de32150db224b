// Package store defines the persistence contract for the shelves server.
//
// Implementations live in sub-packages (see sqlstore). Services depend only on
// the interfaces here and translate the sentinel errors into domain errors.
package store

import (
	"context"

	"github.com/listenupapp/shelves-server/internal/domain"
)

// Queries is the set of reads and writes available both on the store and
// inside a transaction.
type Queries interface {
	// Users
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*domain.User, error)
	UpdateUserContact(ctx context.Context, id, contact string) (*domain.User, error)

	// Books
	CreateBook(ctx context.Context, book *domain.Book) error
	GetBook(ctx context.Context, id string) (*domain.Book, error)
	ListBooksByOwner(ctx context.Context, ownerID string) ([]*domain.Book, error)
	DeleteBook(ctx context.Context, id string) error

	// Shelves
	CreateShelf(ctx context.Context, shelf *domain.Shelf) error
	GetShelf(ctx context.Context, id string) (*domain.Shelf, error)
	ListShelvesForMember(ctx context.Context, userID string) ([]*domain.Shelf, error)
	ListJoinableShelves(ctx context.Context, userID string) ([]*domain.Shelf, error)

	// Memberships
	CreateMembership(ctx context.Context, m *domain.Membership) error
	MembershipExists(ctx context.Context, shelfID, userID string) (bool, error)
	ListMembers(ctx context.Context, shelfID string) ([]domain.UserSummary, error)

	// Shelf contents
	CreateLink(ctx context.Context, link *domain.ShelfBookLink) error
	DeleteLink(ctx context.Context, shelfID, bookID string) (bool, error)
	DeleteLinksForBook(ctx context.Context, bookID string) (int, error)
	ListBooksOnShelf(ctx context.Context, shelfID string) ([]*domain.Book, error)
}

// Store is the entity store.
type Store interface {
	Queries

	// InTx runs fn inside a single transaction. The transaction commits when
	// fn returns nil and rolls back otherwise, including on context cancellation.
	InTx(ctx context.Context, fn func(q Queries) error) error

	Close() error
}
