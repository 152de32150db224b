// Package main seeds a database with demo users, books and shelves, and
// prints an access token for each user.
//
// It reads the same flags and environment as the server:
//
//	go run ./cmd/seed --data-path ./data
//	DB_DRIVER=postgres DATABASE_URL=postgres://... go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/do/v2"

	"github.com/listenupapp/shelves-server/internal/auth"
	"github.com/listenupapp/shelves-server/internal/di"
	"github.com/listenupapp/shelves-server/internal/domain"
	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
	"github.com/listenupapp/shelves-server/internal/service"
)

type seedUser struct {
	handle  string
	contact string
	books   [][2]string // title, author
}

var users = []seedUser{
	{"alice", "@alice_reads", [][2]string{
		{"The Left Hand of Darkness", "Ursula K. Le Guin"},
		{"Kindred", "Octavia E. Butler"},
	}},
	{"bob", "@bob_books", [][2]string{
		{"Solaris", "Stanisław Lem"},
	}},
	{"carol", "", [][2]string{
		{"Piranesi", "Susanna Clarke"},
	}},
}

func main() {
	injector := di.NewContainer()
	defer func() { _ = injector.Shutdown() }()

	if err := di.Bootstrap(injector); err != nil {
		log.Fatalf("Failed to bootstrap: %v", err)
	}

	s := &seeder{
		users:       do.MustInvoke[*service.UserService](injector),
		books:       do.MustInvoke[*service.BookService](injector),
		memberships: do.MustInvoke[*service.MembershipService](injector),
		content:     do.MustInvoke[*service.ContentService](injector),
	}
	tokens := do.MustInvoke[*auth.TokenService](injector)

	result, err := s.run(context.Background(), users)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	if result.fresh {
		fmt.Printf("Created shelves %q (%s) and %q (%s)\n",
			result.shelves[0].Name, result.shelves[0].ID, result.shelves[1].Name, result.shelves[1].ID)
	} else {
		fmt.Println("Some users already exist, skipping books and shelves")
	}

	fmt.Println("\nAccess tokens:")
	for _, su := range users {
		token, err := tokens.GenerateAccessToken(result.users[su.handle])
		if err != nil {
			log.Fatalf("Failed to issue token for %s: %v", su.handle, err)
		}
		fmt.Printf("  %-6s %s\n", su.handle, token)
	}
}

type seeder struct {
	users       *service.UserService
	books       *service.BookService
	memberships *service.MembershipService
	content     *service.ContentService
}

type seedResult struct {
	users   map[string]*domain.User
	shelves []*domain.Shelf
	fresh   bool
}

// run registers every seed user. Books and shelves are only created when
// none of the users existed beforehand.
func (s *seeder) run(ctx context.Context, seed []seedUser) (*seedResult, error) {
	result := &seedResult{users: map[string]*domain.User{}, fresh: true}
	for _, su := range seed {
		user, err := s.users.GetByHandle(ctx, su.handle)
		switch {
		case err == nil:
			result.users[su.handle] = user
			result.fresh = false
		case !domainerrors.Is(err, domainerrors.ErrNotFound):
			return nil, fmt.Errorf("look up %s: %w", su.handle, err)
		}
	}

	books := map[string][]*domain.Book{}
	for _, su := range seed {
		if _, ok := result.users[su.handle]; ok {
			continue
		}
		user, err := s.users.Register(ctx, su.handle, su.contact)
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", su.handle, err)
		}
		result.users[su.handle] = user

		if !result.fresh {
			continue
		}
		for _, b := range su.books {
			book, err := s.books.CreateBook(ctx, user.ID, service.CreateBookParams{Title: b[0], Author: b[1]})
			if err != nil {
				return nil, fmt.Errorf("create %q: %w", b[0], err)
			}
			books[su.handle] = append(books[su.handle], book)
		}
	}

	if !result.fresh {
		return result, nil
	}
	shelves, err := s.shelves(ctx, result.users, books)
	if err != nil {
		return nil, err
	}
	result.shelves = shelves
	return result, nil
}

// shelves builds a public shelf alice and bob share and a private one only
// alice can see.
func (s *seeder) shelves(
	ctx context.Context,
	users map[string]*domain.User,
	books map[string][]*domain.Book,
) ([]*domain.Shelf, error) {
	alice, bob := users["alice"], users["bob"]

	sciFi, err := s.memberships.CreateShelf(ctx, alice.ID, service.CreateShelfParams{
		Name:        "Sci-Fi",
		Description: "Books we are happy to lend",
	})
	if err != nil {
		return nil, fmt.Errorf("create shelf: %w", err)
	}

	private := false
	wishlist, err := s.memberships.CreateShelf(ctx, alice.ID, service.CreateShelfParams{
		Name:     "Wishlist",
		IsPublic: &private,
	})
	if err != nil {
		return nil, fmt.Errorf("create shelf: %w", err)
	}

	if _, err := s.memberships.Join(ctx, bob.ID, sciFi.ID); err != nil {
		return nil, fmt.Errorf("join %s: %w", sciFi.Name, err)
	}

	placements := []struct {
		user  *domain.User
		shelf *domain.Shelf
		book  *domain.Book
	}{
		{alice, sciFi, books["alice"][0]},
		{bob, sciFi, books["bob"][0]},
		{alice, wishlist, books["alice"][1]},
	}
	for _, p := range placements {
		if _, err := s.content.AddBookToShelf(ctx, p.user.ID, p.shelf.ID, p.book.ID); err != nil {
			return nil, fmt.Errorf("add %q to %s: %w", p.book.Title, p.shelf.Name, err)
		}
	}

	return []*domain.Shelf{sciFi, wishlist}, nil
}
