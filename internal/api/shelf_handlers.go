package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/shelves-server/internal/domain"
	"github.com/listenupapp/shelves-server/internal/service"
)

func (s *Server) registerShelfRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "createShelf",
		Method:        http.MethodPost,
		Path:          "/api/v1/shelves",
		Summary:       "Create shelf",
		Description:   "Creates a shelf owned by the current user, who becomes its first member",
		Tags:          []string{"Shelves"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateShelf)

	huma.Register(s.api, huma.Operation{
		OperationID: "listMyShelves",
		Method:      http.MethodGet,
		Path:        "/api/v1/shelves",
		Summary:     "List my shelves",
		Description: "Returns the shelves the current user belongs to, oldest first",
		Tags:        []string{"Shelves"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListMyShelves)

	huma.Register(s.api, huma.Operation{
		OperationID: "listJoinableShelves",
		Method:      http.MethodGet,
		Path:        "/api/v1/shelves/joinable",
		Summary:     "List joinable shelves",
		Description: "Returns public shelves the current user neither owns nor belongs to",
		Tags:        []string{"Shelves"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListJoinableShelves)

	huma.Register(s.api, huma.Operation{
		OperationID: "getShelf",
		Method:      http.MethodGet,
		Path:        "/api/v1/shelves/{id}",
		Summary:     "Get shelf",
		Description: "Returns a shelf the current user can view",
		Tags:        []string{"Shelves"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetShelf)

	huma.Register(s.api, huma.Operation{
		OperationID:   "joinShelf",
		Method:        http.MethodPost,
		Path:          "/api/v1/shelves/{id}/members",
		Summary:       "Join shelf",
		Description:   "Adds the current user to a public shelf",
		Tags:          []string{"Shelves"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleJoinShelf)

	huma.Register(s.api, huma.Operation{
		OperationID: "listShelfMembers",
		Method:      http.MethodGet,
		Path:        "/api/v1/shelves/{id}/members",
		Summary:     "List shelf members",
		Description: "Returns the members of a shelf the current user can view",
		Tags:        []string{"Shelves"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListShelfMembers)

	huma.Register(s.api, huma.Operation{
		OperationID: "listShelfBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/shelves/{id}/books",
		Summary:     "List shelf books",
		Description: "Returns the books on a shelf the current user can view",
		Tags:        []string{"Shelves"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListShelfBooks)

	huma.Register(s.api, huma.Operation{
		OperationID:   "addBookToShelf",
		Method:        http.MethodPost,
		Path:          "/api/v1/shelves/{id}/books",
		Summary:       "Add book to shelf",
		Description:   "Puts a book on a shelf (owner or member)",
		Tags:          []string{"Shelves"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleAddBookToShelf)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeBookFromShelf",
		Method:      http.MethodDelete,
		Path:        "/api/v1/shelves/{id}/books/{bookId}",
		Summary:     "Remove book from shelf",
		Description: "Takes a book off a shelf (owner or member)",
		Tags:        []string{"Shelves"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleRemoveBookFromShelf)
}

// === DTOs ===

// ShelfResponse contains shelf data in API responses.
type ShelfResponse struct {
	ID          string    `json:"id" doc:"Shelf ID"`
	OwnerID     string    `json:"owner_id" doc:"Owner user ID"`
	Name        string    `json:"name" doc:"Shelf name"`
	Description string    `json:"description" doc:"Shelf description"`
	IsPublic    bool      `json:"is_public" doc:"Whether anyone may view and join the shelf"`
	CreatedAt   time.Time `json:"created_at" doc:"Creation time"`
}

// ShelfOutput wraps the shelf response for Huma.
type ShelfOutput struct {
	Body ShelfResponse
}

// ListShelvesResponse contains a list of shelves.
type ListShelvesResponse struct {
	Shelves []ShelfResponse `json:"shelves" doc:"List of shelves"`
}

// ListShelvesOutput wraps the list shelves response for Huma.
type ListShelvesOutput struct {
	Body ListShelvesResponse
}

// CreateShelfRequest is the request body for creating a shelf.
type CreateShelfRequest struct {
	Name        string `json:"name" maxLength:"100" doc:"Shelf name"`
	Description string `json:"description,omitempty" maxLength:"500" doc:"Shelf description"`
	IsPublic    *bool  `json:"is_public,omitempty" doc:"Visibility, public when omitted"`
}

// CreateShelfInput wraps the create shelf request for Huma.
type CreateShelfInput struct {
	Authorization string `header:"Authorization"`
	Body          CreateShelfRequest
}

// ShelfIDInput contains the shelf ID path parameter.
type ShelfIDInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Shelf ID"`
}

// MemberResponse describes one shelf member.
type MemberResponse struct {
	ID      string `json:"id" doc:"User ID"`
	Handle  string `json:"handle" doc:"Display handle"`
	Contact string `json:"contact,omitempty" doc:"Out-of-band contact"`
}

// ListMembersResponse contains a shelf's members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members" doc:"Shelf members in join order"`
}

// ListMembersOutput wraps the members response for Huma.
type ListMembersOutput struct {
	Body ListMembersResponse
}

// MembershipResponse describes a new membership.
type MembershipResponse struct {
	ID        string    `json:"id" doc:"Membership ID"`
	ShelfID   string    `json:"shelf_id" doc:"Shelf ID"`
	UserID    string    `json:"user_id" doc:"Member user ID"`
	CreatedAt time.Time `json:"created_at" doc:"Join time"`
}

// MembershipOutput wraps the membership response for Huma.
type MembershipOutput struct {
	Body MembershipResponse
}

// AddBookToShelfRequest is the request body for adding a book to a shelf.
type AddBookToShelfRequest struct {
	BookID string `json:"book_id" doc:"Book ID to add"`
}

// AddBookToShelfInput wraps the add book request for Huma.
type AddBookToShelfInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Shelf ID"`
	Body          AddBookToShelfRequest
}

// ShelfBookLinkResponse describes a book placed on a shelf.
type ShelfBookLinkResponse struct {
	ID        string    `json:"id" doc:"Link ID"`
	ShelfID   string    `json:"shelf_id" doc:"Shelf ID"`
	BookID    string    `json:"book_id" doc:"Book ID"`
	CreatedAt time.Time `json:"created_at" doc:"Time the book was added"`
}

// ShelfBookLinkOutput wraps the link response for Huma.
type ShelfBookLinkOutput struct {
	Body ShelfBookLinkResponse
}

// RemoveBookFromShelfInput contains parameters for removing a book from a shelf.
type RemoveBookFromShelfInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Shelf ID"`
	BookID        string `path:"bookId" doc:"Book ID"`
}

// === Handlers ===

func (s *Server) handleCreateShelf(ctx context.Context, input *CreateShelfInput) (*ShelfOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	shelf, err := s.services.Membership.CreateShelf(ctx, userID, service.CreateShelfParams{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		IsPublic:    input.Body.IsPublic,
	})
	if err != nil {
		return nil, err
	}

	return &ShelfOutput{Body: mapShelf(shelf)}, nil
}

func (s *Server) handleListMyShelves(ctx context.Context, _ *struct{}) (*ListShelvesOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	shelves, err := s.services.Membership.ListVisibleShelves(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ListShelvesOutput{Body: ListShelvesResponse{Shelves: mapShelves(shelves)}}, nil
}

func (s *Server) handleListJoinableShelves(ctx context.Context, _ *struct{}) (*ListShelvesOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	shelves, err := s.services.Membership.ListJoinableShelves(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ListShelvesOutput{Body: ListShelvesResponse{Shelves: mapShelves(shelves)}}, nil
}

func (s *Server) handleGetShelf(ctx context.Context, input *ShelfIDInput) (*ShelfOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	shelf, err := s.services.Membership.GetShelf(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	return &ShelfOutput{Body: mapShelf(shelf)}, nil
}

func (s *Server) handleJoinShelf(ctx context.Context, input *ShelfIDInput) (*MembershipOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	m, err := s.services.Membership.Join(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	return &MembershipOutput{Body: MembershipResponse{
		ID:        m.ID,
		ShelfID:   m.ShelfID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}}, nil
}

func (s *Server) handleListShelfMembers(ctx context.Context, input *ShelfIDInput) (*ListMembersOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	// Private shelves stay hidden from non-members.
	if _, err := s.services.Membership.GetShelf(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	members, err := s.services.Membership.GetMembers(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	resp := make([]MemberResponse, len(members))
	for i, m := range members {
		resp[i] = MemberResponse{ID: m.ID, Handle: m.Handle, Contact: m.Contact}
	}

	return &ListMembersOutput{Body: ListMembersResponse{Members: resp}}, nil
}

func (s *Server) handleListShelfBooks(ctx context.Context, input *ShelfIDInput) (*ListBooksOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.services.Membership.GetShelf(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	books, err := s.services.Content.ListBooksOnShelf(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	return &ListBooksOutput{Body: ListBooksResponse{Books: mapBooks(books)}}, nil
}

func (s *Server) handleAddBookToShelf(ctx context.Context, input *AddBookToShelfInput) (*ShelfBookLinkOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	link, err := s.services.Content.AddBookToShelf(ctx, userID, input.ID, input.Body.BookID)
	if err != nil {
		return nil, err
	}

	return &ShelfBookLinkOutput{Body: ShelfBookLinkResponse{
		ID:        link.ID,
		ShelfID:   link.ShelfID,
		BookID:    link.BookID,
		CreatedAt: link.CreatedAt,
	}}, nil
}

func (s *Server) handleRemoveBookFromShelf(ctx context.Context, input *RemoveBookFromShelfInput) (*MessageOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Content.RemoveBookFromShelf(ctx, userID, input.ID, input.BookID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Book removed from shelf"}}, nil
}

func mapShelf(sh *domain.Shelf) ShelfResponse {
	return ShelfResponse{
		ID:          sh.ID,
		OwnerID:     sh.OwnerID,
		Name:        sh.Name,
		Description: sh.Description,
		IsPublic:    sh.IsPublic(),
		CreatedAt:   sh.CreatedAt,
	}
}

func mapShelves(shelves []*domain.Shelf) []ShelfResponse {
	resp := make([]ShelfResponse, len(shelves))
	for i, sh := range shelves {
		resp[i] = mapShelf(sh)
	}
	return resp
}
