package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/shelves-server/internal/domain"
)

func (s *Server) registerProfileRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getMyProfile",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/me",
		Summary:     "Get my profile",
		Description: "Returns the current user's profile",
		Tags:        []string{"Users"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetMyProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateMyContact",
		Method:      http.MethodPatch,
		Path:        "/api/v1/users/me/contact",
		Summary:     "Update my contact",
		Description: "Sets or clears the out-of-band contact shown to fellow shelf members",
		Tags:        []string{"Users"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateMyContact)
}

// === DTOs ===

// ProfileResponse contains the current user's profile.
type ProfileResponse struct {
	ID        string    `json:"id" doc:"User ID"`
	Handle    string    `json:"handle" doc:"Display handle"`
	Contact   string    `json:"contact" doc:"Out-of-band contact, empty when unset"`
	CreatedAt time.Time `json:"created_at" doc:"Registration time"`
	UpdatedAt time.Time `json:"updated_at" doc:"Last profile change"`
}

// ProfileOutput wraps the profile response for Huma.
type ProfileOutput struct {
	Body ProfileResponse
}

// UpdateContactRequest is the request body for updating the contact.
type UpdateContactRequest struct {
	Contact string `json:"contact" maxLength:"200" doc:"New contact; empty clears it"`
}

// UpdateContactInput wraps the update contact request for Huma.
type UpdateContactInput struct {
	Authorization string `header:"Authorization"`
	Body          UpdateContactRequest
}

// === Handlers ===

func (s *Server) handleGetMyProfile(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.services.Profile.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{Body: mapProfile(user)}, nil
}

func (s *Server) handleUpdateMyContact(ctx context.Context, input *UpdateContactInput) (*ProfileOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.services.Profile.UpdateProfileContact(ctx, userID, userID, input.Body.Contact)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{Body: mapProfile(user)}, nil
}

func mapProfile(u *domain.User) ProfileResponse {
	return ProfileResponse{
		ID:        u.ID,
		Handle:    u.Handle,
		Contact:   u.Contact,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
