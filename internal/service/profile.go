package service

import (
	"context"
	"log/slog"

	"github.com/listenupapp/shelves-server/internal/access"
	"github.com/listenupapp/shelves-server/internal/domain"
	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
	"github.com/listenupapp/shelves-server/internal/id"
	"github.com/listenupapp/shelves-server/internal/store"
	"github.com/listenupapp/shelves-server/internal/validation"
)

// ProfileService reads and updates the principal's own profile.
type ProfileService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewProfileService creates a new profile service.
func NewProfileService(store store.Store, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

type contactUpdate struct {
	Contact string `json:"contact" validate:"max=200"`
}

// GetProfile returns the principal's user record.
func (s *ProfileService) GetProfile(ctx context.Context, principal string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, principal)
	if err != nil {
		return nil, storeError(err, "user")
	}
	return user, nil
}

// UpdateProfileContact sets the out-of-band contact on targetUserID's
// profile. Users may only edit themselves. An empty contact clears it.
func (s *ProfileService) UpdateProfileContact(ctx context.Context, principal, targetUserID, contact string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if err := checkID(id.PrefixUser, targetUserID, "user_id"); err != nil {
		return nil, err
	}
	if !access.CanEditProfile(principal, targetUserID) {
		return nil, domainerrors.Forbidden("you can only edit your own profile")
	}

	update := contactUpdate{Contact: cleanText(contact)}
	if err := s.validator.Validate(update); err != nil {
		return nil, err
	}

	user, err := s.store.UpdateUserContact(ctx, targetUserID, update.Contact)
	if err != nil {
		return nil, storeError(err, "user")
	}

	s.logger.Info("profile contact updated",
		"user_id", targetUserID,
		"cleared", update.Contact == "",
	)

	return user, nil
}
