package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/listenupapp/shelves-server/internal/access"
	"github.com/listenupapp/shelves-server/internal/domain"
	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
	"github.com/listenupapp/shelves-server/internal/id"
	"github.com/listenupapp/shelves-server/internal/store"
	"github.com/listenupapp/shelves-server/internal/validation"
)

// MembershipService creates shelves and manages who belongs to them.
type MembershipService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewMembershipService creates a new membership service.
func NewMembershipService(store store.Store, logger *slog.Logger) *MembershipService {
	return &MembershipService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// CreateShelfParams contains fields for creating a shelf.
type CreateShelfParams struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsPublic    *bool  `json:"is_public"` // nil means public
}

// CreateShelf creates a shelf owned by principal together with the owner's
// membership, in one transaction.
func (s *MembershipService) CreateShelf(ctx context.Context, principal string, params CreateShelfParams) (*domain.Shelf, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	params.Name = cleanText(params.Name)
	params.Description = cleanText(params.Description)
	if err := s.validator.Validate(params); err != nil {
		return nil, err
	}

	isPublic := true
	if params.IsPublic != nil {
		isPublic = *params.IsPublic
	}

	shelfID, err := id.Generate(id.PrefixShelf)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "generate shelf id")
	}

	now := time.Now()
	shelf := &domain.Shelf{
		CreatedAt:   now,
		ID:          shelfID,
		OwnerID:     principal,
		Name:        params.Name,
		Description: params.Description,
		Visibility:  domain.VisibilityFromBool(isPublic),
	}
	owner := &domain.Membership{
		CreatedAt: now,
		ID:        id.NewRowID(),
		ShelfID:   shelfID,
		UserID:    principal,
	}

	err = s.store.InTx(ctx, func(q store.Queries) error {
		if err := q.CreateShelf(ctx, shelf); err != nil {
			return err
		}
		return q.CreateMembership(ctx, owner)
	})
	if err != nil {
		// The only foreign key here is the owner.
		return nil, storeError(err, "user")
	}

	s.logger.Info("shelf created",
		"shelf_id", shelfID,
		"owner_id", principal,
		"visibility", shelf.Visibility,
	)

	return shelf, nil
}

// GetShelf returns a shelf the principal can view. A private shelf the
// principal cannot see is reported as not found.
func (s *MembershipService) GetShelf(ctx context.Context, principal, shelfID string) (*domain.Shelf, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if err := checkID(id.PrefixShelf, shelfID, "shelf_id"); err != nil {
		return nil, err
	}

	shelf, isMember, err := loadShelf(ctx, s.store, principal, shelfID)
	if err != nil {
		return nil, err
	}
	if !access.CanView(principal, shelf, isMember) {
		return nil, domainerrors.NotFound("shelf not found")
	}
	return shelf, nil
}

// ListVisibleShelves returns every shelf the principal owns or has joined.
func (s *MembershipService) ListVisibleShelves(ctx context.Context, principal string) ([]*domain.Shelf, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	shelves, err := s.store.ListShelvesForMember(ctx, principal)
	if err != nil {
		return nil, storeError(err, "shelf")
	}
	return shelves, nil
}

// ListJoinableShelves returns public shelves the principal has no membership on.
func (s *MembershipService) ListJoinableShelves(ctx context.Context, principal string) ([]*domain.Shelf, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	shelves, err := s.store.ListJoinableShelves(ctx, principal)
	if err != nil {
		return nil, storeError(err, "shelf")
	}
	return shelves, nil
}

// Join makes principal a member of a public shelf.
//
// Owners, existing members and outsiders of a private shelf are Forbidden.
// The loser of two concurrent joins gets a Conflict; either way the
// membership exists exactly once afterwards.
func (s *MembershipService) Join(ctx context.Context, principal, shelfID string) (*domain.Membership, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if err := checkID(id.PrefixShelf, shelfID, "shelf_id"); err != nil {
		return nil, err
	}

	shelf, isMember, err := loadShelf(ctx, s.store, principal, shelfID)
	if err != nil {
		return nil, err
	}

	isOwner := shelf.IsOwnedBy(principal)
	if !access.CanJoin(shelf, isOwner, isMember) {
		return nil, joinRefusal(shelf, isOwner, isMember)
	}

	membership := &domain.Membership{
		CreatedAt: time.Now(),
		ID:        id.NewRowID(),
		ShelfID:   shelfID,
		UserID:    principal,
	}
	if err := s.store.CreateMembership(ctx, membership); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			s.logger.Warn("concurrent join already recorded",
				"shelf_id", shelfID,
				"user_id", principal,
			)
			return nil, domainerrors.Conflict("already a member of this shelf")
		}
		// The shelf was loaded above, so a missing row is the user.
		return nil, storeError(err, "user")
	}

	s.logger.Info("user joined shelf",
		"shelf_id", shelfID,
		"user_id", principal,
	)

	return membership, nil
}

func joinRefusal(shelf *domain.Shelf, isOwner, isMember bool) *domainerrors.Error {
	switch {
	case isOwner:
		return domainerrors.Forbidden("you own this shelf")
	case isMember:
		return domainerrors.Forbidden("already a member of this shelf")
	case !shelf.IsPublic():
		return domainerrors.Forbidden("this shelf is private")
	default:
		return domainerrors.Forbidden("you cannot join this shelf")
	}
}

// GetMembers returns the shelf's members in the order they joined.
// It does not check visibility; callers establish that with GetShelf first.
func (s *MembershipService) GetMembers(ctx context.Context, principal, shelfID string) ([]domain.UserSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if err := checkID(id.PrefixShelf, shelfID, "shelf_id"); err != nil {
		return nil, err
	}

	if _, err := s.store.GetShelf(ctx, shelfID); err != nil {
		return nil, storeError(err, "shelf")
	}

	members, err := s.store.ListMembers(ctx, shelfID)
	if err != nil {
		return nil, storeError(err, "shelf")
	}
	return members, nil
}

// loadShelf fetches a shelf and whether principal is a member of it.
func loadShelf(ctx context.Context, q store.Queries, principal, shelfID string) (*domain.Shelf, bool, error) {
	shelf, err := q.GetShelf(ctx, shelfID)
	if err != nil {
		return nil, false, storeError(err, "shelf")
	}

	isMember, err := q.MembershipExists(ctx, shelfID, principal)
	if err != nil {
		return nil, false, storeError(err, "shelf")
	}
	return shelf, isMember, nil
}
