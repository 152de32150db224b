package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/listenupapp/shelves-server/internal/domain"
	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
	"github.com/listenupapp/shelves-server/internal/id"
	"github.com/listenupapp/shelves-server/internal/store"
	"github.com/listenupapp/shelves-server/internal/validation"
)

// UserService creates user records. Credentials are handled elsewhere; this
// only provides the rows that shelves and books hang off.
type UserService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewUserService creates a new user service.
func NewUserService(store store.Store, logger *slog.Logger) *UserService {
	return &UserService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

type registration struct {
	Handle  string `json:"handle" validate:"required,min=3,max=32,handle"`
	Contact string `json:"contact" validate:"max=200"`
}

// Register creates a user with a unique handle.
func (s *UserService) Register(ctx context.Context, handle, contact string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := registration{
		Handle:  cleanText(handle),
		Contact: cleanText(contact),
	}
	if err := s.validator.Validate(params); err != nil {
		return nil, err
	}

	userID, err := id.Generate(id.PrefixUser)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "generate user id")
	}

	now := time.Now()
	user := &domain.User{
		CreatedAt: now,
		UpdatedAt: now,
		ID:        userID,
		Handle:    params.Handle,
		Contact:   params.Contact,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("handle is already taken")
		}
		return nil, storeError(err, "user")
	}

	s.logger.Info("user registered",
		"user_id", userID,
		"handle", user.Handle,
	)

	return user, nil
}

// GetByHandle looks a user up by handle.
func (s *UserService) GetByHandle(ctx context.Context, handle string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByHandle(ctx, cleanText(handle))
	if err != nil {
		return nil, storeError(err, "user")
	}
	return user, nil
}
