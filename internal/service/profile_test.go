package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
)

func TestUpdateProfileContact(t *testing.T) {
	env := setupTest(t)
	ctx := context.Background()
	me := env.register(t, "myself")
	you := env.register(t, "yours")

	t.Run("self", func(t *testing.T) {
		u, err := env.profiles.UpdateProfileContact(ctx, me.ID, me.ID, "  @me_on_telegram ")
		require.NoError(t, err)
		assert.Equal(t, "@me_on_telegram", u.Contact)

		got, err := env.profiles.GetProfile(ctx, me.ID)
		require.NoError(t, err)
		assert.Equal(t, "@me_on_telegram", got.Contact)
	})

	t.Run("empty clears", func(t *testing.T) {
		u, err := env.profiles.UpdateProfileContact(ctx, me.ID, me.ID, "   ")
		require.NoError(t, err)
		assert.Empty(t, u.Contact)
	})

	t.Run("someone else", func(t *testing.T) {
		_, err := env.profiles.UpdateProfileContact(ctx, me.ID, you.ID, "@hijack")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := env.profiles.UpdateProfileContact(ctx, me.ID, me.ID, strings.Repeat("c", 201))
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := env.profiles.GetProfile(ctx, "")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
