package commands_test

import (
	"testing"

	"quickcart/internal/core/application/usecases/commands"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler(t *testing.T) {
	t.Run("should require name, password and email", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), user.Customer, "", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should store a hashed credential", func(t *testing.T) {
		f := newFixture(t)

		u, err := f.store.Users().Get(f.ctx, f.customerID)
		require.NoError(t, err)
		assert.Equal(t, "customer1", u.Name())
		assert.NotEqual(t, "secret", u.Credential().Hash())
		assert.True(t, u.Login("customer1", "secret"))
	})

	t.Run("should reject a taken display name", func(t *testing.T) {
		f := newFixture(t)
		cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), user.Rider, "customer1", "pw", "x@example.com")
		require.NoError(t, err)

		err = commands.NewRegisterUserCommandHandler(f.account).Handle(f.ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("should reject malformed emails", func(t *testing.T) {
		f := newFixture(t)
		cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), user.Customer, "dora", "pw", "not-an-email")
		require.NoError(t, err)

		err = commands.NewRegisterUserCommandHandler(f.account).Handle(f.ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUpdateProfileCommandHandler(t *testing.T) {
	t.Run("should require at least one field", func(t *testing.T) {
		_, err := commands.NewUpdateProfileCommand(kernel.NewUUID(), " ", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should change email and keep the password", func(t *testing.T) {
		f := newFixture(t)
		cmd, err := commands.NewUpdateProfileCommand(f.customerID, "new@example.com", "")
		require.NoError(t, err)

		require.NoError(t, commands.NewUpdateProfileCommandHandler(f.account).Handle(f.ctx, cmd))

		u, err := f.store.Users().Get(f.ctx, f.customerID)
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", u.Email())
		assert.True(t, u.Login("customer1", "secret"))
	})

	t.Run("should re-hash a new password", func(t *testing.T) {
		f := newFixture(t)
		cmd, err := commands.NewUpdateProfileCommand(f.riderID, "", "changed")
		require.NoError(t, err)

		require.NoError(t, commands.NewUpdateProfileCommandHandler(f.account).Handle(f.ctx, cmd))

		u, err := f.store.Users().Get(f.ctx, f.riderID)
		require.NoError(t, err)
		assert.False(t, u.Login("rider1", "secret"))
		assert.True(t, u.Login("rider1", "changed"))
	})
}
