package cmd_test

import (
	"testing"

	"quickcart/cmd"
	"quickcart/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeedUsers(t *testing.T) {
	t.Run("should parse the default users", func(t *testing.T) {
		users, err := cmd.ParseSeedUsers(cmd.DefaultSeedUsers)

		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, cmd.SeedUser{
			Role: user.Admin, Name: "adminKorede", Password: "admin123", Email: "admin@quickcart.com",
		}, users[0])
		assert.Equal(t, user.Customer, users[1].Role)
		assert.Equal(t, user.Rider, users[2].Role)
	})

	t.Run("should keep colons inside the email part", func(t *testing.T) {
		users, err := cmd.ParseSeedUsers("customer:bob:pw:bob:x@example.com")

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "bob:x@example.com", users[0].Email)
	})

	t.Run("should return nothing for an empty list", func(t *testing.T) {
		users, err := cmd.ParseSeedUsers("")

		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("should reject a short entry", func(t *testing.T) {
		_, err := cmd.ParseSeedUsers("customer:bob")

		assert.Error(t, err)
	})

	t.Run("should reject an unknown role", func(t *testing.T) {
		_, err := cmd.ParseSeedUsers("owner:bob:pw:bob@example.com")

		assert.Error(t, err)
	})
}

func TestCSV(t *testing.T) {
	t.Run("should trim and drop blanks", func(t *testing.T) {
		assert.Equal(t, []string{"a:9092", "b:9092"}, cmd.CSV(" a:9092, ,b:9092 "))
	})

	t.Run("should return nil for empty input", func(t *testing.T) {
		assert.Nil(t, cmd.CSV(""))
	})
}
