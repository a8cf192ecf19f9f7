package postgres_test

import (
	"context"
	"testing"

	"quickcart/internal/adapters/out/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionConfig_DSN(t *testing.T) {
	t.Run("should build a key value connection string", func(t *testing.T) {
		cfg := postgres.ConnectionConfig{
			Host: "db", Port: "5432", User: "quickcart", Password: "secret", Name: "shop", SSLMode: "require",
		}

		assert.Equal(t, "host=db port=5432 user=quickcart password=secret dbname=shop sslmode=require", cfg.DSN())
	})

	t.Run("should disable ssl by default", func(t *testing.T) {
		assert.Contains(t, postgres.ConnectionConfig{}.DSN(), "sslmode=disable")
	})
}

func TestOpen(t *testing.T) {
	t.Run("should open an in-memory sqlite database", func(t *testing.T) {
		db, err := postgres.Open(context.Background(), postgres.DriverSQLite, ":memory:")

		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.NoError(t, sqlDB.Close())
	})

	t.Run("should reject an unknown driver", func(t *testing.T) {
		_, err := postgres.Open(context.Background(), "mysql", "")

		assert.ErrorContains(t, err, "unsupported database driver")
	})
}
