//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("collections are bound", func(t *testing.T) {
		assert.NotNil(t, db.Orders)
		assert.NotNil(t, db.ClosedDates)
		assert.NotNil(t, db.Logs)
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("unique indexes exist", func(t *testing.T) {
		specs, err := db.ClosedDates.Indexes().ListSpecifications(ctx)
		require.NoError(t, err)

		names := make([]string, 0, len(specs))
		for _, s := range specs {
			names = append(names, s.Name)
		}
		assert.Contains(t, names, "date_1")
	})

	t.Run("set logs TTL is repeatable", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))
		require.NoError(t, db.SetLogsTTL(ctx, 7*24*time.Hour))
	})
}

func TestNewMongoDB_Unreachable(t *testing.T) {
	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 500 * time.Millisecond
	cfg.ServerSelectionTimeout = 500 * time.Millisecond

	_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "unreachable", cfg)
	assert.Error(t, err)
}
