package migrate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/migrate"
	"github.com/BuzzLyutic/plm-api/internal/testdb"
)

func TestRun_DownAndUp(t *testing.T) {
	pool, cleanup := testdb.Setup(t)
	defer cleanup()

	ctx := context.Background()
	logger := zap.NewNop()

	tableExists := func(name string) bool {
		var exists bool
		require.NoError(t, pool.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)
		`, name).Scan(&exists))
		return exists
	}

	require.NoError(t, migrate.Run(ctx, pool, logger, migrate.Status))
	assert.True(t, tableExists("task"))
	assert.True(t, tableExists("personal_note"))
	assert.True(t, tableExists("plm_goose_version"))

	require.NoError(t, migrate.Run(ctx, pool, logger, migrate.Down))
	assert.False(t, tableExists("personal_note"))
	assert.True(t, tableExists("task"))

	require.NoError(t, migrate.Run(ctx, pool, logger, migrate.Up))
	assert.True(t, tableExists("personal_note"))
}

func TestRun_UnknownCommand(t *testing.T) {
	pool, cleanup := testdb.Setup(t)
	defer cleanup()

	err := migrate.Run(context.Background(), pool, zap.NewNop(), migrate.Command("sideways"))
	assert.ErrorContains(t, err, `unknown migrate command "sideways"`)
}
