package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

func TestUp_IsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	applied, err := Up(ctx, db, "sqlite3", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.sql"}, applied)

	applied, err = Up(ctx, db, "sqlite3", logger.Nop())
	require.NoError(t, err)
	assert.Empty(t, applied)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM reservations`).Scan(&count))
	assert.Zero(t, count)
}

func TestUp_UnknownDriver(t *testing.T) {
	_, err := Up(context.Background(), nil, "mysql", logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestList_PostgresSorted(t *testing.T) {
	names, err := list("postgres")
	require.NoError(t, err)
	assert.Contains(t, names, "0001_init.sql")
}
