package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/erp/receiving/internal/domain/shared"
	"github.com/erp/receiving/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_SQLiteFile(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "receiving.db"),
	}

	db, err := NewDatabase(cfg, nil)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate())
	require.NoError(t, db.Ping(context.Background()))

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections)

	assert.False(t, supportsRowLocks(db.DB))
	ok, err := NewGormReceivingSlipRepository(db.DB).ExistsByReferenceNo(context.Background(), "RS-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewDatabase_TranslatesUniqueViolations(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "receiving.db"),
	}
	db, err := NewDatabase(cfg, nil)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.AutoMigrate())

	repo := NewGormReceivingSlipRepository(db.DB)
	require.NoError(t, repo.Create(context.Background(), newSlip(t, "Acme", "RS-1", day(2024, 5, 2))))
	err = repo.Create(context.Background(), newSlip(t, "Acme", "RS-1", day(2024, 5, 2)))
	assert.ErrorIs(t, err, shared.ErrConflict)
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := NewDatabase(&config.DatabaseConfig{Driver: "oracle"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "data/rcv.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("data/rcv.db"))
}
