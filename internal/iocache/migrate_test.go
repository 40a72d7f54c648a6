package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/huangsam/archsurvey/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateStore_NoneBackend(t *testing.T) {
	err := MigrateStore(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrateStore_Unsupported(t *testing.T) {
	assert.Error(t, MigrateStore("oracle", "", -1))
}

// tableExists reports whether a table is present in a SQLite database.
func tableExists(t *testing.T, dbPath, table string) bool {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&count)
	require.NoError(t, err)
	return count > 0
}

func TestMigrateStore_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_migration.db")

	// Run migration to latest version
	require.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, -1))
	for _, table := range storeTables {
		assert.True(t, tableExists(t, dbPath, table), table)
	}

	// Run migration again (should be a no-op)
	assert.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, -1))

	// Step down to version 1 keeps only the runs table
	require.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, 1))
	assert.True(t, tableExists(t, dbPath, runsTable))
	assert.False(t, tableExists(t, dbPath, answersTable))
	assert.False(t, tableExists(t, dbPath, chatMessagesTable))

	// Rollback to version 0
	require.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, 0))
	assert.False(t, tableExists(t, dbPath, runsTable))

	// Migrate back up to version 2
	require.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, 2))
	assert.True(t, tableExists(t, dbPath, answersTable))
}

func TestMigrateStore_CompatibleWithStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "compat.db")

	require.NoError(t, MigrateStore(schema.SQLiteBackend, dbPath, -1))

	store, err := NewSurveyStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.RecordRun(sampleResult("migrated"))
	require.NoError(t, err)
	_, err = store.GetRun(runID)
	assert.NoError(t, err)
}
