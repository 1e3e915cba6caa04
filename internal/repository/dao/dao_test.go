package dao

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory SQLite database with foreign keys
// enforced, so the cascade and restrict rules behave like production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the shared in-memory database alive for the
	// whole test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, InitTables(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func seedMembers(t *testing.T, db *gorm.DB, names ...string) []Member {
	t.Helper()

	members := make([]Member, 0, len(names))
	for _, name := range names {
		m := Member{Name: name}
		require.NoError(t, db.Create(&m).Error)
		members = append(members, m)
	}

	return members
}
