package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"feedwatch/internal/db"
	"feedwatch/internal/model"
)

// NewTestDB opens a fully migrated database in a per-test temp directory.
// It is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

// SeedFeed inserts a feed row directly.
func SeedFeed(t *testing.T, db *sql.DB, feed model.Feed) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO feeds (name, channel_id, guild_id, url) VALUES (?, ?, ?, ?)`,
		feed.Name, feed.ChannelID, feed.GuildID, feed.URL,
	)
	require.NoError(t, err)
}

// SeedEntry inserts an entry row directly.
func SeedEntry(t *testing.T, db *sql.DB, entry model.Entry) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO entries (feed_name, channel_id, entry_id, updated) VALUES (?, ?, ?, ?)`,
		entry.FeedName, entry.ChannelID, entry.EntryID, entry.Updated,
	)
	require.NoError(t, err)
}
