package repository_test

import (
	"context"
	"testing"

	"feedwatch/internal/model"
	"feedwatch/internal/repository"
	"feedwatch/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestEntryRepository_UpsertAndListSeen(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	err := repo.UpsertBatch(ctx, []model.Entry{
		{FeedName: "news", ChannelID: 100, EntryID: 1, Updated: "t1"},
		{FeedName: "news", ChannelID: 100, EntryID: 2, Updated: "t2"},
	})
	require.NoError(t, err)

	entries, err := repo.ListSeen(ctx, 100, []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byID := make(map[int64]model.Entry, len(entries))
	for _, e := range entries {
		byID[e.EntryID] = e
	}
	require.Equal(t, "t1", byID[1].Updated)
	require.Equal(t, "t2", byID[2].Updated)
}

func TestEntryRepository_UpsertBatch_RefreshesUpdated(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	err := repo.UpsertBatch(ctx, []model.Entry{{FeedName: "news", ChannelID: 100, EntryID: 1, Updated: "t1"}})
	require.NoError(t, err)
	err = repo.UpsertBatch(ctx, []model.Entry{{FeedName: "renamed", ChannelID: 100, EntryID: 1, Updated: "t2"}})
	require.NoError(t, err)

	count, err := repo.CountByChannelID(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	entries, err := repo.ListSeen(ctx, 100, []int64{1})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "t2", entries[0].Updated)
	require.Equal(t, "renamed", entries[0].FeedName)
}

func TestEntryRepository_ListSeen_NoIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)

	entries, err := repo.ListSeen(context.Background(), 100, nil)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestEntryRepository_ListSeen_ScopedToChannel(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	// The same entry ID may be recorded for two different channels
	testutil.SeedEntry(t, db, model.Entry{FeedName: "a", ChannelID: 100, EntryID: 1, Updated: "t1"})
	testutil.SeedEntry(t, db, model.Entry{FeedName: "b", ChannelID: 200, EntryID: 1, Updated: "t9"})

	entries, err := repo.ListSeen(ctx, 100, []int64{1})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "a", entries[0].FeedName)
	require.Equal(t, "t1", entries[0].Updated)
}

func TestEntryRepository_PairUniqueness(t *testing.T) {
	db := testutil.NewTestDB(t)

	testutil.SeedEntry(t, db, model.Entry{FeedName: "news", ChannelID: 100, EntryID: 1, Updated: "t1"})

	_, err := db.Exec(
		`INSERT INTO entries (feed_name, channel_id, entry_id, updated) VALUES (?, ?, ?, ?)`,
		"news", int64(100), int64(1), "t2",
	)
	require.Error(t, err)
}

func TestEntryRepository_DeleteByChannelID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	testutil.SeedEntry(t, db, model.Entry{FeedName: "a", ChannelID: 100, EntryID: 1, Updated: "t1"})
	testutil.SeedEntry(t, db, model.Entry{FeedName: "a", ChannelID: 100, EntryID: 2, Updated: "t2"})
	testutil.SeedEntry(t, db, model.Entry{FeedName: "b", ChannelID: 200, EntryID: 1, Updated: "t3"})

	deleted, err := repo.DeleteByChannelID(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	count, err := repo.CountByChannelID(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	count, err = repo.CountByChannelID(ctx, 200)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestEntryRepository_DeleteOrphans(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	testutil.SeedFeed(t, db, model.Feed{Name: "live", ChannelID: 100, GuildID: 1, URL: "u"})
	testutil.SeedEntry(t, db, model.Entry{FeedName: "live", ChannelID: 100, EntryID: 1, Updated: "t1"})
	testutil.SeedEntry(t, db, model.Entry{FeedName: "gone", ChannelID: 200, EntryID: 1, Updated: "t2"})
	testutil.SeedEntry(t, db, model.Entry{FeedName: "gone", ChannelID: 200, EntryID: 2, Updated: "t3"})

	deleted, err := repo.DeleteOrphans(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	count, err := repo.CountByChannelID(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
