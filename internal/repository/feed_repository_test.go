package repository_test

import (
	"context"
	"testing"

	"feedwatch/internal/model"
	"feedwatch/internal/repository"
	"feedwatch/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestFeedRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(db)
	ctx := context.Background()

	feed := model.Feed{
		Name:      "releases",
		ChannelID: 100,
		GuildID:   1,
		URL:       "https://example.com/releases.atom",
	}
	err := repo.Create(ctx, feed)
	require.NoError(t, err)

	fetched, err := repo.GetByChannelID(ctx, 100)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, feed, *fetched)
}

func TestFeedRepository_GetByChannelID_Missing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(db)

	fetched, err := repo.GetByChannelID(context.Background(), 42)
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestFeedRepository_Create_DuplicateChannel(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(db)
	ctx := context.Background()

	feed := model.Feed{Name: "news", ChannelID: 100, GuildID: 1, URL: "u1"}
	require.NoError(t, repo.Create(ctx, feed))

	err := repo.Create(ctx, model.Feed{Name: "other", ChannelID: 100, GuildID: 1, URL: "u2"})
	require.Error(t, err)

	// The original row survives untouched
	feeds, err := repo.ListByGuildID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	require.Equal(t, "news", feeds[0].Name)
}

func TestFeedRepository_ListByGuildID_SortedByChannel(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(db)
	ctx := context.Background()

	testutil.SeedFeed(t, db, model.Feed{Name: "c", ChannelID: 300, GuildID: 1, URL: "u3"})
	testutil.SeedFeed(t, db, model.Feed{Name: "a", ChannelID: 100, GuildID: 1, URL: "u1"})
	testutil.SeedFeed(t, db, model.Feed{Name: "b", ChannelID: 200, GuildID: 2, URL: "u2"})

	feeds, err := repo.ListByGuildID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, feeds, 2)
	require.Equal(t, int64(100), feeds[0].ChannelID)
	require.Equal(t, int64(300), feeds[1].ChannelID)

	feeds, err = repo.ListByGuildID(ctx, 99)
	require.NoError(t, err)
	require.Empty(t, feeds)
}

func TestFeedRepository_DeleteByChannelID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(db)
	ctx := context.Background()

	testutil.SeedFeed(t, db, model.Feed{Name: "news", ChannelID: 100, GuildID: 1, URL: "u"})

	deleted, err := repo.DeleteByChannelID(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	// Deleting again is a no-op
	deleted, err = repo.DeleteByChannelID(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, int64(0), deleted)

	fetched, err := repo.GetByChannelID(ctx, 100)
	require.NoError(t, err)
	require.Nil(t, fetched)
}
