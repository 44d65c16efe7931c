package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"feedwatch/internal/model"
)

type FeedRepository interface {
	Create(ctx context.Context, feed model.Feed) error
	GetByChannelID(ctx context.Context, channelID int64) (*model.Feed, error)
	ListByGuildID(ctx context.Context, guildID int64) ([]model.Feed, error)
	DeleteByChannelID(ctx context.Context, channelID int64) (int64, error)
}

type feedRepository struct {
	db dbtx
}

func NewFeedRepository(db dbtx) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) Create(ctx context.Context, feed model.Feed) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO feeds (name, channel_id, guild_id, url) VALUES (?, ?, ?, ?)`,
		feed.Name,
		feed.ChannelID,
		feed.GuildID,
		feed.URL,
	)
	if err != nil {
		return fmt.Errorf("create feed: %w", err)
	}
	return nil
}

func (r *feedRepository) GetByChannelID(ctx context.Context, channelID int64) (*model.Feed, error) {
	row := r.db.QueryRowContext(ctx, `SELECT name, channel_id, guild_id, url FROM feeds WHERE channel_id = ?`, channelID)
	feed, err := scanFeed(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return &feed, nil
}

func (r *feedRepository) ListByGuildID(ctx context.Context, guildID int64) ([]model.Feed, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, channel_id, guild_id, url FROM feeds WHERE guild_id = ? ORDER BY channel_id`, guildID)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	defer rows.Close()

	var feeds []model.Feed
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feeds: %w", err)
	}

	return feeds, nil
}

func (r *feedRepository) DeleteByChannelID(ctx context.Context, channelID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM feeds WHERE channel_id = ?`, channelID)
	if err != nil {
		return 0, fmt.Errorf("delete feed: %w", err)
	}
	return result.RowsAffected()
}

func scanFeed(scanner interface {
	Scan(dest ...interface{}) error
}) (model.Feed, error) {
	var feed model.Feed
	if err := scanner.Scan(
		&feed.Name,
		&feed.ChannelID,
		&feed.GuildID,
		&feed.URL,
	); err != nil {
		return model.Feed{}, err
	}
	return feed, nil
}
