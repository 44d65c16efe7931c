package repository

import (
	"context"
	"fmt"
	"strings"

	"feedwatch/internal/model"
)

type EntryRepository interface {
	ListSeen(ctx context.Context, channelID int64, entryIDs []int64) ([]model.Entry, error)
	UpsertBatch(ctx context.Context, entries []model.Entry) error
	DeleteByChannelID(ctx context.Context, channelID int64) (int64, error)
	DeleteOrphans(ctx context.Context) (int64, error)
	CountByChannelID(ctx context.Context, channelID int64) (int, error)
}

type entryRepository struct {
	db dbtx
}

func NewEntryRepository(db dbtx) EntryRepository {
	return &entryRepository{db: db}
}

// ListSeen returns the recorded entries for channelID restricted to the
// given entry IDs.
func (r *entryRepository) ListSeen(ctx context.Context, channelID int64, entryIDs []int64) ([]model.Entry, error) {
	if len(entryIDs) == 0 {
		return nil, nil
	}
	// Build placeholder string: ?,?,?...
	placeholders := strings.Repeat("?,", len(entryIDs)-1) + "?"
	args := make([]interface{}, 0, len(entryIDs)+1)
	args = append(args, channelID)
	for _, id := range entryIDs {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT feed_name, channel_id, entry_id, updated FROM entries WHERE channel_id = ? AND entry_id IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("list seen entries: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.FeedName, &e.ChannelID, &e.EntryID, &e.Updated); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seen entries: %w", err)
	}

	return entries, nil
}

// UpsertBatch inserts each entry, or refreshes feed_name and updated in
// place when the (entry_id, channel_id) pair already exists.
func (r *entryRepository) UpsertBatch(ctx context.Context, entries []model.Entry) error {
	for _, entry := range entries {
		_, err := r.db.ExecContext(
			ctx,
			`INSERT INTO entries (feed_name, channel_id, entry_id, updated)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(entry_id, channel_id) DO UPDATE SET
			   feed_name = excluded.feed_name,
			   updated = excluded.updated`,
			entry.FeedName,
			entry.ChannelID,
			entry.EntryID,
			entry.Updated,
		)
		if err != nil {
			return fmt.Errorf("upsert entry %d: %w", entry.EntryID, err)
		}
	}
	return nil
}

func (r *entryRepository) DeleteByChannelID(ctx context.Context, channelID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE channel_id = ?`, channelID)
	if err != nil {
		return 0, fmt.Errorf("delete entries: %w", err)
	}
	return result.RowsAffected()
}

// DeleteOrphans removes entries whose channel no longer has a feed row.
func (r *entryRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE channel_id NOT IN (SELECT channel_id FROM feeds)`)
	if err != nil {
		return 0, fmt.Errorf("delete orphan entries: %w", err)
	}
	return result.RowsAffected()
}

func (r *entryRepository) CountByChannelID(ctx context.Context, channelID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries WHERE channel_id = ?`, channelID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}
