package service

import (
	"context"
	"database/sql"

	"feedwatch/internal/logger"
	"feedwatch/internal/model"
	"feedwatch/internal/repository"
)

// Candidate is one item from an upstream fetch: the feed-provided entry ID
// and its last-modified string.
type Candidate struct {
	EntryID int64
	Updated string
}

// DeliveryService decides which fetched entries are novel for a channel and
// records delivered entries as seen. An entry is novel when no row exists
// for (entry_id, channel_id) or when the recorded updated value differs
// from the candidate's, so an edited item is announced again.
//
// Callers should make seen-state durable before posting: Sift does both in
// one transaction, giving at-most-once delivery. A crash between recording
// and posting drops that announcement instead of duplicating it.
type DeliveryService interface {
	FilterNew(ctx context.Context, channelID int64, feedName string, candidates []Candidate) ([]Candidate, error)
	RecordSeen(ctx context.Context, channelID int64, feedName string, candidates []Candidate) error
	Sift(ctx context.Context, channelID int64, feedName string, candidates []Candidate) ([]Candidate, error)
	SweepOrphans(ctx context.Context) (int64, error)
}

type deliveryService struct {
	db      *sql.DB
	entries repository.EntryRepository
	locks   *ChannelLocks
}

func NewDeliveryService(db *sql.DB, entries repository.EntryRepository, locks *ChannelLocks) DeliveryService {
	return &deliveryService{db: db, entries: entries, locks: locks}
}

// FilterNew returns the novel subset of candidates in their original order.
// It is a pure read; use Sift when the result will be posted.
func (s *deliveryService) FilterNew(ctx context.Context, channelID int64, feedName string, candidates []Candidate) ([]Candidate, error) {
	novel, err := filterNew(ctx, s.entries, channelID, candidates)
	if err != nil {
		return nil, storeError("filter entries", err)
	}
	return novel, nil
}

// RecordSeen marks the candidates as delivered for the channel, inserting
// or refreshing one row per entry. The whole batch commits atomically.
func (s *deliveryService) RecordSeen(ctx context.Context, channelID int64, feedName string, candidates []Candidate) error {
	if len(candidates) == 0 {
		return nil
	}

	s.locks.Lock(channelID)
	defer s.locks.Unlock(channelID)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeError("begin record", err)
	}
	defer tx.Rollback()

	if err := repository.NewEntryRepository(tx).UpsertBatch(ctx, toEntries(channelID, feedName, candidates)); err != nil {
		return storeError("record entries", err)
	}
	if err := tx.Commit(); err != nil {
		return storeError("commit record", err)
	}
	return nil
}

// Sift filters and records in one write transaction: the returned entries
// are already marked seen when the call succeeds. The per-channel lock
// keeps concurrent cycles for one channel from both treating the same
// entry as novel.
func (s *deliveryService) Sift(ctx context.Context, channelID int64, feedName string, candidates []Candidate) ([]Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	s.locks.Lock(channelID)
	defer s.locks.Unlock(channelID)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeError("begin sift", err)
	}
	defer tx.Rollback()

	entries := repository.NewEntryRepository(tx)
	novel, err := filterNew(ctx, entries, channelID, candidates)
	if err != nil {
		return nil, storeError("sift filter", err)
	}
	if len(novel) > 0 {
		if err := entries.UpsertBatch(ctx, toEntries(channelID, feedName, novel)); err != nil {
			return nil, storeError("sift record", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, storeError("commit sift", err)
	}

	logger.Debug("entries sifted",
		"module", "store",
		"action", "sift",
		"resource", "entry",
		"result", "ok",
		"channel_id", channelID,
		"feed", feedName,
		"candidates", len(candidates),
		"novel", len(novel),
	)
	return novel, nil
}

// SweepOrphans deletes entries whose channel has no feed row. Orphans can
// only exist in databases written before cascade deletion was enforced.
func (s *deliveryService) SweepOrphans(ctx context.Context) (int64, error) {
	removed, err := s.entries.DeleteOrphans(ctx)
	if err != nil {
		return 0, storeError("sweep orphans", err)
	}
	if removed > 0 {
		logger.Info("orphan entries swept",
			"module", "store",
			"action", "sweep",
			"resource", "entry",
			"result", "ok",
			"removed", removed,
		)
	}
	return removed, nil
}

func filterNew(ctx context.Context, entries repository.EntryRepository, channelID int64, candidates []Candidate) ([]Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.EntryID)
	}
	seen, err := entries.ListSeen(ctx, channelID, ids)
	if err != nil {
		return nil, err
	}

	recorded := make(map[int64]string, len(seen))
	for _, e := range seen {
		recorded[e.EntryID] = e.Updated
	}

	var novel []Candidate
	for _, c := range candidates {
		updated, ok := recorded[c.EntryID]
		if !ok || updated != c.Updated {
			novel = append(novel, c)
			// A repeated ID within one batch is only novel once
			recorded[c.EntryID] = c.Updated
		}
	}
	return novel, nil
}

func toEntries(channelID int64, feedName string, candidates []Candidate) []model.Entry {
	entries := make([]model.Entry, 0, len(candidates))
	for _, c := range candidates {
		entries = append(entries, model.Entry{
			FeedName:  feedName,
			ChannelID: channelID,
			EntryID:   c.EntryID,
			Updated:   c.Updated,
		})
	}
	return entries
}
