package service

import (
	"context"
	"database/sql"
	"net/url"
	"strings"

	"feedwatch/internal/logger"
	"feedwatch/internal/model"
	"feedwatch/internal/repository"
)

// SubscriptionService maintains the feed registry: which channel is bound
// to which feed. A channel carries at most one subscription.
type SubscriptionService interface {
	Subscribe(ctx context.Context, channelID, guildID int64, name, feedURL string) (model.Feed, error)
	Unsubscribe(ctx context.Context, channelID int64) error
	Get(ctx context.Context, channelID int64) (*model.Feed, error)
	List(ctx context.Context, guildID int64) ([]model.Feed, error)
}

type subscriptionService struct {
	db    *sql.DB
	feeds repository.FeedRepository
	locks *ChannelLocks
}

func NewSubscriptionService(db *sql.DB, feeds repository.FeedRepository, locks *ChannelLocks) SubscriptionService {
	return &subscriptionService{db: db, feeds: feeds, locks: locks}
}

func (s *subscriptionService) Subscribe(ctx context.Context, channelID, guildID int64, name, feedURL string) (model.Feed, error) {
	trimmedName := strings.TrimSpace(name)
	trimmedURL := strings.TrimSpace(feedURL)
	if channelID <= 0 || guildID <= 0 || trimmedName == "" || !isValidURL(trimmedURL) {
		return model.Feed{}, ErrInvalid
	}

	s.locks.Lock(channelID)
	defer s.locks.Unlock(channelID)

	existing, err := s.feeds.GetByChannelID(ctx, channelID)
	if err != nil {
		return model.Feed{}, storeError("check subscription", err)
	}
	if existing != nil {
		return model.Feed{}, &DuplicateSubscriptionError{Existing: *existing}
	}

	feed := model.Feed{
		Name:      trimmedName,
		ChannelID: channelID,
		GuildID:   guildID,
		URL:       trimmedURL,
	}
	if err := s.feeds.Create(ctx, feed); err != nil {
		return model.Feed{}, storeError("subscribe", err)
	}

	logger.Info("channel subscribed",
		"module", "store",
		"action", "subscribe",
		"resource", "feed",
		"result", "ok",
		"channel_id", channelID,
		"guild_id", guildID,
		"feed", trimmedName,
	)
	return feed, nil
}

// Unsubscribe removes the channel's feed and every entry recorded for the
// channel in one transaction. The schema declares no foreign keys, so the
// cascade is enforced here: entries first, then the feed. Calling it for a
// channel with no subscription is a no-op.
func (s *subscriptionService) Unsubscribe(ctx context.Context, channelID int64) error {
	s.locks.Lock(channelID)
	defer s.locks.Unlock(channelID)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeError("begin unsubscribe", err)
	}
	defer tx.Rollback()

	entriesRemoved, err := repository.NewEntryRepository(tx).DeleteByChannelID(ctx, channelID)
	if err != nil {
		return storeError("unsubscribe entries", err)
	}
	feedsRemoved, err := repository.NewFeedRepository(tx).DeleteByChannelID(ctx, channelID)
	if err != nil {
		return storeError("unsubscribe feed", err)
	}
	if err := tx.Commit(); err != nil {
		return storeError("commit unsubscribe", err)
	}

	if feedsRemoved == 0 {
		logger.Debug("unsubscribe without subscription",
			"module", "store",
			"action", "unsubscribe",
			"resource", "feed",
			"result", "ok",
			"channel_id", channelID,
		)
		return nil
	}
	logger.Info("channel unsubscribed",
		"module", "store",
		"action", "unsubscribe",
		"resource", "feed",
		"result", "ok",
		"channel_id", channelID,
		"entries_removed", entriesRemoved,
	)
	return nil
}

func (s *subscriptionService) Get(ctx context.Context, channelID int64) (*model.Feed, error) {
	feed, err := s.feeds.GetByChannelID(ctx, channelID)
	if err != nil {
		return nil, storeError("get feed", err)
	}
	return feed, nil
}

func (s *subscriptionService) List(ctx context.Context, guildID int64) ([]model.Feed, error) {
	feeds, err := s.feeds.ListByGuildID(ctx, guildID)
	if err != nil {
		return nil, storeError("list feeds", err)
	}
	return feeds, nil
}

func isValidURL(value string) bool {
	parsed, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}
