package service

import (
	"errors"
	"fmt"

	"feedwatch/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
	// ErrDuplicateSubscription is returned by Subscribe when the channel
	// already carries a feed.
	ErrDuplicateSubscription = errors.New("duplicate subscription")
	// ErrStoreUnavailable wraps storage I/O failures and timeouts. Callers
	// may retry; the store itself never does.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrConstraintViolation wraps a uniqueness violation that slipped past
	// the per-channel write serialization. It signals a locking bug and
	// must be investigated, not retried.
	ErrConstraintViolation = errors.New("constraint violation")
)

// DuplicateSubscriptionError carries the feed already bound to the channel.
type DuplicateSubscriptionError struct {
	Existing model.Feed
}

func (e *DuplicateSubscriptionError) Error() string {
	return fmt.Sprintf("channel %d is already subscribed to feed %q", e.Existing.ChannelID, e.Existing.Name)
}

func (e *DuplicateSubscriptionError) Is(target error) bool {
	return target == ErrDuplicateSubscription
}
