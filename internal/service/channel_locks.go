package service

import "sync"

// ChannelLocks serializes write transactions per channel. At most one
// filter-and-record cycle or registry write runs for a channel at a time;
// readers never take these locks.
type ChannelLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewChannelLocks() *ChannelLocks {
	return &ChannelLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *ChannelLocks) Lock(channelID int64) {
	l.get(channelID).Lock()
}

func (l *ChannelLocks) Unlock(channelID int64) {
	l.get(channelID).Unlock()
}

// get returns the mutex for channelID, creating it on first use. Mutexes
// are kept for the process lifetime; the set is bounded by the number of
// channels ever touched.
func (l *ChannelLocks) get(channelID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[channelID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[channelID] = m
	}
	return m
}
