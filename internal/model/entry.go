package model

// Entry records one feed item as delivered to a channel. EntryID is the
// feed-provided item identifier, unique per channel, not globally. Updated
// holds the feed-provided last-modified string; a change to it makes the
// same item novel again.
type Entry struct {
	FeedName  string
	ChannelID int64
	EntryID   int64
	Updated   string
}
