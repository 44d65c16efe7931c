package model

// Feed is a subscription binding one channel to one syndication source.
type Feed struct {
	Name      string
	ChannelID int64
	GuildID   int64
	URL       string
}
