package models

// ChannelSummary is the channel-level input to an analysis run.
type ChannelSummary struct {
	ChannelID string `json:"channelId"`
	Title     string `json:"title"`
	// Subscribers is nil when the channel hides its subscriber count.
	// A hidden count must stay distinguishable from an actual zero.
	Subscribers *int64 `json:"subscriberCount"`
	TotalViews  int64  `json:"totalViews"`
}
