package socket

// ChannelRequest selects which identities' verdict feeds to follow.
type ChannelRequest struct {
	Identities []string `json:"identities"`
}
