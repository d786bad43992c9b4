package srv

// Status represents the last observed state of a server.
type Status struct {
	Online    bool  `json:"online"`
	LatencyMs int64 `json:"latency_ms"`

	BedrockOnline  bool   `json:"bedrock_online,omitempty"`
	MOTD           string `json:"motd,omitempty"`
	PlayerCount    int    `json:"player_count,omitempty"`
	MaxPlayerCount int    `json:"max_player_count,omitempty"`
}
