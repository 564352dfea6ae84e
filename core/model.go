package core

// ScoreResult is the raw output of a scoring strategy.
type ScoreResult struct {
	IsHumanWritten  bool    `json:"isHumanWritten"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

// Verdict is a score result bound to the provider and chain it was bought from.
type Verdict struct {
	IsHumanWritten  bool    `json:"isHumanWritten"`
	ConfidenceScore float64 `json:"confidenceScore"`
	ProviderID      string  `json:"providerId"`
	Chain           string  `json:"chain"`
}

// Event is the websocket feed packet emitted when a verdict lands.
type Event struct {
	ID       string  `json:"id"`
	Identity string  `json:"identity"`
	Address  string  `json:"address"`
	Verdict  Verdict `json:"verdict"`
	Time     int64   `json:"time"`
}
