package core

type SubmitResult struct {
	Address string `json:"address"`
	Secret  string `json:"secret"`
}

type VerifyResult struct {
	IsHumanWritten  bool    `json:"isHumanWritten"`
	ConfidenceScore float64 `json:"confidenceScore"`
	ProviderID      string  `json:"providerId"`
	Chain           string  `json:"chain"`
	Address         string  `json:"address"`
	Secret          string  `json:"secret"`
}

type UserView struct {
	Identity          string            `json:"identity"`
	VerificationCount int               `json:"verificationCount"`
	Transactions      []SubmissionEntry `json:"transactions"`
}
