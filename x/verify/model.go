package verify

type submitRequest struct {
	Identity string `json:"identity"`
	// Payload accepts any JSON value and is coerced to its string form.
	Payload any `json:"payload"`
}

type verifyRequest struct {
	Identity   string `json:"identity"`
	Address    string `json:"address"`
	Secret     string `json:"secret"`
	ProviderID string `json:"providerId"`
	Chain      string `json:"chain"`
}

type nftRequest struct {
	Identity   string `json:"identity"`
	Address    string `json:"address"`
	NftTokenID string `json:"nftTokenId"`
}

type txRequest struct {
	Identity string `json:"identity"`
	Address  string `json:"address"`
	TxRef    string `json:"txRef"`
}
