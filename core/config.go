package core

// Config carries the settings the domain services consume.
// Server-level wiring (dsn, cache addresses, tracing) lives in cmd.
type Config struct {
	Pinning       PinningConfig `yaml:"pinning" json:"pinning"`
	CaptchaSecret string        `yaml:"captchaSecret" json:"-"`
}

type PinningConfig struct {
	Endpoint string `yaml:"endpoint" json:"endpoint"` // pinning API base, e.g. https://api.pinata.cloud
	Token    string `yaml:"token" json:"-"`           // bearer token for the pinning API
	Gateway  string `yaml:"gateway" json:"gateway"`   // public gateway base, e.g. https://gateway.pinata.cloud/ipfs
}
