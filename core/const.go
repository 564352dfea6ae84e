package core

const (
	ChainWorld     = "WORLD"
	ChainRootstock = "ROOTSTOCK"
)

// Chains lists the settlement rails a verdict can be tagged with.
// The core treats the tag as opaque metadata.
var Chains = []string{ChainWorld, ChainRootstock}

const (
	CaptchaVerifiedKey = "vm-captchaVerified"
)

const (
	CaptchaTokenHeader = "vm-captcha-token"
)

// DefaultStrategyProviderID is the provider whose strategy handles
// unknown provider ids. Several call sites rely on this fallback.
const DefaultStrategyProviderID = "provider3"
