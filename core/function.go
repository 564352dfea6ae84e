package core

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// NewContentAddress generates a fresh pseudo content address in the
// CID-looking shape the rest of the system expects: "Qm" + 32 hex chars.
// Addresses are random, not derived from content, so identical texts
// stay distinguishable in the ledger.
func NewContentAddress() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return "Qm" + hex.EncodeToString(buf)
}

// NewSecret generates a 128-bit capability token, hex encoded.
func NewSecret() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

// PayloadDigest fingerprints a payload for integrity checks on read.
func PayloadDigest(payload string) string {
	sum := sha3.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
