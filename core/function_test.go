package core

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContentAddress(t *testing.T) {
	address := NewContentAddress()

	assert.Regexp(t, regexp.MustCompile(`^Qm[0-9a-f]{32}$`), address)

	// identical payloads still get distinct addresses
	assert.NotEqual(t, address, NewContentAddress())
}

func TestPayloadDigest(t *testing.T) {
	digest := PayloadDigest("hello")

	assert.Len(t, digest, 64)
	assert.Equal(t, digest, PayloadDigest("hello"))
	assert.NotEqual(t, digest, PayloadDigest("hello!"))
}
