package content

import (
	"context"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verimark/verimark/core"
	"github.com/verimark/verimark/internal/testutil"
)

// upClient pins everything under one canned CID.
type upClient struct {
	address string
}

func (c *upClient) Pin(ctx context.Context, payload string) (string, error) {
	return c.address, nil
}

func (c *upClient) Fetch(ctx context.Context, address string) (string, error) {
	return "", core.NewErrorNotFound()
}

// downClient simulates the pinning service being unreachable.
type downClient struct {
}

func (c *downClient) Pin(ctx context.Context, payload string) (string, error) {
	return "", core.NewErrorUpstreamUnavailable()
}

func (c *downClient) Fetch(ctx context.Context, address string) (string, error) {
	return "", core.NewErrorUpstreamUnavailable()
}

// cidClient derives the address from the payload the way a real
// pinning service does.
type cidClient struct {
}

func (c *cidClient) Pin(ctx context.Context, payload string) (string, error) {
	return "Qm" + core.PayloadDigest(payload)[:32], nil
}

func (c *cidClient) Fetch(ctx context.Context, address string) (string, error) {
	return "", core.NewErrorNotFound()
}

// gatewayClient serves any address from a fake public gateway.
type gatewayClient struct {
	payload    string
	fetchCalls int
}

func (c *gatewayClient) Pin(ctx context.Context, payload string) (string, error) {
	return "", core.NewErrorUpstreamUnavailable()
}

func (c *gatewayClient) Fetch(ctx context.Context, address string) (string, error) {
	c.fetchCalls++
	return c.payload, nil
}

func TestService(t *testing.T) {

	log.Println("Test Start")

	var ctx = context.Background()

	db, cleanupDB := testutil.CreateDB()
	defer cleanupDB()
	rdb, cleanupRDB := testutil.CreateRDB()
	defer cleanupRDB()
	mc, cleanupMC := testutil.CreateMC()
	defer cleanupMC()

	repo := NewRepository(db, rdb, mc)

	// happy path: address comes from the pinning service
	service := NewService(repo, &upClient{address: "QmfM2r8seH2GiRaC4esTjeraXEachRt8ZsSeGaWTPLyMoG"})

	address, err := service.Put(ctx, "hello from the pinned path")
	if assert.NoError(t, err) {
		assert.Equal(t, "QmfM2r8seH2GiRaC4esTjeraXEachRt8ZsSeGaWTPLyMoG", address)
	}

	payload, err := service.Get(ctx, address)
	if assert.NoError(t, err) {
		assert.Equal(t, "hello from the pinned path", payload)
	}

	// pinning down: Put still succeeds under a local pseudo-address
	service = NewService(repo, &downClient{})

	payload, err = service.Get(ctx, "QmfM2r8seH2GiRaC4esTjeraXEachRt8ZsSeGaWTPLyMoG")
	if assert.NoError(t, err) {
		assert.Equal(t, "hello from the pinned path", payload)
	}

	localAddress, err := service.Put(ctx, "hello from the local path")
	if assert.NoError(t, err) {
		assert.Regexp(t, regexp.MustCompile(`^Qm[0-9a-f]{32}$`), localAddress)
	}

	payload, err = service.Get(ctx, localAddress)
	if assert.NoError(t, err) {
		assert.Equal(t, "hello from the local path", payload)
	}

	// unknown address with the gateway down reads as not found
	_, err = service.Get(ctx, "Qm00000000000000000000000000000000")
	assert.IsType(t, core.ErrorNotFound{}, err)

	// unknown address resolved via the gateway, second read from cache
	gw := &gatewayClient{payload: "remote payload"}
	service = NewService(repo, gw)

	payload, err = service.Get(ctx, "Qm11111111111111111111111111111111")
	if assert.NoError(t, err) {
		assert.Equal(t, "remote payload", payload)
	}

	payload, err = service.Get(ctx, "Qm11111111111111111111111111111111")
	if assert.NoError(t, err) {
		assert.Equal(t, "remote payload", payload)
	}
	assert.Equal(t, 1, gw.fetchCalls)

	// identical text pins to the identical CID; the second Put is a no-op
	service = NewService(repo, &cidClient{})

	first, err := service.Put(ctx, "Hello world, this is a test.")
	assert.NoError(t, err)

	second, err := service.Put(ctx, "Hello world, this is a test.")
	if assert.NoError(t, err) {
		assert.Equal(t, first, second)
	}

	payload, err = service.Get(ctx, first)
	if assert.NoError(t, err) {
		assert.Equal(t, "Hello world, this is a test.", payload)
	}

	count, err := service.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(3), count)
	}
}
