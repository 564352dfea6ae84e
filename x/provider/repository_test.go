package provider

import (
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verimark/verimark/core"
	"github.com/verimark/verimark/internal/testutil"
)

func TestRepository(t *testing.T) {

	log.Println("Test Start")

	var ctx = context.Background()

	db, cleanupDB := testutil.CreateDB()
	defer cleanupDB()

	err := Seed(db)
	assert.NoError(t, err)

	// seeding twice must not duplicate or overwrite
	err = Seed(db)
	assert.NoError(t, err)

	repo := NewRepository(db)

	providers, err := repo.List(ctx)
	if assert.NoError(t, err) {
		assert.Len(t, providers, 5)
		assert.Equal(t, "provider1", providers[0].ID)
		assert.Equal(t, "provider5", providers[4].ID)
	}

	provider, err := repo.GetByID(ctx, "provider3")
	if assert.NoError(t, err) {
		assert.Equal(t, "StatSift", provider.DisplayName)
		assert.Equal(t, "RBTC", provider.PriceCurrency)
		assert.Contains(t, []string(provider.Chains), core.ChainRootstock)
	}

	_, err = repo.GetByID(ctx, "provider999")
	assert.IsType(t, core.ErrorNotFound{}, err)
}
