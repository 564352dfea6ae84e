//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/verimark/verimark/client"
	"github.com/verimark/verimark/core"
	"github.com/verimark/verimark/x/auth"
	"github.com/verimark/verimark/x/content"
	"github.com/verimark/verimark/x/ledger"
	"github.com/verimark/verimark/x/provider"
	"github.com/verimark/verimark/x/socket"
	"github.com/verimark/verimark/x/token"
	"github.com/verimark/verimark/x/verify"
)

var verifyHandlerProvider = wire.NewSet(
	verify.NewHandler,
	verify.NewService,
	content.NewService,
	content.NewRepository,
	client.NewClient,
	token.NewService,
	ledger.NewService,
	ledger.NewRepository,
	provideScoringEngine,
)

var providerHandlerProvider = wire.NewSet(provider.NewHandler, provider.NewService, provider.NewRepository)

func SetupVerifyHandler(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) verify.Handler {
	wire.Build(verifyHandlerProvider)
	return nil
}

func SetupProviderHandler(db *gorm.DB) provider.Handler {
	wire.Build(providerHandlerProvider)
	return nil
}

func SetupSocketHandler(rdb *redis.Client) socket.Handler {
	wire.Build(socket.NewHandler)
	return nil
}

func SetupAuthService(config core.Config) auth.Service {
	wire.Build(auth.NewService)
	return nil
}

func SetupContentService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.ContentService {
	wire.Build(content.NewService, content.NewRepository, client.NewClient)
	return nil
}

func SetupLedgerService(db *gorm.DB) core.LedgerService {
	wire.Build(ledger.NewService, ledger.NewRepository)
	return nil
}
