//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package content

import (
	"context"
	"errors"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/verimark/verimark/core"
)

const (
	payloadCachePrefix = "content:"
	gatewayCachePrefix = "gw:"
	gatewayCacheTTL    = 600 // seconds
)

type Repository interface {
	Create(ctx context.Context, record core.ContentRecord) (core.ContentRecord, error)
	Get(ctx context.Context, address string) (core.ContentRecord, error)
	SetGatewayCache(ctx context.Context, address, payload string) error
	GetGatewayCache(ctx context.Context, address string) (string, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db  *gorm.DB
	rdb *redis.Client
	mc  *memcache.Client
}

func NewRepository(db *gorm.DB, rdb *redis.Client, mc *memcache.Client) Repository {
	return &repository{db, rdb, mc}
}

func (r *repository) Create(ctx context.Context, record core.ContentRecord) (core.ContentRecord, error) {
	ctx, span := tracer.Start(ctx, "Content.Repository.Create")
	defer span.End()

	// identical text pins to the identical CID; records are immutable
	// so an address that already exists is a no-op, not a conflict
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error
	if err != nil {
		span.RecordError(err)
		return core.ContentRecord{}, err
	}

	// cache warm is best effort
	cacheErr := r.rdb.Set(ctx, payloadCachePrefix+record.Address, record.Payload, 0).Err()
	if cacheErr != nil {
		span.RecordError(cacheErr)
	}

	return record, nil
}

func (r *repository) Get(ctx context.Context, address string) (core.ContentRecord, error) {
	ctx, span := tracer.Start(ctx, "Content.Repository.Get")
	defer span.End()

	payload, err := r.rdb.Get(ctx, payloadCachePrefix+address).Result()
	if err == nil {
		return core.ContentRecord{Address: address, Payload: payload}, nil
	}

	var record core.ContentRecord
	err = r.db.WithContext(ctx).Where("address = ?", address).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.ContentRecord{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.ContentRecord{}, err
	}

	cacheErr := r.rdb.Set(ctx, payloadCachePrefix+record.Address, record.Payload, 0).Err()
	if cacheErr != nil {
		span.RecordError(cacheErr)
	}

	return record, nil
}

func (r *repository) SetGatewayCache(ctx context.Context, address, payload string) error {
	ctx, span := tracer.Start(ctx, "Content.Repository.SetGatewayCache")
	defer span.End()

	return r.mc.Set(&memcache.Item{Key: gatewayCachePrefix + address, Value: []byte(payload), Expiration: gatewayCacheTTL})
}

func (r *repository) GetGatewayCache(ctx context.Context, address string) (string, error) {
	ctx, span := tracer.Start(ctx, "Content.Repository.GetGatewayCache")
	defer span.End()

	item, err := r.mc.Get(gatewayCachePrefix + address)
	if err != nil {
		return "", err
	}

	return string(item.Value), nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Content.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.ContentRecord{}).Count(&count).Error
	return count, err
}
