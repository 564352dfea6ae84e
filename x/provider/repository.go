//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package provider

import (
	"context"

	"gorm.io/gorm"

	"github.com/verimark/verimark/core"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (core.Provider, error)
	List(ctx context.Context) ([]core.Provider, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) GetByID(ctx context.Context, id string) (core.Provider, error) {
	ctx, span := tracer.Start(ctx, "Provider.Repository.GetByID")
	defer span.End()

	var provider core.Provider
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&provider).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return core.Provider{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Provider{}, err
	}

	return provider, nil
}

func (r *repository) List(ctx context.Context) ([]core.Provider, error) {
	ctx, span := tracer.Start(ctx, "Provider.Repository.List")
	defer span.End()

	var providers []core.Provider
	err := r.db.WithContext(ctx).Order("id").Find(&providers).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return providers, nil
}
