package provider

import (
	"context"

	"github.com/verimark/verimark/core"
)

type service struct {
	repository Repository
}

func NewService(repository Repository) core.ProviderService {
	return &service{repository: repository}
}

func (s *service) Get(ctx context.Context, id string) (core.Provider, error) {
	ctx, span := tracer.Start(ctx, "Provider.Service.Get")
	defer span.End()

	return s.repository.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]core.Provider, error) {
	ctx, span := tracer.Start(ctx, "Provider.Service.List")
	defer span.End()

	return s.repository.List(ctx)
}
