// Package content is the content-addressed text store. Writes try the
// external pinning service first and degrade to a locally generated
// address; reads degrade from cache to database to public gateway.
package content

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/verimark/verimark/client"
	"github.com/verimark/verimark/core"
)

var tracer = otel.Tracer("content")

type service struct {
	repository Repository
	client     client.Client
}

func NewService(repository Repository, client client.Client) core.ContentService {
	return &service{repository: repository, client: client}
}

// Put stores a payload and returns its address. A pinning failure is
// logged and absorbed: the payload is kept locally under a fresh
// pseudo-address and the caller never sees the upstream error.
func (s *service) Put(ctx context.Context, payload string) (string, error) {
	ctx, span := tracer.Start(ctx, "Content.Service.Put")
	defer span.End()

	address, err := s.client.Pin(ctx, payload)
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "pinning service unavailable, falling back to local store",
			slog.String("error", err.Error()), slog.String("module", "content"))
		address = core.NewContentAddress()
	}

	record := core.ContentRecord{
		Address: address,
		Payload: payload,
		Digest:  core.PayloadDigest(payload),
	}

	created, err := s.repository.Create(ctx, record)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return created.Address, nil
}

// Get resolves an address to its payload. Local store first, then the
// gateway-fetch cache, then the public gateway. Gateway failures are
// reported as not-found once the local paths miss.
func (s *service) Get(ctx context.Context, address string) (string, error) {
	ctx, span := tracer.Start(ctx, "Content.Service.Get")
	defer span.End()

	record, err := s.repository.Get(ctx, address)
	if err == nil {
		if record.Digest != "" && core.PayloadDigest(record.Payload) != record.Digest {
			slog.WarnContext(ctx, "stored payload digest mismatch",
				slog.String("address", address), slog.String("module", "content"))
		}
		return record.Payload, nil
	}
	if !errors.Is(err, core.ErrorNotFound{}) {
		span.RecordError(err)
		return "", err
	}

	payload, err := s.repository.GetGatewayCache(ctx, address)
	if err == nil {
		return payload, nil
	}

	payload, err = s.client.Fetch(ctx, address)
	if err != nil {
		if errors.Is(err, core.ErrorUpstreamUnavailable{}) {
			span.RecordError(err)
			slog.WarnContext(ctx, "gateway unavailable, reporting not found",
				slog.String("error", err.Error()), slog.String("module", "content"))
		}
		return "", core.NewErrorNotFound()
	}

	cacheErr := s.repository.SetGatewayCache(ctx, address, payload)
	if cacheErr != nil {
		span.RecordError(cacheErr)
	}

	return payload, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Content.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
