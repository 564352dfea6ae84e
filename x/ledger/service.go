// Package ledger keeps the per-wallet record of submissions and verdicts.
package ledger

import (
	"context"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/verimark/verimark/core"
)

var tracer = otel.Tracer("ledger")

type service struct {
	repository Repository
}

func NewService(repository Repository) core.LedgerService {
	return &service{repository: repository}
}

func (s *service) GetOrCreate(ctx context.Context, identity string) (core.UserAccount, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Service.GetOrCreate")
	defer span.End()

	return s.repository.GetOrCreate(ctx, identity)
}

func (s *service) GetSubmission(ctx context.Context, identity, address string) (core.SubmissionEntry, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Service.GetSubmission")
	defer span.End()

	return s.repository.GetSubmission(ctx, identity, address)
}

func (s *service) RecordSubmission(ctx context.Context, identity, address, secret string) (core.SubmissionEntry, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Service.RecordSubmission")
	defer span.End()

	entry := core.SubmissionEntry{
		ID:      xid.New().String(),
		Owner:   identity,
		Address: address,
		Secret:  secret,
	}

	return s.repository.CreateSubmission(ctx, entry)
}

func (s *service) RecordVerdict(ctx context.Context, identity, address string, verdict core.Verdict) (bool, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Service.RecordVerdict")
	defer span.End()

	return s.repository.UpdateVerdict(ctx, identity, address, verdict)
}

func (s *service) RecordNftTokenID(ctx context.Context, identity, address, tokenID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Service.RecordNftTokenID")
	defer span.End()

	return s.repository.UpdateNftTokenID(ctx, identity, address, tokenID)
}

func (s *service) RecordExternalTxRef(ctx context.Context, identity, address, txRef string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Service.RecordExternalTxRef")
	defer span.End()

	return s.repository.UpdateExternalTxRef(ctx, identity, address, txRef)
}

func (s *service) ListTransactions(ctx context.Context, identity string) ([]core.SubmissionEntry, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Service.ListTransactions")
	defer span.End()

	return s.repository.ListByOwner(ctx, identity)
}

func (s *service) CountAccounts(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Service.CountAccounts")
	defer span.End()

	return s.repository.CountAccounts(ctx)
}

func (s *service) CountSubmissions(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Service.CountSubmissions")
	defer span.End()

	return s.repository.CountSubmissions(ctx)
}
