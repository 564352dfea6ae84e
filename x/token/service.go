// Package token issues and validates the per-submission capability
// secrets that gate read and verify access to stored content.
package token

import (
	"context"
	"crypto/subtle"

	"go.opentelemetry.io/otel"

	"github.com/verimark/verimark/core"
)

var tracer = otel.Tracer("token")

type service struct {
	ledger core.LedgerService
}

func NewService(ledger core.LedgerService) core.TokenService {
	return &service{ledger: ledger}
}

// Issue mints a fresh 128-bit secret. The secret is not derived from the
// content address; it is a bearer capability stored in the ledger entry.
func (s *service) Issue() string {
	return core.NewSecret()
}

// Validate accepts iff the identity's ledger holds an entry for the
// address whose secret equals the presented one. Every failure mode
// collapses into the same ErrorInvalidCredential so callers cannot
// probe which part of the triple was wrong.
func (s *service) Validate(ctx context.Context, identity, address, secret string) error {
	ctx, span := tracer.Start(ctx, "Token.Service.Validate")
	defer span.End()

	entry, err := s.ledger.GetSubmission(ctx, identity, address)
	if err != nil {
		return core.NewErrorInvalidCredential()
	}

	if subtle.ConstantTimeCompare([]byte(entry.Secret), []byte(secret)) != 1 {
		return core.NewErrorInvalidCredential()
	}

	return nil
}
