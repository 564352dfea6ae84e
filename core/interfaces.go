//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
)

type ContentService interface {
	Put(ctx context.Context, payload string) (string, error)
	Get(ctx context.Context, address string) (string, error)
	Count(ctx context.Context) (int64, error)
}

type TokenService interface {
	Issue() string
	Validate(ctx context.Context, identity, address, secret string) error
}

type ProviderService interface {
	List(ctx context.Context) ([]Provider, error)
	Get(ctx context.Context, id string) (Provider, error)
}

type LedgerService interface {
	GetOrCreate(ctx context.Context, identity string) (UserAccount, error)
	GetSubmission(ctx context.Context, identity, address string) (SubmissionEntry, error)
	RecordSubmission(ctx context.Context, identity, address, secret string) (SubmissionEntry, error)
	RecordVerdict(ctx context.Context, identity, address string, verdict Verdict) (bool, error)
	RecordNftTokenID(ctx context.Context, identity, address, tokenID string) (bool, error)
	RecordExternalTxRef(ctx context.Context, identity, address, txRef string) (bool, error)
	ListTransactions(ctx context.Context, identity string) ([]SubmissionEntry, error)
	CountAccounts(ctx context.Context) (int64, error)
	CountSubmissions(ctx context.Context) (int64, error)
}

type ScoringService interface {
	Evaluate(ctx context.Context, providerID, text string) ScoreResult
}

type VerifyService interface {
	Submit(ctx context.Context, identity, payload string) (SubmitResult, error)
	Verify(ctx context.Context, identity, address, secret, providerID, chain string) (Verdict, error)
	AttachNftTokenID(ctx context.Context, identity, address, tokenID string) error
	AttachExternalTxRef(ctx context.Context, identity, address, txRef string) error
	GetUser(ctx context.Context, identity string) (UserView, error)
}
