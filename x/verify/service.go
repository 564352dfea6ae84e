package verify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"

	"github.com/verimark/verimark/core"
)

type service struct {
	content core.ContentService
	token   core.TokenService
	ledger  core.LedgerService
	scoring core.ScoringService
	rdb     *redis.Client
}

func NewService(
	content core.ContentService,
	token core.TokenService,
	ledger core.LedgerService,
	scoring core.ScoringService,
	rdb *redis.Client,
) core.VerifyService {
	return &service{
		content: content,
		token:   token,
		ledger:  ledger,
		scoring: scoring,
		rdb:     rdb,
	}
}

// Submit stores the payload, mints the capability secret and records the
// submission under the identity's ledger. Resubmitting content the
// identity already holds hands back the original capability.
func (s *service) Submit(ctx context.Context, identity, payload string) (core.SubmitResult, error) {
	ctx, span := tracer.Start(ctx, "Verify.Service.Submit")
	defer span.End()

	address, err := s.content.Put(ctx, payload)
	if err != nil {
		span.RecordError(err)
		return core.SubmitResult{}, err
	}

	secret := s.token.Issue()

	entry, err := s.ledger.RecordSubmission(ctx, identity, address, secret)
	if err != nil {
		span.RecordError(err)
		return core.SubmitResult{}, err
	}

	return core.SubmitResult{Address: entry.Address, Secret: entry.Secret}, nil
}

// Verify validates the capability triple, scores the stored text with
// the chosen provider's strategy and records the verdict.
func (s *service) Verify(ctx context.Context, identity, address, secret, providerID, chain string) (core.Verdict, error) {
	ctx, span := tracer.Start(ctx, "Verify.Service.Verify")
	defer span.End()

	err := s.token.Validate(ctx, identity, address, secret)
	if err != nil {
		return core.Verdict{}, err
	}

	payload, err := s.content.Get(ctx, address)
	if err != nil {
		return core.Verdict{}, err
	}

	result := s.scoring.Evaluate(ctx, providerID, payload)

	verdict := core.Verdict{
		IsHumanWritten:  result.IsHumanWritten,
		ConfidenceScore: result.ConfidenceScore,
		ProviderID:      providerID,
		Chain:           chain,
	}

	found, err := s.ledger.RecordVerdict(ctx, identity, address, verdict)
	if err != nil {
		span.RecordError(err)
		return core.Verdict{}, err
	}
	if !found {
		return core.Verdict{}, core.NewErrorNotFound()
	}

	s.publishVerdict(ctx, identity, address, verdict)

	return verdict, nil
}

func (s *service) publishVerdict(ctx context.Context, identity, address string, verdict core.Verdict) {
	event := core.Event{
		ID:       xid.New().String(),
		Identity: identity,
		Address:  address,
		Verdict:  verdict,
		Time:     time.Now().Unix(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal verdict event",
			slog.String("error", err.Error()), slog.String("module", "verify"))
		return
	}

	err = s.rdb.Publish(ctx, "verdict:"+identity, payload).Err()
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish verdict to Redis",
			slog.String("error", err.Error()), slog.String("module", "verify"))
	}
}

func (s *service) AttachNftTokenID(ctx context.Context, identity, address, tokenID string) error {
	ctx, span := tracer.Start(ctx, "Verify.Service.AttachNftTokenID")
	defer span.End()

	found, err := s.ledger.RecordNftTokenID(ctx, identity, address, tokenID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !found {
		return core.NewErrorNotFound()
	}

	return nil
}

func (s *service) AttachExternalTxRef(ctx context.Context, identity, address, txRef string) error {
	ctx, span := tracer.Start(ctx, "Verify.Service.AttachExternalTxRef")
	defer span.End()

	found, err := s.ledger.RecordExternalTxRef(ctx, identity, address, txRef)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !found {
		return core.NewErrorNotFound()
	}

	return nil
}

// GetUser lazily creates the account on first lookup.
func (s *service) GetUser(ctx context.Context, identity string) (core.UserView, error) {
	ctx, span := tracer.Start(ctx, "Verify.Service.GetUser")
	defer span.End()

	account, err := s.ledger.GetOrCreate(ctx, identity)
	if err != nil {
		span.RecordError(err)
		return core.UserView{}, err
	}

	transactions := account.Submissions
	if transactions == nil {
		transactions = []core.SubmissionEntry{}
	}

	return core.UserView{
		Identity:          account.ID,
		VerificationCount: account.VerificationCount,
		Transactions:      transactions,
	}, nil
}
