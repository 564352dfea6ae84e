//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package ledger

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/verimark/verimark/core"
)

type Repository interface {
	GetOrCreate(ctx context.Context, identity string) (core.UserAccount, error)
	GetSubmission(ctx context.Context, owner, address string) (core.SubmissionEntry, error)
	CreateSubmission(ctx context.Context, entry core.SubmissionEntry) (core.SubmissionEntry, error)
	UpdateVerdict(ctx context.Context, owner, address string, verdict core.Verdict) (bool, error)
	UpdateNftTokenID(ctx context.Context, owner, address, tokenID string) (bool, error)
	UpdateExternalTxRef(ctx context.Context, owner, address, txRef string) (bool, error)
	ListByOwner(ctx context.Context, owner string) ([]core.SubmissionEntry, error)
	CountAccounts(ctx context.Context) (int64, error)
	CountSubmissions(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) GetOrCreate(ctx context.Context, identity string) (core.UserAccount, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Repository.GetOrCreate")
	defer span.End()

	account := core.UserAccount{ID: identity}
	err := r.db.WithContext(ctx).
		Preload("Submissions", func(db *gorm.DB) *gorm.DB {
			return db.Order("c_date DESC")
		}).
		FirstOrCreate(&account).Error
	if err != nil {
		span.RecordError(err)
		return core.UserAccount{}, err
	}

	return account, nil
}

func (r *repository) GetSubmission(ctx context.Context, owner, address string) (core.SubmissionEntry, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Repository.GetSubmission")
	defer span.End()

	var entry core.SubmissionEntry
	err := r.db.WithContext(ctx).Where("owner = ? AND address = ?", owner, address).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.SubmissionEntry{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.SubmissionEntry{}, err
	}

	return entry, nil
}

// CreateSubmission appends an entry, creating the account if absent.
// Resubmitting an address the owner already holds returns the existing
// entry with its original secret, so the capability handed out first
// stays the valid one.
func (r *repository) CreateSubmission(ctx context.Context, entry core.SubmissionEntry) (core.SubmissionEntry, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Repository.CreateSubmission")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account := core.UserAccount{ID: entry.Owner}
		if err := tx.FirstOrCreate(&account).Error; err != nil {
			return err
		}
		return tx.Where("owner = ? AND address = ?", entry.Owner, entry.Address).FirstOrCreate(&entry).Error
	})
	if err != nil {
		span.RecordError(err)
		return core.SubmissionEntry{}, err
	}

	return entry, nil
}

// UpdateVerdict overwrites verdict columns and bumps the account counter
// by exactly one. It does not guard against re-verification: verifying
// the same address again counts again.
func (r *repository) UpdateVerdict(ctx context.Context, owner, address string, verdict core.Verdict) (bool, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Repository.UpdateVerdict")
	defer span.End()

	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry core.SubmissionEntry
		err := tx.Where("owner = ? AND address = ?", owner, address).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		err = tx.Model(&entry).Updates(map[string]any{
			"is_human_written": verdict.IsHumanWritten,
			"confidence_score": verdict.ConfidenceScore,
			"provider_id":      verdict.ProviderID,
			"chain":            verdict.Chain,
		}).Error
		if err != nil {
			return err
		}

		err = tx.Model(&core.UserAccount{}).Where("id = ?", owner).
			UpdateColumn("verification_count", gorm.Expr("verification_count + ?", 1)).Error
		if err != nil {
			return err
		}

		found = true
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	return found, nil
}

func (r *repository) UpdateNftTokenID(ctx context.Context, owner, address, tokenID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Repository.UpdateNftTokenID")
	defer span.End()

	return r.updateColumn(ctx, owner, address, "nft_token_id", tokenID)
}

func (r *repository) UpdateExternalTxRef(ctx context.Context, owner, address, txRef string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Repository.UpdateExternalTxRef")
	defer span.End()

	return r.updateColumn(ctx, owner, address, "external_tx_ref", txRef)
}

func (r *repository) updateColumn(ctx context.Context, owner, address, column, value string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&core.SubmissionEntry{}).
		Where("owner = ? AND address = ?", owner, address).
		UpdateColumn(column, value)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *repository) ListByOwner(ctx context.Context, owner string) ([]core.SubmissionEntry, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Repository.ListByOwner")
	defer span.End()

	var entries []core.SubmissionEntry
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("c_date DESC").Find(&entries).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return entries, nil
}

func (r *repository) CountAccounts(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Repository.CountAccounts")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.UserAccount{}).Count(&count).Error
	return count, err
}

func (r *repository) CountSubmissions(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Repository.CountSubmissions")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.SubmissionEntry{}).Count(&count).Error
	return count, err
}
