package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"
)

var (
	ErrVersionNotFound  = errors.New("quote version not found")
	ErrInvalidVersionID = errors.New("invalid version id")
	ErrVersionConflict  = errors.New("quote version conflict")
	ErrQuoteImmutable   = errors.New("quote is in a terminal status and cannot be mutated")
	ErrQuoteUnderEscrow = errors.New("quote is accepted and owned by escrow enforcement")
	ErrNothingToDiff    = errors.New("diff requires two versions of the same quote")
)

// IVersionUseCase is the append-only version ledger for quotes.
//
// Every committed mutation becomes one immutable QuoteVersion carrying a
// snapshot and the computed diff against its predecessor. Reverting replays
// a historical snapshot through Commit, so history is never rewritten.

type IVersionUseCase interface {
	Commit(ctx context.Context, q entities.Quote, by entities.ChangedBy, summary string) (entities.QuoteVersion, error)
	GetVersions(ctx context.Context, quoteID string) ([]entities.QuoteVersion, error)
	Diff(ctx context.Context, quoteID, fromVersionID, toVersionID string) ([]entities.Change, error)
	Revert(ctx context.Context, quoteID, versionID string, by entities.ChangedBy) (entities.QuoteVersion, error)
}

type VersionUseCase struct {
	versionRepo interfaces.IQuoteVersionRepository
	quoteRepo   interfaces.IQuoteRepository
	now         func() time.Time
}

var _ IVersionUseCase = (*VersionUseCase)(nil)

func NewVersionUseCase(versionRepo interfaces.IQuoteVersionRepository, quoteRepo interfaces.IQuoteRepository) *VersionUseCase {
	return &VersionUseCase{versionRepo: versionRepo, quoteRepo: quoteRepo, now: time.Now}
}

// Commit snapshots q, diffs it against the previous current version and
// appends it as version q.CurrentVersion+1. The caller passes q exactly as
// read (CurrentVersion untouched); a concurrent committer who won the race
// surfaces as ErrVersionConflict and the caller must re-fetch and retry.
func (u *VersionUseCase) Commit(ctx context.Context, q entities.Quote, by entities.ChangedBy, summary string) (entities.QuoteVersion, error) {
	expected := q.CurrentVersion
	snapshot := entities.SnapshotOf(q)

	var previous entities.QuoteSnapshot
	if expected > 0 {
		prev, err := u.versionRepo.GetByNumber(ctx, q.ID, expected)
		if err != nil {
			return entities.QuoteVersion{}, err
		}
		if prev.ID == "" {
			return entities.QuoteVersion{}, fmt.Errorf("%w: quote %s version %d", ErrVersionNotFound, q.ID, expected)
		}
		previous = prev.Snapshot
	}

	now := u.now().UTC()
	v := entities.QuoteVersion{
		ID:            newULID(),
		QuoteID:       q.ID,
		VersionNumber: expected + 1,
		CreatedAt:     now,
		CreatedBy:     by,
		Snapshot:      snapshot,
		Changes:       entities.DiffSnapshots(previous, snapshot),
		IsCurrent:     true,
		ChangeSummary: summary,
	}

	q.CurrentVersion = v.VersionNumber
	q.UpdatedAt = now

	if err := u.versionRepo.Commit(ctx, q, v, expected); err != nil {
		if errors.Is(err, interfaces.ErrVersionCommitConflict) {
			return entities.QuoteVersion{}, fmt.Errorf("%w: expected version %d", ErrVersionConflict, expected)
		}
		return entities.QuoteVersion{}, err
	}
	return v, nil
}

func (u *VersionUseCase) GetVersions(ctx context.Context, quoteID string) ([]entities.QuoteVersion, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.versionRepo.ListByQuoteID(ctx, quoteID)
}

// Diff compares two versions of the same quote, order-independent per field.
func (u *VersionUseCase) Diff(ctx context.Context, quoteID, fromVersionID, toVersionID string) ([]entities.Change, error) {
	from, err := u.versionOfQuote(ctx, quoteID, fromVersionID)
	if err != nil {
		return nil, err
	}
	to, err := u.versionOfQuote(ctx, quoteID, toVersionID)
	if err != nil {
		return nil, err
	}
	if from.ID == to.ID {
		return nil, ErrNothingToDiff
	}
	return entities.DiffSnapshots(from.Snapshot, to.Snapshot), nil
}

// Revert restores a historical version's data by committing it as a brand
// new version. The target stays in history untouched and the new version's
// number is higher than every existing one.
func (u *VersionUseCase) Revert(ctx context.Context, quoteID, versionID string, by entities.ChangedBy) (entities.QuoteVersion, error) {
	target, err := u.versionOfQuote(ctx, quoteID, versionID)
	if err != nil {
		return entities.QuoteVersion{}, err
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.QuoteVersion{}, err
	}
	if q.ID == "" {
		return entities.QuoteVersion{}, ErrQuoteNotFound
	}
	if q.Status.IsTerminal() {
		if q.Status == entities.QuoteStatusAccepted {
			return entities.QuoteVersion{}, ErrQuoteUnderEscrow
		}
		return entities.QuoteVersion{}, fmt.Errorf("%w: status %s", ErrQuoteImmutable, q.Status)
	}

	target.Snapshot.ApplyTo(&q)
	summary := fmt.Sprintf("reverted to version %d", target.VersionNumber)
	return u.Commit(ctx, q, by, summary)
}

func (u *VersionUseCase) versionOfQuote(ctx context.Context, quoteID, versionID string) (entities.QuoteVersion, error) {
	quoteID = strings.TrimSpace(quoteID)
	versionID = strings.TrimSpace(versionID)
	if quoteID == "" {
		return entities.QuoteVersion{}, ErrInvalidQuoteID
	}
	if versionID == "" {
		return entities.QuoteVersion{}, ErrInvalidVersionID
	}

	v, err := u.versionRepo.GetByID(ctx, versionID)
	if err != nil {
		return entities.QuoteVersion{}, err
	}
	if v.ID == "" || v.QuoteID != quoteID {
		// A version of another quote is indistinguishable from an unknown one.
		return entities.QuoteVersion{}, fmt.Errorf("%w: %s", ErrVersionNotFound, versionID)
	}
	return v, nil
}
