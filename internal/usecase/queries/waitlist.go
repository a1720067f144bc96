package queries

import (
	"context"
	"log/slog"

	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/infra/db"
	"enroll-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type WaitlistQueries interface {
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]*WaitlistEntryView, error)
}

type WaitlistReadStore interface {
	ListBySection(ctx context.Context, dbtx db.DBTX, sectionID uuid.UUID) ([]*WaitlistEntryView, error)
}

// WaitlistRepairer restores contiguous 1..N positions for one section.
type WaitlistRepairer interface {
	Renumber(ctx context.Context, sectionID uuid.UUID) error
}

type waitlistQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore WaitlistReadStore
	repairer  WaitlistRepairer
}

func NewWaitlistQueries(uow shared.UnitOfWork, readStore WaitlistReadStore, repairer WaitlistRepairer) WaitlistQueries {
	return &waitlistQueriesImpl{
		uow:       uow,
		readStore: readStore,
		repairer:  repairer,
	}
}

// ListBySection returns the section's waitlist ordered by position. A gap
// or duplicate in the sequence triggers an in-line renumber and one
// re-read, so readers never see a broken ordering.
func (q *waitlistQueriesImpl) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]*WaitlistEntryView, error) {
	entries, err := q.list(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	if isContiguous(entries) {
		return entries, nil
	}

	slog.Warn("waitlist positions are not contiguous, repairing",
		"section_id", sectionID.String(),
		"entries", len(entries))

	if err := q.repairer.Renumber(ctx, sectionID); err != nil {
		return nil, err
	}

	return q.list(ctx, sectionID)
}

func (q *waitlistQueriesImpl) list(ctx context.Context, sectionID uuid.UUID) ([]*WaitlistEntryView, error) {
	var entries []*WaitlistEntryView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		entries, err = q.readStore.ListBySection(ctx, dbtx, sectionID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	return entries, nil
}

func isContiguous(entries []*WaitlistEntryView) bool {
	for i, e := range entries {
		if e.Position != int32(i+1) {
			return false
		}
	}
	return true
}
