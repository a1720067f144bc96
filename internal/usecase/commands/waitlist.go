package commands

import (
	"context"
	"encoding/json"
	"errors"

	"enroll-ledger/internal/domain/enrollment"
	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/pkg/clock"
	"enroll-ledger/internal/pkg/errs"
	"enroll-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotWaitlisted  = errs.New("enrollment is not waitlisted")
	ErrPromoteFailed  = errs.New("waitlist promotion failed")
	ErrRenumberFailed = errs.New("waitlist renumbering failed")
)

type PromoteResult struct {
	EnrollmentID     uuid.UUID
	SectionID        uuid.UUID
	PromotedEmail    *string
	NewEnrolledCount int32
}

type WaitlistCommands interface {
	Promote(ctx context.Context, enrollmentID uuid.UUID) (*PromoteResult, error)
	Renumber(ctx context.Context, sectionID uuid.UUID) error
}

type waitlistCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewWaitlistCommands(uow shared.UnitOfWork, clk clock.Clock) WaitlistCommands {
	return &waitlistCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// Promote gives a waitlisted enrollment a freed seat. A full section is an
// expected answer here, not a fault: operators probe head-of-line entries
// and back off on ErrSectionFull.
func (w *waitlistCommandsImpl) Promote(ctx context.Context, enrollmentID uuid.UUID) (*PromoteResult, error) {
	var result *PromoteResult
	err := w.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		result, txErr = w.promote(ctx, tx, enrollmentID)
		return txErr
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEnrollmentNotFound),
			errors.Is(err, ErrNotWaitlisted),
			errors.Is(err, ErrSectionFull):
			return nil, err
		}
		return nil, errs.Mark(err, ErrPromoteFailed)
	}

	return result, nil
}

// promote reads the enrollment without a row lock; the section row lock
// taken right after is what serializes concurrent promotions, and any
// promote that committed in between shows up as a serialization retry.
func (w *waitlistCommandsImpl) promote(ctx context.Context, tx shared.Tx, enrollmentID uuid.UUID) (*PromoteResult, error) {
	enr, err := tx.Enrollments().FindByID(ctx, tx.DB(), enrollmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	if !enr.IsWaitlisted() {
		return nil, ErrNotWaitlisted
	}

	sec, err := tx.Sections().FindByIDForUpdate(ctx, tx.DB(), enr.SectionID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	if !sec.HasCapacity() {
		return nil, ErrSectionFull
	}

	if err := sec.TakeSeat(); err != nil {
		return nil, err
	}
	if err := tx.Sections().SaveOccupancy(ctx, tx.DB(), sec); err != nil {
		return nil, err
	}

	if err := enr.Promote(); err != nil {
		return nil, err
	}
	if err := tx.Enrollments().SavePromotion(ctx, tx.DB(), enr); err != nil {
		return nil, err
	}

	if err := w.renumberLocked(ctx, tx, sec.ID()); err != nil {
		return nil, err
	}

	if err := w.queuePromotionNotification(ctx, tx, enr); err != nil {
		return nil, err
	}

	return &PromoteResult{
		EnrollmentID:     enr.ID(),
		SectionID:        sec.ID(),
		PromotedEmail:    enr.Email(),
		NewEnrolledCount: sec.EnrolledCount(),
	}, nil
}

// Renumber repairs a section's waitlist back to contiguous 1..N. It takes
// the section row lock first, so it serializes against reconciliation and
// promotion on the same section.
func (w *waitlistCommandsImpl) Renumber(ctx context.Context, sectionID uuid.UUID) error {
	err := w.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Sections().FindByIDForUpdate(ctx, tx.DB(), sectionID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSectionNotFound
			}
			return err
		}
		return w.renumberLocked(ctx, tx, sectionID)
	})
	if err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			return err
		}
		return errs.Mark(err, ErrRenumberFailed)
	}

	return nil
}

// renumberLocked reassigns 1..N in the captured order. Positions are
// cleared first so the partial unique index never sees two rows at the
// same position while they shift.
func (w *waitlistCommandsImpl) renumberLocked(ctx context.Context, tx shared.Tx, sectionID uuid.UUID) error {
	waitlisted, err := tx.Enrollments().ListWaitlistedForUpdate(ctx, tx.DB(), sectionID)
	if err != nil {
		return err
	}
	if len(waitlisted) == 0 {
		return nil
	}

	if err := tx.Enrollments().ClearWaitlistPositions(ctx, tx.DB(), sectionID); err != nil {
		return err
	}

	for i, enr := range waitlisted {
		if err := tx.Enrollments().SetWaitlistPosition(ctx, tx.DB(), enr.ID(), int32(i+1)); err != nil {
			return err
		}
	}

	return nil
}

func (w *waitlistCommandsImpl) queuePromotionNotification(ctx context.Context, tx shared.Tx, enr *enrollment.Enrollment) error {
	payload, err := json.Marshal(map[string]any{
		"enrollment_id": enr.ID(),
		"section_id":    enr.SectionID(),
		"plan":          enr.Plan().String(),
		"email":         enr.Email(),
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindEmail, topicEnrollmentPromoted, payload, w.clock.Now())
}
