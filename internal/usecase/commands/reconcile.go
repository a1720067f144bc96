package commands

import (
	"context"
	"encoding/json"
	"errors"

	"enroll-ledger/internal/domain/enrollment"
	"enroll-ledger/internal/domain/section"
	reqdto "enroll-ledger/internal/handler/dto/request"
	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/pkg/clock"
	"enroll-ledger/internal/pkg/errs"
	"enroll-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEnrollmentNotFound = errs.New("enrollment not found")
	ErrReconcileFailed    = errs.New("payment reconciliation failed")
)

const (
	notificationKindEmail = "email"

	topicEnrollmentConfirmed  = "enrollment.confirmed"
	topicEnrollmentWaitlisted = "enrollment.waitlisted"
	topicEnrollmentPromoted   = "enrollment.promoted"
)

type Outcome string

const (
	OutcomeConfirmed        Outcome = "CONFIRMED"
	OutcomeWaitlisted       Outcome = "WAITLISTED"
	OutcomeAlreadyProcessed Outcome = "ALREADY_PROCESSED"
)

type ReconcileResult struct {
	Outcome          Outcome
	EnrollmentID     uuid.UUID
	SectionID        uuid.UUID
	WaitlistPosition *int32
}

type ReconcileCommands interface {
	ReconcilePayment(ctx context.Context, req reqdto.PaymentWebhookRequest) (*ReconcileResult, error)
}

type reconcileCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReconcileCommands(uow shared.UnitOfWork, clk clock.Clock) ReconcileCommands {
	return &reconcileCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// ReconcilePayment turns one completed payment into exactly one ledger row.
// The whole decision runs serializable under the section row lock: either
// the payment gets a seat, or it gets the next waitlist position. A session
// ID seen before short-circuits to the recorded outcome, so webhook
// redelivery never double-books.
func (r *reconcileCommandsImpl) ReconcilePayment(ctx context.Context, req reqdto.PaymentWebhookRequest) (*ReconcileResult, error) {
	sessionID, sectionID, plan, email, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlan)
	}

	var result *ReconcileResult
	err = r.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		result, txErr = r.reconcile(ctx, tx, sessionID, sectionID, plan, email)
		return txErr
	})
	if err != nil {
		// Two deliveries of the same session can race past the lookup; the
		// unique index on external_session_id aborts the loser. Re-read and
		// report the outcome the winner recorded.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return r.alreadyProcessed(ctx, sessionID)
		}
		if errors.Is(err, ErrSectionNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, errs.Mark(err, ErrReconcileFailed)
	}

	return result, nil
}

func (r *reconcileCommandsImpl) reconcile(
	ctx context.Context,
	tx shared.Tx,
	sessionID string,
	sectionID uuid.UUID,
	plan enrollment.Plan,
	email *string,
) (*ReconcileResult, error) {
	existing, err := tx.Enrollments().FindByExternalSessionID(ctx, tx.DB(), sessionID)
	if err == nil {
		return &ReconcileResult{
			Outcome:          OutcomeAlreadyProcessed,
			EnrollmentID:     existing.ID(),
			SectionID:        existing.SectionID(),
			WaitlistPosition: existing.WaitlistPosition(),
		}, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	sec, err := tx.Sections().FindByIDForUpdate(ctx, tx.DB(), sectionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	if sec.HasCapacity() {
		return r.confirm(ctx, tx, sec, sessionID, plan, email)
	}
	return r.waitlist(ctx, tx, sec, sessionID, plan, email)
}

func (r *reconcileCommandsImpl) confirm(
	ctx context.Context,
	tx shared.Tx,
	sec *section.Section,
	sessionID string,
	plan enrollment.Plan,
	email *string,
) (*ReconcileResult, error) {
	if err := sec.TakeSeat(); err != nil {
		return nil, err
	}
	if err := tx.Sections().SaveOccupancy(ctx, tx.DB(), sec); err != nil {
		return nil, err
	}

	enr, err := enrollment.NewConfirmed(sec.ID(), plan, sessionID, email)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Enrollments().Create(ctx, tx.DB(), enr); err != nil {
		return nil, err
	}

	if err := r.queueNotification(ctx, tx, topicEnrollmentConfirmed, enr, nil); err != nil {
		return nil, err
	}

	return &ReconcileResult{
		Outcome:      OutcomeConfirmed,
		EnrollmentID: enr.ID(),
		SectionID:    sec.ID(),
	}, nil
}

func (r *reconcileCommandsImpl) waitlist(
	ctx context.Context,
	tx shared.Tx,
	sec *section.Section,
	sessionID string,
	plan enrollment.Plan,
	email *string,
) (*ReconcileResult, error) {
	count, err := tx.Enrollments().CountWaitlisted(ctx, tx.DB(), sec.ID())
	if err != nil {
		return nil, err
	}
	position := count + 1

	enr, err := enrollment.NewWaitlisted(sec.ID(), plan, sessionID, email, position)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Enrollments().Create(ctx, tx.DB(), enr); err != nil {
		return nil, err
	}

	if err := r.queueNotification(ctx, tx, topicEnrollmentWaitlisted, enr, &position); err != nil {
		return nil, err
	}

	return &ReconcileResult{
		Outcome:          OutcomeWaitlisted,
		EnrollmentID:     enr.ID(),
		SectionID:        sec.ID(),
		WaitlistPosition: &position,
	}, nil
}

func (r *reconcileCommandsImpl) alreadyProcessed(ctx context.Context, sessionID string) (*ReconcileResult, error) {
	snapshot, err := r.uow.CommandReads().EnrollmentBySessionID(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrReconcileFailed)
	}

	return &ReconcileResult{
		Outcome:          OutcomeAlreadyProcessed,
		EnrollmentID:     snapshot.ID,
		SectionID:        snapshot.SectionID,
		WaitlistPosition: snapshot.WaitlistPosition,
	}, nil
}

func (r *reconcileCommandsImpl) queueNotification(
	ctx context.Context,
	tx shared.Tx,
	topic string,
	enr *enrollment.Enrollment,
	position *int32,
) error {
	payload, err := json.Marshal(map[string]any{
		"enrollment_id": enr.ID(),
		"section_id":    enr.SectionID(),
		"plan":          enr.Plan().String(),
		"email":         enr.Email(),
		"position":      position,
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindEmail, topic, payload, r.clock.Now())
}
