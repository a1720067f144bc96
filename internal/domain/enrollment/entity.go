package enrollment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlan          = errors.New("invalid plan")
	ErrEmptySessionID       = errors.New("external session id cannot be empty")
	ErrInvalidPosition      = errors.New("waitlist position must be 1-based")
	ErrNotWaitlisted        = errors.New("enrollment is not waitlisted")
	ErrAlreadyCompleted     = errors.New("enrollment is already completed")
	ErrCompletedHasPosition = errors.New("completed enrollment cannot hold a waitlist position")
)

// Enrollment is one committed or waitlisted seat claim, tied to exactly one
// payment event via externalSessionID. The only legal transitions are
// nothing -> COMPLETED, nothing -> WAITLISTED, and WAITLISTED -> COMPLETED.
type Enrollment struct {
	id                uuid.UUID
	sectionID         uuid.UUID
	email             *string
	plan              Plan
	paymentStatus     PaymentStatus
	externalSessionID string
	waitlistPosition  *int32
	createdAt         time.Time
	updatedAt         time.Time
}

// NewConfirmed builds an enrollment that got a real seat.
func NewConfirmed(sectionID uuid.UUID, plan Plan, externalSessionID string, email *string) (*Enrollment, error) {
	if err := validate(plan, externalSessionID); err != nil {
		return nil, err
	}
	return &Enrollment{
		id:                uuid.New(),
		sectionID:         sectionID,
		email:             normalizeEmail(email),
		plan:              plan,
		paymentStatus:     StatusCompleted,
		externalSessionID: externalSessionID,
	}, nil
}

// NewWaitlisted builds an enrollment for a payment that lost the capacity
// race. position is 1-based and assigned under the section row lock.
func NewWaitlisted(sectionID uuid.UUID, plan Plan, externalSessionID string, email *string, position int32) (*Enrollment, error) {
	if err := validate(plan, externalSessionID); err != nil {
		return nil, err
	}
	if position < 1 {
		return nil, ErrInvalidPosition
	}
	pos := position
	return &Enrollment{
		id:                uuid.New(),
		sectionID:         sectionID,
		email:             normalizeEmail(email),
		plan:              plan,
		paymentStatus:     StatusWaitlisted,
		externalSessionID: externalSessionID,
		waitlistPosition:  &pos,
	}, nil
}

func ReconstructEnrollment(
	id, sectionID uuid.UUID,
	email *string,
	plan Plan,
	paymentStatus PaymentStatus,
	externalSessionID string,
	waitlistPosition *int32,
	createdAt, updatedAt time.Time,
) (*Enrollment, error) {
	if paymentStatus == StatusCompleted && waitlistPosition != nil {
		return nil, ErrCompletedHasPosition
	}
	return &Enrollment{
		id:                id,
		sectionID:         sectionID,
		email:             email,
		plan:              plan,
		paymentStatus:     paymentStatus,
		externalSessionID: externalSessionID,
		waitlistPosition:  waitlistPosition,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

// Promote moves a waitlisted enrollment into a confirmed seat and clears
// its position. The caller is responsible for the capacity check and for
// renumbering the rest of the section's waitlist.
func (e *Enrollment) Promote() error {
	if e.paymentStatus == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if e.paymentStatus != StatusWaitlisted {
		return ErrNotWaitlisted
	}
	e.paymentStatus = StatusCompleted
	e.waitlistPosition = nil
	return nil
}

func (e *Enrollment) IsWaitlisted() bool {
	return e.paymentStatus == StatusWaitlisted
}

func (e *Enrollment) ID() uuid.UUID             { return e.id }
func (e *Enrollment) SectionID() uuid.UUID      { return e.sectionID }
func (e *Enrollment) Email() *string            { return e.email }
func (e *Enrollment) Plan() Plan                { return e.plan }
func (e *Enrollment) PaymentStatus() PaymentStatus { return e.paymentStatus }
func (e *Enrollment) ExternalSessionID() string { return e.externalSessionID }
func (e *Enrollment) WaitlistPosition() *int32  { return e.waitlistPosition }
func (e *Enrollment) CreatedAt() time.Time      { return e.createdAt }
func (e *Enrollment) UpdatedAt() time.Time      { return e.updatedAt }

func validate(plan Plan, externalSessionID string) error {
	if !plan.IsValid() {
		return ErrInvalidPlan
	}
	if strings.TrimSpace(externalSessionID) == "" {
		return ErrEmptySessionID
	}
	return nil
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
