//go:build unit || e2e

package builder

import (
	"enroll-ledger/internal/domain/enrollment"

	"github.com/google/uuid"
)

type EnrollmentBuilder struct {
	SectionID         uuid.UUID
	Plan              string
	Email             *string
	ExternalSessionID string
	WaitlistPosition  int32
}

func NewEnrollmentBuilder() *EnrollmentBuilder {
	email := "student@example.com"
	return &EnrollmentBuilder{
		SectionID:         uuid.New(),
		Plan:              "FULL",
		Email:             &email,
		ExternalSessionID: "sess_" + uuid.NewString(),
		WaitlistPosition:  1,
	}
}

func (b *EnrollmentBuilder) With(mutate func(*EnrollmentBuilder)) *EnrollmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EnrollmentBuilder) BuildConfirmed() (*enrollment.Enrollment, error) {
	plan, err := enrollment.NewPlan(b.Plan)
	if err != nil {
		return nil, err
	}

	return enrollment.NewConfirmed(b.SectionID, plan, b.ExternalSessionID, b.Email)
}

func (b *EnrollmentBuilder) BuildWaitlisted() (*enrollment.Enrollment, error) {
	plan, err := enrollment.NewPlan(b.Plan)
	if err != nil {
		return nil, err
	}

	return enrollment.NewWaitlisted(b.SectionID, plan, b.ExternalSessionID, b.Email, b.WaitlistPosition)
}

// Fluent builder methods
func (b *EnrollmentBuilder) WithSectionID(id uuid.UUID) *EnrollmentBuilder {
	b.SectionID = id
	return b
}

func (b *EnrollmentBuilder) WithPlan(plan string) *EnrollmentBuilder {
	b.Plan = plan
	return b
}

func (b *EnrollmentBuilder) WithEmail(email *string) *EnrollmentBuilder {
	b.Email = email
	return b
}

func (b *EnrollmentBuilder) WithSessionID(sessionID string) *EnrollmentBuilder {
	b.ExternalSessionID = sessionID
	return b
}

func (b *EnrollmentBuilder) WithPosition(position int32) *EnrollmentBuilder {
	b.WaitlistPosition = position
	return b
}
