package converter

import (
	"time"

	"enroll-ledger/internal/domain/enrollment"
	"enroll-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EnrollmentRow struct {
	ID                uuid.UUID
	SectionID         uuid.UUID
	Email             pgtype.Text
	Plan              string
	PaymentStatus     string
	ExternalSessionID string
	WaitlistPosition  pgtype.Int4
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func EnrollmentToDomain(row EnrollmentRow) (*enrollment.Enrollment, error) {
	return enrollment.ReconstructEnrollment(
		row.ID,
		row.SectionID,
		pgconv.StringPtrFromPgtype(row.Email),
		enrollment.Plan(row.Plan),
		enrollment.PaymentStatus(row.PaymentStatus),
		row.ExternalSessionID,
		pgconv.Int32PtrFromPgtype(row.WaitlistPosition),
		row.CreatedAt,
		row.UpdatedAt,
	)
}
