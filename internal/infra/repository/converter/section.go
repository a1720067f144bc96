package converter

import (
	"time"

	"enroll-ledger/internal/domain/section"

	"github.com/google/uuid"
)

type SectionRow struct {
	ID            uuid.UUID
	Label         string
	MaxCapacity   int32
	EnrolledCount int32
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func SectionToDomain(row SectionRow) (*section.Section, error) {
	return section.ReconstructSection(
		row.ID,
		row.Label,
		row.MaxCapacity,
		row.EnrolledCount,
		section.Status(row.Status),
		row.CreatedAt,
		row.UpdatedAt,
	)
}
