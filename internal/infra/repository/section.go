package repository

import (
	"context"

	"enroll-ledger/internal/domain/section"
	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/infra/db"
	"enroll-ledger/internal/infra/repository/converter"
	"enroll-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const createSectionSQL = `
INSERT INTO sections (id, label, max_capacity, enrolled_count, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

const findSectionForUpdateSQL = `
SELECT id, label, max_capacity, enrolled_count, status, created_at, updated_at
FROM sections
WHERE id = $1
FOR UPDATE`

const saveSectionOccupancySQL = `
UPDATE sections
SET enrolled_count = $2, status = $3, updated_at = now()
WHERE id = $1`

type SectionRepository struct{}

func NewSectionRepository() *SectionRepository {
	return &SectionRepository{}
}

func (r *SectionRepository) Create(ctx context.Context, tx db.DBTX, sec *section.Section) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createSectionSQL,
		sec.ID(),
		sec.Label(),
		sec.MaxCapacity(),
		sec.EnrolledCount(),
		sec.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create section", err)
	}

	return id, nil
}

// FindByIDForUpdate takes the section row lock that serializes all seat
// accounting for one section.
func (r *SectionRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*section.Section, error) {
	var row converter.SectionRow
	err := tx.QueryRow(ctx, findSectionForUpdateSQL, id).Scan(
		&row.ID,
		&row.Label,
		&row.MaxCapacity,
		&row.EnrolledCount,
		&row.Status,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("section not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock section", err)
	}

	sec, err := converter.SectionToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert section row", err)
	}

	return sec, nil
}

func (r *SectionRepository) SaveOccupancy(ctx context.Context, tx db.DBTX, sec *section.Section) error {
	tag, err := tx.Exec(ctx, saveSectionOccupancySQL,
		sec.ID(),
		sec.EnrolledCount(),
		sec.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save section occupancy", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("section disappeared during update", nil, infra.KindNotFound)
	}

	return nil
}
