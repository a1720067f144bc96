package repository

import (
	"context"

	"enroll-ledger/internal/domain/enrollment"
	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/infra/db"
	"enroll-ledger/internal/infra/repository/converter"
	"enroll-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const createEnrollmentSQL = `
INSERT INTO enrollments (id, section_id, email, plan, payment_status, external_session_id, waitlist_position)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const findEnrollmentBySessionIDSQL = `
SELECT id, section_id, email, plan, payment_status, external_session_id, waitlist_position, created_at, updated_at
FROM enrollments
WHERE external_session_id = $1`

const findEnrollmentByIDSQL = `
SELECT id, section_id, email, plan, payment_status, external_session_id, waitlist_position, created_at, updated_at
FROM enrollments
WHERE id = $1`

const countWaitlistedSQL = `
SELECT count(*)
FROM enrollments
WHERE section_id = $1 AND payment_status = 'WAITLISTED'`

const listWaitlistedForUpdateSQL = `
SELECT id, section_id, email, plan, payment_status, external_session_id, waitlist_position, created_at, updated_at
FROM enrollments
WHERE section_id = $1 AND payment_status = 'WAITLISTED'
ORDER BY waitlist_position ASC NULLS LAST, created_at ASC, id ASC
FOR UPDATE`

const clearWaitlistPositionsSQL = `
UPDATE enrollments
SET waitlist_position = NULL, updated_at = now()
WHERE section_id = $1 AND payment_status = 'WAITLISTED'`

const setWaitlistPositionSQL = `
UPDATE enrollments
SET waitlist_position = $2, updated_at = now()
WHERE id = $1`

const savePromotionSQL = `
UPDATE enrollments
SET payment_status = $2, waitlist_position = $3, updated_at = now()
WHERE id = $1`

type EnrollmentRepository struct{}

func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{}
}

// Create relies on the unique index on external_session_id: a concurrent
// insert for the same payment session surfaces as DUPLICATE_KEY.
func (r *EnrollmentRepository) Create(ctx context.Context, tx db.DBTX, enr *enrollment.Enrollment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createEnrollmentSQL,
		enr.ID(),
		enr.SectionID(),
		pgconv.StringPtrToPgtype(enr.Email()),
		enr.Plan().String(),
		enr.PaymentStatus().String(),
		enr.ExternalSessionID(),
		pgconv.Int32PtrToPgtype(enr.WaitlistPosition()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create enrollment", err)
	}

	return id, nil
}

func (r *EnrollmentRepository) FindByExternalSessionID(ctx context.Context, tx db.DBTX, externalSessionID string) (*enrollment.Enrollment, error) {
	row, err := scanEnrollment(tx.QueryRow(ctx, findEnrollmentBySessionIDSQL, externalSessionID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find enrollment by session ID", err)
	}

	enr, err := converter.EnrollmentToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert enrollment row", err)
	}

	return enr, nil
}

// FindByID reads without a row lock. Enrollment rows are never locked
// directly; the owning section's row lock serializes every status change.
func (r *EnrollmentRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*enrollment.Enrollment, error) {
	row, err := scanEnrollment(tx.QueryRow(ctx, findEnrollmentByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find enrollment", err)
	}

	enr, err := converter.EnrollmentToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert enrollment row", err)
	}

	return enr, nil
}

func (r *EnrollmentRepository) CountWaitlisted(ctx context.Context, tx db.DBTX, sectionID uuid.UUID) (int32, error) {
	var count int32
	err := tx.QueryRow(ctx, countWaitlistedSQL, sectionID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count waitlisted enrollments", err)
	}

	return count, nil
}

// ListWaitlistedForUpdate locks the section's waitlist rows in promotion
// order. Rows whose position was cleared mid-repair sort last, by arrival.
func (r *EnrollmentRepository) ListWaitlistedForUpdate(ctx context.Context, tx db.DBTX, sectionID uuid.UUID) ([]*enrollment.Enrollment, error) {
	rows, err := tx.Query(ctx, listWaitlistedForUpdateSQL, sectionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock waitlisted enrollments", err)
	}
	defer rows.Close()

	var result []*enrollment.Enrollment
	for rows.Next() {
		var row converter.EnrollmentRow
		if err := rows.Scan(
			&row.ID,
			&row.SectionID,
			&row.Email,
			&row.Plan,
			&row.PaymentStatus,
			&row.ExternalSessionID,
			&row.WaitlistPosition,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan waitlisted enrollment", err)
		}

		enr, err := converter.EnrollmentToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert enrollment row", err)
		}
		result = append(result, enr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read waitlisted enrollments", err)
	}

	return result, nil
}

// ClearWaitlistPositions must run before reassignment so the partial unique
// index on (section_id, waitlist_position) never sees two rows at the same
// position mid-renumber.
func (r *EnrollmentRepository) ClearWaitlistPositions(ctx context.Context, tx db.DBTX, sectionID uuid.UUID) error {
	if _, err := tx.Exec(ctx, clearWaitlistPositionsSQL, sectionID); err != nil {
		return infra.WrapRepoErr("failed to clear waitlist positions", err)
	}

	return nil
}

func (r *EnrollmentRepository) SetWaitlistPosition(ctx context.Context, tx db.DBTX, id uuid.UUID, position int32) error {
	tag, err := tx.Exec(ctx, setWaitlistPositionSQL, id, position)
	if err != nil {
		return infra.WrapRepoErr("failed to set waitlist position", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("enrollment disappeared during renumber", nil, infra.KindNotFound)
	}

	return nil
}

func (r *EnrollmentRepository) SavePromotion(ctx context.Context, tx db.DBTX, enr *enrollment.Enrollment) error {
	tag, err := tx.Exec(ctx, savePromotionSQL,
		enr.ID(),
		enr.PaymentStatus().String(),
		pgconv.Int32PtrToPgtype(enr.WaitlistPosition()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save promoted enrollment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("enrollment disappeared during promotion", nil, infra.KindNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEnrollment(row rowScanner) (converter.EnrollmentRow, error) {
	var r converter.EnrollmentRow
	err := row.Scan(
		&r.ID,
		&r.SectionID,
		&r.Email,
		&r.Plan,
		&r.PaymentStatus,
		&r.ExternalSessionID,
		&r.WaitlistPosition,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}
