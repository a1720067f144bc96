package readstore

import (
	"context"

	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/infra/db"
	"enroll-ledger/internal/pkg/pgconv"
	"enroll-ledger/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const findEnrollmentViewBySessionIDSQL = `
SELECT id, section_id, email, plan, payment_status, external_session_id, waitlist_position, created_at, updated_at
FROM enrollments
WHERE external_session_id = $1`

type EnrollmentReadStore struct{}

func NewEnrollmentReadStore() *EnrollmentReadStore {
	return &EnrollmentReadStore{}
}

func (r *EnrollmentReadStore) FindBySessionID(ctx context.Context, dbtx db.DBTX, externalSessionID string) (*queries.EnrollmentView, error) {
	var (
		view     queries.EnrollmentView
		email    pgtype.Text
		position pgtype.Int4
	)
	err := dbtx.QueryRow(ctx, findEnrollmentViewBySessionIDSQL, externalSessionID).Scan(
		&view.ID,
		&view.SectionID,
		&email,
		&view.Plan,
		&view.PaymentStatus,
		&view.ExternalSessionID,
		&position,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find enrollment by session ID", err)
	}

	view.Email = pgconv.StringPtrFromPgtype(email)
	view.WaitlistPosition = pgconv.Int32PtrFromPgtype(position)
	return &view, nil
}
