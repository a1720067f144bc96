package readstore

import (
	"context"

	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/infra/db"
	"enroll-ledger/internal/pkg/pgconv"
	"enroll-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const sectionExistsSQL = `
SELECT EXISTS(SELECT 1 FROM sections WHERE id = $1)`

const listWaitlistBySectionSQL = `
SELECT id, section_id, email, plan, waitlist_position, created_at
FROM enrollments
WHERE section_id = $1 AND payment_status = 'WAITLISTED'
ORDER BY waitlist_position ASC NULLS LAST, created_at ASC, id ASC`

type WaitlistReadStore struct{}

func NewWaitlistReadStore() *WaitlistReadStore {
	return &WaitlistReadStore{}
}

func (r *WaitlistReadStore) ListBySection(ctx context.Context, dbtx db.DBTX, sectionID uuid.UUID) ([]*queries.WaitlistEntryView, error) {
	var exists bool
	if err := dbtx.QueryRow(ctx, sectionExistsSQL, sectionID).Scan(&exists); err != nil {
		return nil, infra.WrapRepoErr("failed to check section existence", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("section not found", nil, infra.KindNotFound)
	}

	rows, err := dbtx.Query(ctx, listWaitlistBySectionSQL, sectionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waitlist", err)
	}
	defer rows.Close()

	var entries []*queries.WaitlistEntryView
	for rows.Next() {
		var (
			entry    queries.WaitlistEntryView
			email    pgtype.Text
			position pgtype.Int4
		)
		if err := rows.Scan(
			&entry.EnrollmentID,
			&entry.SectionID,
			&email,
			&entry.Plan,
			&position,
			&entry.EnrolledAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan waitlist row", err)
		}

		entry.Email = pgconv.StringPtrFromPgtype(email)
		if position.Valid {
			entry.Position = position.Int32
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read waitlist rows", err)
	}

	return entries, nil
}
