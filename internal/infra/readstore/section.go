package readstore

import (
	"context"

	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/infra/db"
	"enroll-ledger/internal/pkg/pgconv"
	"enroll-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

const findSectionViewByIDSQL = `
SELECT id, label, max_capacity, enrolled_count, status, created_at, updated_at
FROM sections
WHERE id = $1`

const listSectionViewsSQL = `
SELECT id, label, max_capacity, enrolled_count, status, created_at, updated_at
FROM sections
ORDER BY label ASC, id ASC`

type SectionReadStore struct{}

func NewSectionReadStore() *SectionReadStore {
	return &SectionReadStore{}
}

func (r *SectionReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.SectionView, error) {
	var view queries.SectionView
	err := dbtx.QueryRow(ctx, findSectionViewByIDSQL, id).Scan(
		&view.ID,
		&view.Label,
		&view.MaxCapacity,
		&view.EnrolledCount,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("section not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find section by ID", err)
	}

	return &view, nil
}

func (r *SectionReadStore) List(ctx context.Context, dbtx db.DBTX) ([]*queries.SectionView, error) {
	rows, err := dbtx.Query(ctx, listSectionViewsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sections", err)
	}
	defer rows.Close()

	var views []*queries.SectionView
	for rows.Next() {
		var view queries.SectionView
		if err := rows.Scan(
			&view.ID,
			&view.Label,
			&view.MaxCapacity,
			&view.EnrolledCount,
			&view.Status,
			&view.CreatedAt,
			&view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan section row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read section rows", err)
	}

	return views, nil
}
