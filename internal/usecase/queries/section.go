package queries

import (
	"context"

	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/infra/db"
	"enroll-ledger/internal/pkg/errs"
	"enroll-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSectionNotFound = errs.New("section not found")

type SectionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SectionView, error)
	List(ctx context.Context) ([]*SectionView, error)
}

type SectionReadStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*SectionView, error)
	List(ctx context.Context, dbtx db.DBTX) ([]*SectionView, error)
}

type sectionQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore SectionReadStore
}

func NewSectionQueries(uow shared.UnitOfWork, readStore SectionReadStore) SectionQueries {
	return &sectionQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *sectionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SectionView, error) {
	var view *SectionView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		view, err = q.readStore.FindByID(ctx, dbtx, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	return view, nil
}

func (q *sectionQueriesImpl) List(ctx context.Context) ([]*SectionView, error) {
	var views []*SectionView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		views, err = q.readStore.List(ctx, dbtx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}
