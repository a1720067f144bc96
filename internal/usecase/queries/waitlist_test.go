//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/infra/db"
	"enroll-ledger/internal/usecase/queries"
	queriesmock "enroll-ledger/tests/mock/queries"
	sharedmock "enroll-ledger/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type waitlistQueriesFixture struct {
	uow       *sharedmock.MockUnitOfWork
	readStore *queriesmock.MockWaitlistReadStore
	repairer  *queriesmock.MockWaitlistRepairer
	svc       queries.WaitlistQueries
}

func newWaitlistQueriesFixture(t *testing.T) *waitlistQueriesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &waitlistQueriesFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		readStore: queriesmock.NewMockWaitlistReadStore(ctrl),
		repairer:  queriesmock.NewMockWaitlistRepairer(ctrl),
	}

	f.uow.EXPECT().
		WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		}).
		AnyTimes()

	f.svc = queries.NewWaitlistQueries(f.uow, f.readStore, f.repairer)
	return f
}

func waitlistEntry(sectionID uuid.UUID, position int32) *queries.WaitlistEntryView {
	return &queries.WaitlistEntryView{
		EnrollmentID: uuid.New(),
		SectionID:    sectionID,
		Plan:         "FULL",
		Position:     position,
		EnrolledAt:   time.Now(),
	}
}

func TestListWaitlistBySection(t *testing.T) {
	t.Run("連番ならそのまま返す", func(t *testing.T) {
		f := newWaitlistQueriesFixture(t)
		sectionID := uuid.New()

		entries := []*queries.WaitlistEntryView{
			waitlistEntry(sectionID, 1),
			waitlistEntry(sectionID, 2),
		}
		f.readStore.EXPECT().
			ListBySection(gomock.Any(), gomock.Any(), sectionID).
			Return(entries, nil)

		result, err := f.svc.ListBySection(context.Background(), sectionID)
		require.NoError(t, err)
		assert.Equal(t, entries, result)
	})

	t.Run("欠番があれば詰め直して再読込する", func(t *testing.T) {
		f := newWaitlistQueriesFixture(t)
		sectionID := uuid.New()

		gapped := []*queries.WaitlistEntryView{
			waitlistEntry(sectionID, 1),
			waitlistEntry(sectionID, 7),
		}
		repaired := []*queries.WaitlistEntryView{
			{EnrollmentID: gapped[0].EnrollmentID, SectionID: sectionID, Plan: "FULL", Position: 1, EnrolledAt: gapped[0].EnrolledAt},
			{EnrollmentID: gapped[1].EnrollmentID, SectionID: sectionID, Plan: "FULL", Position: 2, EnrolledAt: gapped[1].EnrolledAt},
		}

		gomock.InOrder(
			f.readStore.EXPECT().
				ListBySection(gomock.Any(), gomock.Any(), sectionID).
				Return(gapped, nil),
			f.repairer.EXPECT().
				Renumber(gomock.Any(), sectionID).
				Return(nil),
			f.readStore.EXPECT().
				ListBySection(gomock.Any(), gomock.Any(), sectionID).
				Return(repaired, nil),
		)

		result, err := f.svc.ListBySection(context.Background(), sectionID)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, int32(1), result[0].Position)
		assert.Equal(t, int32(2), result[1].Position)
	})

	t.Run("NULL位置の行も詰め直しを起動する", func(t *testing.T) {
		f := newWaitlistQueriesFixture(t)
		sectionID := uuid.New()

		// 位置が消えた行はビューでは 0 として読まれる
		withHole := []*queries.WaitlistEntryView{
			waitlistEntry(sectionID, 1),
			waitlistEntry(sectionID, 0),
		}
		repaired := []*queries.WaitlistEntryView{
			waitlistEntry(sectionID, 1),
			waitlistEntry(sectionID, 2),
		}

		gomock.InOrder(
			f.readStore.EXPECT().
				ListBySection(gomock.Any(), gomock.Any(), sectionID).
				Return(withHole, nil),
			f.repairer.EXPECT().
				Renumber(gomock.Any(), sectionID).
				Return(nil),
			f.readStore.EXPECT().
				ListBySection(gomock.Any(), gomock.Any(), sectionID).
				Return(repaired, nil),
		)

		result, err := f.svc.ListBySection(context.Background(), sectionID)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, int32(2), result[1].Position)
	})

	t.Run("詰め直し失敗は呼び出し元に返す", func(t *testing.T) {
		f := newWaitlistQueriesFixture(t)
		sectionID := uuid.New()

		repairErr := infra.WrapRepoErr("renumber failed", nil, infra.KindDBFailure)
		f.readStore.EXPECT().
			ListBySection(gomock.Any(), gomock.Any(), sectionID).
			Return([]*queries.WaitlistEntryView{waitlistEntry(sectionID, 3)}, nil)
		f.repairer.EXPECT().
			Renumber(gomock.Any(), sectionID).
			Return(repairErr)

		_, err := f.svc.ListBySection(context.Background(), sectionID)
		assert.ErrorIs(t, err, repairErr)
	})

	t.Run("セクションが存在しないNG", func(t *testing.T) {
		f := newWaitlistQueriesFixture(t)
		sectionID := uuid.New()

		f.readStore.EXPECT().
			ListBySection(gomock.Any(), gomock.Any(), sectionID).
			Return(nil, infra.WrapRepoErr("section not found", nil, infra.KindNotFound))

		_, err := f.svc.ListBySection(context.Background(), sectionID)
		assert.ErrorIs(t, err, queries.ErrSectionNotFound)
	})
}
