package commands

import (
	"context"

	"enroll-ledger/internal/domain/section"
	reqdto "enroll-ledger/internal/handler/dto/request"
	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/pkg/errs"
	"enroll-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSectionValidation = errs.New("section validation error")
	ErrDuplicateSection  = errs.New("section already exists")
	ErrSectionCreation   = errs.New("section creation failed")
)

type SectionCommands interface {
	CreateSection(ctx context.Context, req reqdto.CreateSectionRequest) (uuid.UUID, error)
}

type sectionCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSectionCommands(uow shared.UnitOfWork) SectionCommands {
	return &sectionCommandsImpl{uow: uow}
}

func (s *sectionCommandsImpl) CreateSection(ctx context.Context, req reqdto.CreateSectionRequest) (uuid.UUID, error) {
	sec, err := section.NewSection(req.Label, req.MaxCapacity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrSectionValidation)
	}

	var id uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Sections().Create(ctx, tx.DB(), sec)
		return txErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateSection
		}
		return uuid.Nil, errs.Mark(err, ErrSectionCreation)
	}

	return id, nil
}
