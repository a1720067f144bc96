package readstore

import (
	"context"

	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/infra/db"
	"enroll-ledger/internal/pkg/pgconv"
	"enroll-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

const findUserByIDSQL = `
SELECT id, email, role, is_active
FROM users
WHERE id = $1`

const findUserByEmailSQL = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE email = $1`

type UserReadStore struct{}

func NewUserReadStore() *UserReadStore {
	return &UserReadStore{}
}

func (r *UserReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := dbtx.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&view.ID,
		&view.Email,
		&view.Role,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := dbtx.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&view.ID,
		&view.Email,
		&passwordHash,
		&view.Role,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, passwordHash, nil
}
