package repository

import (
	"context"

	"enroll-ledger/internal/domain/user"
	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/infra/db"

	"github.com/google/uuid"
)

const createUserSQL = `
INSERT INTO users (id, email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

const updateUserLastLoginSQL = `
UPDATE users
SET last_login = now(), updated_at = now()
WHERE id = $1`

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, usr *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createUserSQL,
		usr.ID(),
		usr.Email().Value(),
		usr.PasswordHash(),
		usr.Role().String(),
		usr.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, updateUserLastLoginSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}

	return nil
}
