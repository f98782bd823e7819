package repository

import (
	"context"

	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	selectUserByUsernameSQL = `SELECT id, username, role, is_active FROM users WHERE username = $1 AND is_active`
	selectUserByIDSQL       = `SELECT id, username, role, is_active FROM users WHERE id = $1`
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByUsername(ctx context.Context, tx db.DBTX, username string) (*shared.UserSnapshot, error) {
	u, err := scanUser(tx.QueryRow(ctx, selectUserByUsernameSQL, username))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get user by username", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, err := scanUser(tx.QueryRow(ctx, selectUserByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	return u, nil
}

func scanUser(row rowScanner) (*shared.UserSnapshot, error) {
	var (
		u    shared.UserSnapshot
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &role, &u.IsActive); err != nil {
		return nil, err
	}
	u.Role = user.Role(role)
	return &u, nil
}
