package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/luocityspa/staff-portal/internal/domain/identity"
	"github.com/luocityspa/staff-portal/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) identity.Repository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (identity.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.email, u.password_hash, u.created_at
		FROM users u
		WHERE u.email = $1
	`

	var account identity.Account
	err := q.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return identity.Account{}, identity.ErrAccountNotFound
	}
	if err != nil {
		return identity.Account{}, err
	}

	return account, nil
}

func (r *userRepositoryImpl) Create(ctx context.Context, email, passwordHash string) (identity.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES (uuidv7(), $1, $2, NOW())
		RETURNING id, email, password_hash, created_at
	`

	var account identity.Account
	err := q.QueryRow(ctx, query, email, passwordHash).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if err != nil {
		return identity.Account{}, err
	}

	return account, nil
}

func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return identity.ErrAccountNotFound
	}

	return nil
}
