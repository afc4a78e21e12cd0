package identity

import (
	"context"
	"time"
)

// Account is a stored credential record. PasswordHash is a bcrypt hash,
// never the plaintext password.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Repository interface {
	GetByEmail(ctx context.Context, email string) (Account, error)
	Create(ctx context.Context, email, passwordHash string) (Account, error)
	Delete(ctx context.Context, id string) error
}
