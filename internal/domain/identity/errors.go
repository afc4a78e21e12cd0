package identity

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("identity account not found")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)
