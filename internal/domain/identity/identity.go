package identity

import "context"

// Principal is an authenticated identity: the account id plus the email
// it was registered with.
type Principal struct {
	ID    string
	Email string
}

// Store is the identity-store boundary. The portal consumes it for
// login, account provisioning during employee creation, and account
// removal during the employee-deletion cascade.
type Store interface {
	Authenticate(ctx context.Context, email, password string) (Principal, error)
	CreateAccount(ctx context.Context, email, password string) (Principal, error)
	DeleteAccount(ctx context.Context, principalID string) error
}
