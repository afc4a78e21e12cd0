package identity

import "context"

// AuthService is the login surface on top of Store. Login verifies the
// credential and issues a token pair whose access claims snapshot the
// employee profile linked to the account.
type AuthService interface {
	Store

	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
