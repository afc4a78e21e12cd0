package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/luocityspa/staff-portal/internal/domain/employee"
	"github.com/luocityspa/staff-portal/internal/domain/identity"
	"github.com/luocityspa/staff-portal/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo     identity.Repository
	employeeRepo employee.Repository
	jwt.Service
}

func NewAuthService(userRepository identity.Repository, employeeRepository employee.Repository, jwtService jwt.Service) identity.AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepository,
		employeeRepo: employeeRepository,
		Service:      jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Authenticate implements identity.Store.
func (a *AuthServiceImpl) Authenticate(ctx context.Context, email, password string) (identity.Principal, error) {
	account, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			return identity.Principal{}, identity.ErrInvalidCredentials
		}
		return identity.Principal{}, fmt.Errorf("get account by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return identity.Principal{}, identity.ErrInvalidCredentials
	}

	return identity.Principal{ID: account.ID, Email: account.Email}, nil
}

// CreateAccount implements identity.Store.
func (a *AuthServiceImpl) CreateAccount(ctx context.Context, email, password string) (identity.Principal, error) {
	_, err := a.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return identity.Principal{}, identity.ErrEmailTaken
	}
	if !errors.Is(err, identity.ErrAccountNotFound) {
		return identity.Principal{}, fmt.Errorf("check existing account: %w", err)
	}

	hash, err := a.hashPassword(password)
	if err != nil {
		return identity.Principal{}, fmt.Errorf("hash password: %w", err)
	}

	account, err := a.userRepo.Create(ctx, email, hash)
	if err != nil {
		return identity.Principal{}, fmt.Errorf("create account: %w", err)
	}

	return identity.Principal{ID: account.ID, Email: account.Email}, nil
}

// DeleteAccount implements identity.Store.
func (a *AuthServiceImpl) DeleteAccount(ctx context.Context, principalID string) error {
	return a.userRepo.Delete(ctx, principalID)
}

// Login implements identity.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req identity.LoginRequest) (identity.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return identity.TokenResponse{}, err
	}

	principal, err := a.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return identity.TokenResponse{}, err
	}

	return a.issueTokens(ctx, principal.ID)
}

// Refresh implements identity.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (identity.TokenResponse, error) {
	if a.Service.IsTokenRevoked(refreshToken) {
		return identity.TokenResponse{}, identity.ErrInvalidCredentials
	}

	token, err := a.Service.JWTAuth().Decode(refreshToken)
	if err != nil {
		return identity.TokenResponse{}, identity.ErrInvalidCredentials
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return identity.TokenResponse{}, identity.ErrInvalidCredentials
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return identity.TokenResponse{}, identity.ErrInvalidCredentials
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return identity.TokenResponse{}, identity.ErrInvalidCredentials
	}

	// Rotate: the old refresh token stops working once a new pair is issued.
	a.Service.RevokeToken(refreshToken)

	return a.issueTokens(ctx, userID)
}

// Logout implements identity.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	a.Service.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userID string) (identity.TokenResponse, error) {
	profile, err := a.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return identity.TokenResponse{}, err
	}

	var resp identity.TokenResponse

	resp.AccessToken, resp.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(jwt.AccessClaims{
		UserID:       userID,
		Email:        profile.Email,
		EmployeeID:   profile.ID,
		EmployeeCode: profile.EmployeeCode,
		Name:         profile.FullName,
		Department:   profile.Department,
		Role:         profile.Role,
		Position:     profile.Position,
	})
	if err != nil {
		return identity.TokenResponse{}, fmt.Errorf("create access token: %w", err)
	}

	resp.RefreshToken, resp.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(userID)
	if err != nil {
		return identity.TokenResponse{}, fmt.Errorf("create refresh token: %w", err)
	}

	return resp, nil
}
