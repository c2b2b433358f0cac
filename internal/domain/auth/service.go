package auth

import "context"

// AuthService defines login/logout against the in-memory user store. Login
// and logout both emit audit entries (LOGIN / LOGOUT).
type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid, unrevoked refresh token for a new pair.
	Refresh(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, req RefreshTokenRequest) error
}
