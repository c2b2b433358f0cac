package auth

import (
	"context"
	"errors"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/audit"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/auth"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/user"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwt.Service
	auditRepo  audit.AuditRepository
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtService jwt.Service,
	auditRepo audit.AuditRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
		auditRepo:      auditRepo,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !u.Active {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	resp, err := s.issueTokens(u)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// No session claims exist yet at login; attribute the entry directly.
	s.auditRepo.Append(ctx, u.Username, audit.ActionLogin, "Sisteme giriş yapıldı")
	return resp, nil
}

// Refresh implements auth.AuthService. The presented refresh token is
// rotated: it is revoked and a fresh pair is issued.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	u, err := s.verifyRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !u.Active {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	s.jwtService.RevokeToken(req.RefreshToken)
	return s.issueTokens(u)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, req auth.RefreshTokenRequest) error {
	u, err := s.verifyRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return err
	}

	s.jwtService.RevokeToken(req.RefreshToken)
	s.auditRepo.Append(ctx, u.Username, audit.ActionLogout, "Sistemden çıkış yapıldı")
	return nil
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
		User:                  user.ToResponse(u),
	}, nil
}

// verifyRefreshToken checks signature, expiry, token type and revocation,
// then resolves the owning user.
func (s *AuthServiceImpl) verifyRefreshToken(ctx context.Context, tokenString string) (user.User, error) {
	if tokenString == "" {
		return user.User{}, auth.ErrInvalidToken
	}

	// 1. Verify JWT signature and expiry
	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), tokenString)
	if err != nil {
		return user.User{}, auth.ErrInvalidToken
	}

	// 2. Check token type is "refresh"
	claims, err := token.AsMap(ctx)
	if err != nil {
		return user.User{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return user.User{}, auth.ErrInvalidToken
	}

	// 3. Check revocation
	if s.jwtService.IsTokenRevoked(tokenString) {
		return user.User{}, auth.ErrRefreshTokenRevoked
	}

	// 4. Resolve the owning user
	id, ok := claims["user_id"].(string)
	if !ok {
		return user.User{}, auth.ErrInvalidToken
	}
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.User{}, auth.ErrInvalidToken
	}
	return u, nil
}
