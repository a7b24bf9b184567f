package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learnhub/internal/config"
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const TokenTypeAccess = "access"

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrInvalidRole     = errors.New("invalid role claim")
)

// AuthService validates bearer tokens. Token issuance exists for operators
// and tests; login itself is handled elsewhere.
type AuthService interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWT(ctx context.Context, userID string, role domain.Role, ttl time.Duration) (string, error)
}

type authServiceImpl struct {
	secretKey []byte
	now       func() time.Time
}

func NewAuthService(jwtCfg config.JWTConfig) (AuthService, error) {
	if jwtCfg.SecretKey == "" {
		return nil, errors.New("jwt secret key is not configured")
	}
	return &authServiceImpl{secretKey: []byte(jwtCfg.SecretKey), now: time.Now}, nil
}

func (s *authServiceImpl) CreateJWT(ctx context.Context, userID string, role domain.Role, ttl time.Duration) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	now := s.now()
	claims := dto.AuthClaims{
		UserID:    userID,
		Role:      string(role),
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func tokenSnippet(token string) string {
	return token[:min(len(token), 20)] + "..."
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	appLogger := logger.Get()
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			appLogger.Warn("JWT token expired", zap.Error(err), zap.String("token_snippet", tokenSnippet(tokenString)))
		} else {
			appLogger.Warn("JWT validation failed", zap.Error(err), zap.String("token_snippet", tokenSnippet(tokenString)))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	if _, err := domain.ParseRole(claims.Role); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRole, err)
	}
	return claims, nil
}
