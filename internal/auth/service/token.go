package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/deepak92201/Portfolio/config"
	"github.com/deepak92201/Portfolio/internal/auth/domain"
)

// Claims is the JWT payload. Name and Role sit next to the registered claims.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 tokens. It holds no per-token state.
type TokenManager struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	leeway   time.Duration
	now      func() time.Time
}

func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	if strings.TrimSpace(cfg.Key) == "" {
		return nil, errors.New("jwt signing key is empty")
	}
	if cfg.ExpiryMinutes <= 0 {
		return nil, fmt.Errorf("jwt expiry must be positive, got %d minutes", cfg.ExpiryMinutes)
	}
	return &TokenManager{
		key:      []byte(cfg.Key),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      time.Duration(cfg.ExpiryMinutes) * time.Minute,
		leeway:   time.Duration(cfg.ClockSkewSeconds) * time.Second,
		now:      time.Now,
	}, nil
}

// Issue signs a token for username with the given role. exp is iat plus the TTL.
func (m *TokenManager) Issue(username, role string) (string, time.Time, error) {
	now := m.now().UTC().Truncate(time.Second)
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Name: username,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, algorithm, issuer, audience and expiry. Every
// failure is reported as domain.ErrUnauthorized.
func (m *TokenManager) Verify(raw string) (*domain.Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return m.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(m.leeway),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	return &domain.Principal{
		Username:  claims.Name,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
