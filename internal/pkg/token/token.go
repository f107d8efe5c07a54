// Package token issues and verifies the HS256 access tokens used by the API.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/99minutos/auth-service/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// ErrInvalid is returned for any token that does not verify: bad signature,
// malformed, expired, unexpected algorithm or revoked.
var ErrInvalid = errors.New("token invalid")

// Claims is the decoded payload of an access token.
type Claims struct {
	Username string `json:"username"`
	RoleName string `json:"role_name"`
	jwt.RegisteredClaims
}

// Denylist reports whether a token ID has been revoked.
type Denylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Manager signs and verifies tokens with a single shared secret.
type Manager struct {
	secret   []byte
	ttl      time.Duration
	denylist Denylist
	now      func() time.Time
}

// NewManager returns a Manager. denylist may be nil, in which case revocation
// is not checked.
func NewManager(secret string, ttl time.Duration, denylist Denylist) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{
		secret:   []byte(secret),
		ttl:      ttl,
		denylist: denylist,
		now:      time.Now,
	}
}

// Issue signs a token for user carrying its id, username and role name.
func (m *Manager) Issue(user *domain.User) (string, error) {
	now := m.now().UTC()
	claims := Claims{
		Username: user.Username,
		RoleName: user.RoleName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses raw and returns its claims. Any verification failure is
// reported as ErrInvalid; a failing denylist lookup is returned as-is.
func (m *Manager) Verify(ctx context.Context, raw string) (*Claims, error) {
	claims := &Claims{}
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}
	tkn, err := jwt.ParseWithClaims(raw, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !tkn.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if m.denylist != nil && claims.ID != "" {
		revoked, err := m.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrInvalid
		}
	}

	return claims, nil
}
