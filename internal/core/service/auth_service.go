package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/auth-service/internal/api/metrics"
	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenRevoker abstracts the revocation store (Redis).
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// AuthService implements registration, login and logout.
type AuthService struct {
	repo       ports.UserRepository
	tokens     TokenIssuer
	revoker    TokenRevoker
	bcryptCost int
	log        zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens TokenIssuer, revoker TokenRevoker, bcryptCost int, log zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, tokens: tokens, revoker: revoker, bcryptCost: bcryptCost, log: log}
}

// Register stores a new user. in.RoleName is expected to be normalized by the
// role name stage already; an empty value falls back to the student role.
func (s *AuthService) Register(ctx context.Context, in ports.CredentialsInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	roleName := in.RoleName
	if roleName == "" {
		roleName = domain.RoleStudent
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Add(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		RoleName:     roleName,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Str("role_name", created.RoleName).Msg("user registered")
	return created, nil
}

// Login verifies password against user, which the credential lookup stage
// has already fetched, and returns a signed token.
func (s *AuthService) Login(_ context.Context, user *domain.User, password string) (string, error) {
	if user == nil || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.log.Warn().Err(err).Str("user_id", user.ID).Msg("stored password hash unusable")
		}
		metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return signed, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	if err := s.revoker.Revoke(ctx, tokenID, expiresAt); err != nil {
		return err
	}
	metrics.TokensRevokedTotal.Inc()
	return nil
}
