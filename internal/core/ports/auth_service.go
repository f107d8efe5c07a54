package ports

import (
	"context"
	"time"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// CredentialsInput is the decoded body shared by the auth pipeline stages and
// handlers. Stages may rewrite RoleName in place.
type CredentialsInput struct {
	Username string `json:"username" validate:"required,max=128"`
	Password string `json:"password" validate:"required,max=72"`
	RoleName string `json:"role_name,omitempty"`
}

type AuthService interface {
	Register(ctx context.Context, in CredentialsInput) (*domain.User, error)
	// Login checks password against the already looked-up user and issues a token.
	Login(ctx context.Context, user *domain.User, password string) (string, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
}
