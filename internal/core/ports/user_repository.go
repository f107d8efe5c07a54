package ports

import (
	"context"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// UserRepository defines the persistence operations for users and roles.
type UserRepository interface {
	// Find returns every user ordered by creation.
	Find(ctx context.Context) ([]domain.User, error)
	// FindBy returns the users matching every non-empty field of filter, in
	// insertion order. An empty slice means no match.
	FindBy(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Add stores the user, creating its role first when it does not exist yet.
	Add(ctx context.Context, user *domain.User) (*domain.User, error)
}
