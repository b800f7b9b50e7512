package ports

import (
	"context"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// GetByEmail returns nil (no error) when the email is unknown; the
	// authentication service turns that into an AuthenticationError so the
	// response does not reveal whether the account exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetActiveUsers(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
