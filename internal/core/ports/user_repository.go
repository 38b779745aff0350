package ports

import (
	"context"

	"github.com/hostelhub/hostel-api/internal/core/domain"
)

// UserRepository defines persistence for account records.
type UserRepository interface {
	// Create inserts the user. Returns domain.ErrEmailInUse when the email
	// is already taken (backed by a unique index, so concurrent signups
	// cannot both succeed).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	ListAll(ctx context.Context) ([]*domain.User, error)
}
