package ports

import (
	"context"
	"time"

	"github.com/hostelhub/hostel-api/internal/core/domain"
)

// Session is the result of a successful login: the signed token to place in
// the cookie, its expiry, and the user summary for the response body.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.UserSummary
}

// AuthService implements the signup/login/logout and password-reset flows.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	// Logout revokes the given session token. An unparseable token is not an
	// error: the cookie is cleared regardless.
	Logout(ctx context.Context, token string) error
	// ForgotPassword issues a single-use reset token and mails the reset
	// link. Unknown emails are silently ignored to avoid user enumeration.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}
