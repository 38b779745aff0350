package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hostelhub/hostel-api/internal/core/domain"
	"github.com/hostelhub/hostel-api/internal/core/ports"
)

const (
	// bcrypt cost matches the upstream hashing configuration.
	bcryptCost = 10

	sessionTTL = 7 * 24 * time.Hour
	resetTTL   = 15 * time.Minute

	resetPurpose = "password_reset"
)

// TokenStore abstracts the Redis-backed token state: the logout denylist and
// the single-use reset-token set.
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	SaveResetToken(ctx context.Context, jti string, ttl time.Duration) error
	// ConsumeResetToken atomically removes the token, reporting whether it
	// was still present. A second consume of the same jti returns false.
	ConsumeResetToken(ctx context.Context, jti string) (bool, error)
}

// Mailer delivers password-reset links. Delivery is an external collaborator;
// implementations live in infrastructure.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, link string) error
}

// AuthService implements signup, login, logout and password reset.
type AuthService struct {
	users      ports.UserRepository
	tokens     TokenStore
	mailer     Mailer
	jwtSecret  []byte
	appBaseURL string
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens TokenStore, mailer Mailer, jwtSecret, appBaseURL string, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		mailer:     mailer,
		jwtSecret:  []byte(jwtSecret),
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
		log:        log,
	}
}

func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// The existence check is advisory; the unique index on email is the
	// backstop against concurrent signups racing past it.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailInUse
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown email and wrong password must be indistinguishable.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	expiresAt := time.Now().UTC().Add(sessionTTL)
	token, err := s.signSessionToken(user, expiresAt)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Bool("is_admin", user.IsAdmin).Msg("login successful")

	return &ports.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Summary(),
	}, nil
}

// Logout places the token's jti on the denylist for the remainder of its
// lifetime. Tokens that fail verification are ignored: the caller clears the
// cookie either way, and an invalid token authorizes nothing.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}

	jti, _ := claims["jti"].(string)
	exp, expErr := claims.GetExpirationTime()
	if jti == "" || expErr != nil || exp == nil {
		return nil
	}

	remaining := time.Until(exp.Time)
	if remaining <= 0 {
		return nil
	}
	return s.tokens.Revoke(ctx, jti, remaining)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Respond identically for unknown emails; just don't send.
			s.log.Debug().Msg("password reset requested for unknown email")
			return nil
		}
		return err
	}

	jti := uuid.NewString()
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"purpose": resetPurpose,
		"jti":     jti,
		"iat":     now.Unix(),
		"exp":     now.Add(resetTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return err
	}

	if err := s.tokens.SaveResetToken(ctx, jti, resetTTL); err != nil {
		return err
	}

	link := s.appBaseURL + "/reset-password?token=" + token
	if err := s.mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset link issued")
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return domain.ErrTokenInvalid
	}

	claims, err := s.parseToken(token)
	if err != nil {
		return domain.ErrTokenInvalid
	}
	if purpose, _ := claims["purpose"].(string); purpose != resetPurpose {
		return domain.ErrTokenInvalid
	}

	jti, _ := claims["jti"].(string)
	userID, _ := claims["sub"].(string)
	if jti == "" || userID == "" {
		return domain.ErrTokenInvalid
	}

	ok, err := s.tokens.ConsumeResetToken(ctx, jti)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("password reset completed")
	return nil
}

func (s *AuthService) signSessionToken(user *domain.User, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":      user.ID,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
		"jti":     uuid.NewString(),
		"iat":     time.Now().UTC().Unix(),
		"exp":     expiresAt.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *AuthService) parseToken(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
