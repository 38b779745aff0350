package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the session JWT.
const SessionCookieName = "token"

// RevocationChecker reports whether a session token was denylisted at logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// CookieAuth validates the session JWT carried in the token cookie and
// injects its claims into the request context. Signature and expiry are
// verified server-side on every request; the client's own decode of the
// token is advisory UI state only, never an authorization boundary.
//
// Revocation lookups fail closed: if the denylist is unreachable the request
// is rejected rather than trusting a possibly revoked token.
func CookieAuth(jwtSecret string, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			jti, _ := claims["jti"].(string)
			if jti != "" && revocations != nil {
				revoked, err := revocations.IsRevoked(c.Request().Context(), jti)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "session verification unavailable")
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "session revoked")
				}
			}

			c.Set("user_id", claims["id"])
			c.Set("email", claims["email"])
			isAdmin, _ := claims["isAdmin"].(bool)
			c.Set("is_admin", isAdmin)

			return next(c)
		}
	}
}
