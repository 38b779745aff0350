package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[jti], nil
}

func makeToken(t *testing.T, secret string, ttl time.Duration, jti string, isAdmin bool) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":      "u1",
		"email":   "alice@x.com",
		"isAdmin": isAdmin,
		"jti":     jti,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, cookie *http.Cookie, revocations RevocationChecker) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := CookieAuth(testSecret, revocations)(next)(c)
	return c, err
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != want {
		t.Fatalf("expected status %d, got %d (%v)", want, he.Code, he.Message)
	}
}

func TestCookieAuth_ValidToken(t *testing.T) {
	token := makeToken(t, testSecret, time.Hour, "jti-1", true)
	c, err := runAuth(t, &http.Cookie{Name: SessionCookieName, Value: token}, &stubRevocations{})
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if c.Get("user_id") != "u1" || c.Get("email") != "alice@x.com" {
		t.Fatalf("claims not injected: %v %v", c.Get("user_id"), c.Get("email"))
	}
	if isAdmin, _ := c.Get("is_admin").(bool); !isAdmin {
		t.Fatalf("is_admin not injected")
	}
}

func TestCookieAuth_MissingCookie(t *testing.T) {
	_, err := runAuth(t, nil, &stubRevocations{})
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestCookieAuth_WrongSignature(t *testing.T) {
	token := makeToken(t, "other-secret", time.Hour, "jti-1", false)
	_, err := runAuth(t, &http.Cookie{Name: SessionCookieName, Value: token}, &stubRevocations{})
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestCookieAuth_ExpiredToken(t *testing.T) {
	token := makeToken(t, testSecret, -time.Minute, "jti-1", false)
	_, err := runAuth(t, &http.Cookie{Name: SessionCookieName, Value: token}, &stubRevocations{})
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestCookieAuth_RevokedToken(t *testing.T) {
	token := makeToken(t, testSecret, time.Hour, "jti-gone", false)
	revocations := &stubRevocations{revoked: map[string]bool{"jti-gone": true}}
	_, err := runAuth(t, &http.Cookie{Name: SessionCookieName, Value: token}, revocations)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestCookieAuth_RevocationStoreDown_FailsClosed(t *testing.T) {
	token := makeToken(t, testSecret, time.Hour, "jti-1", false)
	revocations := &stubRevocations{err: errors.New("redis unavailable")}
	_, err := runAuth(t, &http.Cookie{Name: SessionCookieName, Value: token}, revocations)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAdminOnly(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	// Non-admin session.
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("is_admin", false)
	assertHTTPStatus(t, AdminOnly()(next)(c), http.StatusForbidden)

	// Admin session.
	c = e.NewContext(req, httptest.NewRecorder())
	c.Set("is_admin", true)
	if err := AdminOnly()(next)(c); err != nil {
		t.Fatalf("admin should pass: %v", err)
	}
}
