package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

type stubAuthenticator struct {
	users map[string]*domain.User
	calls int
}

func (s *stubAuthenticator) AuthenticateRequest(_ context.Context, token string) (*domain.User, error) {
	s.calls++
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, domain.ErrUnauthenticated
}

func runSession(t *testing.T, auth Authenticator, cookie *http.Cookie) (*domain.User, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var (
		got *domain.User
		ok  bool
	)
	handler := Session(auth, "app_session_id", zerolog.Nop())(func(c echo.Context) error {
		got, ok = UserFrom(c)
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("session middleware must not fail the request: %v", err)
	}
	return got, ok
}

func TestSession_ValidCookie(t *testing.T) {
	auth := &stubAuthenticator{users: map[string]*domain.User{"good": {ID: 7}}}

	user, ok := runSession(t, auth, &http.Cookie{Name: "app_session_id", Value: "good"})
	if !ok || user.ID != 7 {
		t.Fatalf("expected user 7, got %+v", user)
	}
}

func TestSession_InvalidCookieIsAnonymous(t *testing.T) {
	auth := &stubAuthenticator{}

	if _, ok := runSession(t, auth, &http.Cookie{Name: "app_session_id", Value: "bad"}); ok {
		t.Fatalf("expected anonymous context")
	}
	if auth.calls != 1 {
		t.Fatalf("expected one authentication attempt, got %d", auth.calls)
	}
}

func TestSession_NoCookie(t *testing.T) {
	auth := &stubAuthenticator{}

	if _, ok := runSession(t, auth, nil); ok {
		t.Fatalf("expected anonymous context")
	}
	if auth.calls != 0 {
		t.Fatalf("authenticator must not be called without a cookie")
	}
}

func TestRequireUser(t *testing.T) {
	e := echo.New()

	anon := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err := RequireUser()(func(echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(anon)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized || he.Message != UnauthenticatedMessage {
		t.Fatalf("expected 401 with login message, got %v", err)
	}

	authed := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	SetUser(authed, &domain.User{ID: 1})
	called := false
	if err := RequireUser()(func(echo.Context) error { called = true; return nil })(authed); err != nil || !called {
		t.Fatalf("expected pass-through, err=%v called=%v", err, called)
	}
}
