package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/middleware"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

type stubAuthService struct {
	completeFn func(ctx context.Context, code, state string) (string, error)
	loginURL   string
	redirect   string
}

func (s *stubAuthService) AuthenticateRequest(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUnauthenticated
}

func (s *stubAuthService) CompleteLogin(ctx context.Context, code, state string) (string, error) {
	return s.completeFn(ctx, code, state)
}

func (s *stubAuthService) LoginURL(redirectURI string) string {
	s.redirect = redirectURI
	return s.loginURL
}

var testCookie = CookieConfig{Name: "app_session_id", MaxAge: 365 * 24 * time.Hour}

func TestAuthHandler_Callback_SetsCookieAndRedirects(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		completeFn: func(_ context.Context, code, state string) (string, error) {
			if code != "abc" || state != "c3RhdGU=" {
				t.Fatalf("unexpected args: %s %s", code, state)
			}
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(stub, testCookie)

	req := httptest.NewRequest(http.MethodGet, "/api/oauth/callback?code=abc&state=c3RhdGU=", nil)
	rec := httptest.NewRecorder()
	if err := h.Callback(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/" {
		t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	ck := cookies[0]
	if ck.Name != "app_session_id" || ck.Value != "signed-token" || !ck.HttpOnly || ck.Path != "/" {
		t.Fatalf("unexpected cookie: %+v", ck)
	}
	if ck.Secure || ck.SameSite != http.SameSiteLaxMode {
		t.Fatalf("plain http must use a lax, non-secure cookie: %+v", ck)
	}
	if ck.MaxAge != int((365 * 24 * time.Hour).Seconds()) {
		t.Fatalf("unexpected max age %d", ck.MaxAge)
	}
}

func TestAuthHandler_Callback_SecureBehindHTTPS(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{completeFn: func(context.Context, string, string) (string, error) { return "tok", nil }}
	h := NewAuthHandler(stub, testCookie)

	req := httptest.NewRequest(http.MethodGet, "/api/oauth/callback?code=a&state=b", nil)
	req.Header.Set(echo.HeaderXForwardedProto, "https")
	rec := httptest.NewRecorder()
	if err := h.Callback(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	ck := rec.Result().Cookies()[0]
	if !ck.Secure || ck.SameSite != http.SameSiteNoneMode {
		t.Fatalf("expected secure SameSite=None cookie, got %+v", ck)
	}
}

func TestAuthHandler_Callback_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"missing params", domain.ErrValidation, http.StatusBadRequest},
		{"missing open id", domain.ErrMissingOpenID, http.StatusBadRequest},
		{"replayed code", domain.ErrCodeAlreadyUsed, http.StatusBadRequest},
		{"provider failure", errors.New("exchange code: boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			stub := &stubAuthService{completeFn: func(context.Context, string, string) (string, error) { return "", tt.err }}
			h := NewAuthHandler(stub, testCookie)

			rec := httptest.NewRecorder()
			err := h.Callback(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/oauth/callback", nil), rec))

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != tt.code {
				t.Fatalf("expected %d, got %v", tt.code, err)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Fatalf("no cookie may be set on failure")
			}
		})
	}
}

func TestAuthHandler_Login_Redirects(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{loginURL: "https://portal.example/app-auth?x=1"}
	h := NewAuthHandler(stub, testCookie)

	req := httptest.NewRequest(http.MethodGet, "http://dash.example/api/oauth/login", nil)
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != stub.loginURL {
		t.Fatalf("unexpected redirect: %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
	if stub.redirect != "http://dash.example/api/oauth/callback" {
		t.Fatalf("unexpected callback uri %q", stub.redirect)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, testCookie)

	rec := httptest.NewRecorder()
	if err := h.Me(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("anonymous me must be null, got %s", rec.Body.String())
	}

	name := "Ana"
	rec = httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	middleware.SetUser(c, &domain.User{ID: 3, OpenID: "oid-3", Name: &name, Role: domain.RoleAdmin})
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["openId"] != "oid-3" || resp["name"] != "Ana" || resp["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAuthHandler_Logout_ExpiresCookie(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, testCookie)

	rec := httptest.NewRecorder()
	if err := h.Logout(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if strings.TrimSpace(rec.Body.String()) != `{"success":true}` {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	ck := rec.Result().Cookies()[0]
	if ck.Name != "app_session_id" || ck.MaxAge >= 0 || ck.Value != "" {
		t.Fatalf("cookie not expired: %+v", ck)
	}
}
