package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/handler"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/infrastructure/http/handlers"
)

type stubAuth struct {
	users map[string]*domain.User
}

func (s *stubAuth) AuthenticateRequest(_ context.Context, token string) (*domain.User, error) {
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, domain.ErrUnauthenticated
}

func (s *stubAuth) CompleteLogin(context.Context, string, string) (string, error) {
	return "", errors.New("not used")
}

func (s *stubAuth) LoginURL(string) string { return "https://portal.example/app-auth" }

// routerStore implements only what these tests reach; other methods panic.
type routerStore struct {
	ports.ContentStore
	links     []domain.SocialMediaLink
	createErr error
	calls     int
}

func (s *routerStore) ListSocialMedia(context.Context, int64) []domain.SocialMediaLink {
	s.calls++
	return s.links
}

func (s *routerStore) CreateSocialMedia(_ context.Context, userID int64, in ports.SocialMediaInput) (*domain.SocialMediaLink, error) {
	s.calls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.SocialMediaLink{Owned: domain.Owned{ID: 1, UserID: userID}, Platform: in.Platform, URL: in.URL}, nil
}

type routerMigrations struct{ calls int }

func (m *routerMigrations) RunMigration(context.Context, int64) ports.MigrationResult {
	m.calls++
	return ports.MigrationResult{Success: true, Message: "Migration completed successfully"}
}

type routerNotifications struct{}

func (routerNotifications) NotifyOwner(context.Context, string, string) (bool, error) {
	return true, nil
}

type fixture struct {
	e          *echo.Echo
	store      *routerStore
	migrations *routerMigrations
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: &routerStore{}, migrations: &routerMigrations{}}
	f.e = NewRouter(Dependencies{
		Log: zerolog.Nop(),
		Auth: &stubAuth{users: map[string]*domain.User{
			"user-token":  {ID: 10, OpenID: "oid-user", Role: domain.RoleUser},
			"admin-token": {ID: 1, OpenID: "oid-owner", Role: domain.RoleAdmin},
		}},
		Store:         f.store,
		Notifications: routerNotifications{},
		Migrations:    f.migrations,
		Cookie:        handler.CookieConfig{Name: "app_session_id", MaxAge: time.Hour},
		Health: []handlers.Dependency{
			{Name: "postgres", Check: func(context.Context) error { return nil }},
		},
	})
	return f
}

func (f *fixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "app_session_id", Value: token})
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_AnonymousIsRejected(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/rpc/socialMedia.list", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Please login (10001)","code":"UNAUTHORIZED"}`, rec.Body.String())
	assert.Zero(t, f.store.calls)

	rec = f.do(http.MethodGet, "/api/rpc/socialMedia.list", "", "forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AuthMeIsPublic(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/rpc/auth.me", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	rec = f.do(http.MethodGet, "/api/rpc/auth.me", "", "user-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openId":"oid-user"`)
}

func TestRouter_SystemHealthIsPublic(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/rpc/system.health?input="+url.QueryEscape(`{"timestamp":0}`), "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestRouter_AdminGate(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/rpc/system.runMigration", "", "user-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"You do not have required permission (10002)","code":"FORBIDDEN"}`, rec.Body.String())
	assert.Zero(t, f.migrations.calls)

	rec = f.do(http.MethodPost, "/api/rpc/system.runMigration", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodPost, "/api/rpc/system.runMigration", "", "admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, f.migrations.calls)
}

func TestRouter_ValidationEnvelope(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/rpc/socialMedia.create", `{"platform":"YouTube","url":"nope"}`, "user-token")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"BAD_REQUEST"`)
	assert.Zero(t, f.store.calls)
}

func TestRouter_StoreUnavailable(t *testing.T) {
	f := newFixture(t)
	f.store.createErr = domain.ErrStoreUnavailable

	rec := f.do(http.MethodPost, "/api/rpc/socialMedia.create", `{"platform":"YouTube","url":"https://youtube.com/@v"}`, "user-token")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"database not available","code":"SERVICE_UNAVAILABLE"}`, rec.Body.String())
}

func TestRouter_MutationsRequirePOST(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/rpc/socialMedia.create", "", "user-token")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"METHOD_NOT_SUPPORTED"`)
}

func TestRouter_UnknownProcedure(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/rpc/nope.list", "", "user-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
}

func TestRouter_UploadRequiresUser(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/assets/upload", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodPost, "/api/assets/upload", "", "user-token")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_HealthProbes(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health/ready", "", "").Code)
}

func TestRouter_RegistryCoversEveryNamespace(t *testing.T) {
	procs := registry(procedureHandlers{})
	seen := map[string]bool{}
	for _, p := range procs {
		assert.False(t, seen[p.name], "duplicate procedure %s", p.name)
		seen[p.name] = true
	}

	for _, name := range []string{
		"auth.me", "auth.logout", "system.health", "system.notifyOwner", "system.runMigration",
		"tasks.toggle", "apiKeys.create", "templates.delete", "lore.update", "dashboard.stats",
	} {
		assert.True(t, seen[name], "missing procedure %s", name)
	}
	assert.Len(t, procs, 36)
}
