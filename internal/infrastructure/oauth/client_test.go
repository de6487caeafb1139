package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ExchangeAndUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch r.URL.Path {
		case exchangeTokenPath:
			assert.Equal(t, "app-1", body["clientId"])
			assert.Equal(t, "authorization_code", body["grantType"])
			assert.Equal(t, "code-1", body["code"])
			assert.Equal(t, "https://app.example/cb", body["redirectUri"])
			_ = json.NewEncoder(w).Encode(map[string]any{"accessToken": "at-1", "tokenType": "Bearer"})
		case getUserInfoPath:
			assert.Equal(t, "at-1", body["accessToken"])
			_ = json.NewEncoder(w).Encode(map[string]any{
				"openId": "oid-1", "name": "Ada", "email": "ada@example.com",
				"platforms": []string{"REGISTERED_PLATFORM_GOOGLE"},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{ServerURL: srv.URL, AppID: "app-1"})

	token, err := c.ExchangeCode(context.Background(), "code-1", "https://app.example/cb")
	require.NoError(t, err)
	assert.Equal(t, "at-1", token)

	info, err := c.UserInfo(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "oid-1", info.OpenID)
	assert.Equal(t, "google", info.LoginMethod)
}

func TestClient_UserInfoWithSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, getUserInfoWithJWTPath, r.URL.Path)
		assert.Equal(t, "session-token", body["jwtToken"])
		assert.Equal(t, "app-1", body["projectId"])
		_ = json.NewEncoder(w).Encode(map[string]any{"openId": "oid-1", "name": "Ada", "platform": "email"})
	}))
	defer srv.Close()

	info, err := NewClient(Config{ServerURL: srv.URL, AppID: "app-1"}).UserInfoWithSession(context.Background(), "session-token")
	require.NoError(t, err)
	assert.Equal(t, "email", info.LoginMethod)
}

func TestClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(Config{ServerURL: srv.URL, AppID: "app-1"}).ExchangeCode(context.Background(), "c", "/cb")
	require.Error(t, err)
}

func TestClient_NotConfigured(t *testing.T) {
	_, err := NewClient(Config{}).UserInfo(context.Background(), "t")
	require.Error(t, err)
}

func TestLoginURL(t *testing.T) {
	c := NewClient(Config{PortalURL: "https://portal.example/", AppID: "app-1"})

	u, err := url.Parse(c.LoginURL("https://app.example/api/oauth/callback", "c3RhdGU="))
	require.NoError(t, err)
	assert.Equal(t, "/app-auth", u.Path)
	assert.Equal(t, "app-1", u.Query().Get("appId"))
	assert.Equal(t, "https://app.example/api/oauth/callback", u.Query().Get("redirectUri"))
	assert.Equal(t, "c3RhdGU=", u.Query().Get("state"))
	assert.Equal(t, "signIn", u.Query().Get("type"))
}

func TestDeriveLoginMethod(t *testing.T) {
	cases := []struct {
		name      string
		platforms []string
		fallback  string
		want      string
	}{
		{"fallback wins", []string{"REGISTERED_PLATFORM_GOOGLE"}, "apple", "apple"},
		{"empty", nil, "", ""},
		{"email first", []string{"REGISTERED_PLATFORM_GOOGLE", "REGISTERED_PLATFORM_EMAIL"}, "", "email"},
		{"azure", []string{"REGISTERED_PLATFORM_AZURE"}, "", "microsoft"},
		{"github", []string{"REGISTERED_PLATFORM_GITHUB"}, "", "github"},
		{"unknown", []string{"DISCORD"}, "", "discord"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveLoginMethod(tc.platforms, tc.fallback))
		})
	}
}
