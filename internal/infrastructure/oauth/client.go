// Package oauth talks to the external identity provider over its JSON RPC
// endpoints.
package oauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

const (
	exchangeTokenPath      = "/webdev.v1.WebDevAuthPublicService/ExchangeToken"
	getUserInfoPath        = "/webdev.v1.WebDevAuthPublicService/GetUserInfo"
	getUserInfoWithJWTPath = "/webdev.v1.WebDevAuthPublicService/GetUserInfoWithJwt"
	defaultTimeout         = 30 * time.Second
	maxResponseBytes       = 1 << 20
)

var _ ports.IdentityProvider = (*Client)(nil)

// Config captures the identity provider settings.
type Config struct {
	ServerURL string
	PortalURL string
	AppID     string
	Timeout   time.Duration
}

// Client implements ports.IdentityProvider.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	cfg.PortalURL = strings.TrimRight(cfg.PortalURL, "/")
	return &Client{cfg: cfg, http: &http.Client{Timeout: timeout}}
}

type exchangeTokenRequest struct {
	ClientID    string `json:"clientId"`
	GrantType   string `json:"grantType"`
	Code        string `json:"code"`
	RedirectURI string `json:"redirectUri"`
}

type exchangeTokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type userInfoResponse struct {
	OpenID      string   `json:"openId"`
	ProjectID   string   `json:"projectId"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Platform    string   `json:"platform"`
	LoginMethod string   `json:"loginMethod"`
	Platforms   []string `json:"platforms"`
}

// ExchangeCode trades an authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (string, error) {
	var resp exchangeTokenResponse
	err := c.post(ctx, exchangeTokenPath, exchangeTokenRequest{
		ClientID:    c.cfg.AppID,
		GrantType:   "authorization_code",
		Code:        code,
		RedirectURI: redirectURI,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("oauth exchange: empty access token")
	}
	return resp.AccessToken, nil
}

func (c *Client) UserInfo(ctx context.Context, accessToken string) (*ports.ProviderUser, error) {
	var resp userInfoResponse
	if err := c.post(ctx, getUserInfoPath, map[string]string{"accessToken": accessToken}, &resp); err != nil {
		return nil, err
	}
	return resp.toProviderUser(), nil
}

func (c *Client) UserInfoWithSession(ctx context.Context, sessionToken string) (*ports.ProviderUser, error) {
	var resp userInfoResponse
	body := map[string]string{"jwtToken": sessionToken, "projectId": c.cfg.AppID}
	if err := c.post(ctx, getUserInfoWithJWTPath, body, &resp); err != nil {
		return nil, err
	}
	return resp.toProviderUser(), nil
}

// LoginURL builds the portal sign-in URL.
func (c *Client) LoginURL(redirectURI, state string) string {
	q := url.Values{}
	q.Set("appId", c.cfg.AppID)
	q.Set("redirectUri", redirectURI)
	q.Set("state", state)
	q.Set("type", "signIn")
	return c.cfg.PortalURL + "/app-auth?" + q.Encode()
}

func (r userInfoResponse) toProviderUser() *ports.ProviderUser {
	method := r.LoginMethod
	if method == "" {
		method = DeriveLoginMethod(r.Platforms, r.Platform)
	}
	return &ports.ProviderUser{
		OpenID:      r.OpenID,
		Name:        r.Name,
		Email:       r.Email,
		LoginMethod: method,
	}
}

// DeriveLoginMethod maps provider platform identifiers to a short login
// method name. fallback wins when set.
func DeriveLoginMethod(platforms []string, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if len(platforms) == 0 {
		return ""
	}

	set := make(map[string]struct{}, len(platforms))
	for _, p := range platforms {
		set[p] = struct{}{}
	}
	has := func(p string) bool { _, ok := set[p]; return ok }

	switch {
	case has("REGISTERED_PLATFORM_EMAIL"):
		return "email"
	case has("REGISTERED_PLATFORM_GOOGLE"):
		return "google"
	case has("REGISTERED_PLATFORM_APPLE"):
		return "apple"
	case has("REGISTERED_PLATFORM_MICROSOFT"), has("REGISTERED_PLATFORM_AZURE"):
		return "microsoft"
	case has("REGISTERED_PLATFORM_GITHUB"):
		return "github"
	}
	return strings.ToLower(platforms[0])
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	if c.cfg.ServerURL == "" {
		return fmt.Errorf("oauth: server URL is not configured")
	}

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("oauth encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ServerURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("oauth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("oauth %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("oauth read: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("oauth %s: status %d", path, resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("oauth decode: %w", err)
	}
	return nil
}
