package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

// DefaultSessionTTL is the validity of a freshly issued session token.
const DefaultSessionTTL = 365 * 24 * time.Hour

type sessionClaims struct {
	OpenID string `json:"openId"`
	AppID  string `json:"appId"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies HS256 session tokens.
type SessionManager struct {
	secret []byte
	appID  string
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionManager(secret, appID string, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{secret: []byte(secret), appID: appID, ttl: ttl, now: time.Now}
}

// Issue signs a token for openID. All claims must be non-empty, otherwise the
// token could never verify.
func (m *SessionManager) Issue(openID, name string) (string, error) {
	if openID == "" || name == "" || m.appID == "" {
		return "", fmt.Errorf("issue session: %w", domain.ErrInvalidSession)
	}

	now := m.now()
	claims := sessionClaims{
		OpenID: openID,
		AppID:  m.appID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify fails closed: a missing, malformed, foreign, expired or incomplete
// token yields domain.ErrInvalidSession.
func (m *SessionManager) Verify(token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSession, err)
	}

	if claims.OpenID == "" || claims.AppID == "" || claims.Name == "" {
		return nil, fmt.Errorf("%w: missing required claims", domain.ErrInvalidSession)
	}

	return &domain.Session{OpenID: claims.OpenID, AppID: claims.AppID, Name: claims.Name}, nil
}
