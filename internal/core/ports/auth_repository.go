package ports

import (
	"context"
	"time"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// UpsertUser inserts the user or refreshes its profile columns. An
	// existing role is only ever raised to admin, never lowered.
	UpsertUser(ctx context.Context, in UserUpsert) error
	FindUserByOpenID(ctx context.Context, openID string) (*domain.User, error)
	TouchLastSignedIn(ctx context.Context, openID string, at time.Time) error
}

type UserUpsert struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         domain.Role
	LastSignedIn time.Time
}

// ProviderUser is the profile returned by the identity provider.
type ProviderUser struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
}

// IdentityProvider is the external OAuth server.
type IdentityProvider interface {
	ExchangeCode(ctx context.Context, code, redirectURI string) (accessToken string, err error)
	UserInfo(ctx context.Context, accessToken string) (*ProviderUser, error)
	// UserInfoWithSession resolves a profile from a signed session token.
	UserInfoWithSession(ctx context.Context, sessionToken string) (*ProviderUser, error)
	LoginURL(redirectURI, state string) string
}

// CodeGuard ensures an authorization code completes at most one login.
type CodeGuard interface {
	Claim(ctx context.Context, code string) (bool, error)
}
