package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// AuthService resolves session tokens to users and completes OAuth logins.
type AuthService struct {
	users       ports.UserRepository
	sessions    *SessionManager
	idp         ports.IdentityProvider
	guard       ports.CodeGuard
	ownerOpenID string
	log         zerolog.Logger
	now         func() time.Time
}

// NewAuthService wires the service. guard may be nil, in which case
// authorization codes are not checked for replay.
func NewAuthService(
	users ports.UserRepository,
	sessions *SessionManager,
	idp ports.IdentityProvider,
	guard ports.CodeGuard,
	ownerOpenID string,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		sessions:    sessions,
		idp:         idp,
		guard:       guard,
		ownerOpenID: ownerOpenID,
		log:         log,
		now:         time.Now,
	}
}

// AuthenticateRequest verifies the token, provisions the user on first sight
// and refreshes lastSignedIn. Every failure is reported as
// domain.ErrUnauthenticated so callers treat the request as anonymous.
func (s *AuthService) AuthenticateRequest(ctx context.Context, sessionToken string) (*domain.User, error) {
	session, err := s.sessions.Verify(sessionToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	signedInAt := s.now().UTC()

	user, err := s.users.FindUserByOpenID(ctx, session.OpenID)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		user, err = s.provisionFromSession(ctx, sessionToken, signedInAt)
		if err != nil {
			s.log.Error().Err(err).Str("open_id", session.OpenID).Msg("user provisioning failed")
			return nil, fmt.Errorf("%w: provisioning failed", domain.ErrUnauthenticated)
		}
	case err != nil:
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	if err := s.users.TouchLastSignedIn(ctx, user.OpenID, signedInAt); err != nil {
		s.log.Warn().Err(err).Str("open_id", user.OpenID).Msg("refresh lastSignedIn failed")
	} else {
		user.LastSignedIn = signedInAt
	}
	return user, nil
}

func (s *AuthService) provisionFromSession(ctx context.Context, sessionToken string, at time.Time) (*domain.User, error) {
	info, err := s.idp.UserInfoWithSession(ctx, sessionToken)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	if info.OpenID == "" {
		return nil, domain.ErrMissingOpenID
	}
	if err := s.provision(ctx, info, at); err != nil {
		return nil, err
	}
	return s.users.FindUserByOpenID(ctx, info.OpenID)
}

// provision upserts the profile. The owner policy is applied here and only
// here.
func (s *AuthService) provision(ctx context.Context, info *ports.ProviderUser, at time.Time) error {
	err := s.users.UpsertUser(ctx, ports.UserUpsert{
		OpenID:       info.OpenID,
		Name:         nonEmpty(info.Name),
		Email:        nonEmpty(info.Email),
		LoginMethod:  nonEmpty(info.LoginMethod),
		Role:         domain.RoleFor(info.OpenID, s.ownerOpenID),
		LastSignedIn: at,
	})
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// CompleteLogin exchanges an authorization code for a profile, upserts the
// user and returns a new session token.
func (s *AuthService) CompleteLogin(ctx context.Context, code, state string) (string, error) {
	if code == "" || state == "" {
		return "", fmt.Errorf("%w: code and state are required", domain.ErrValidation)
	}

	redirectURI, err := decodeState(state)
	if err != nil {
		return "", fmt.Errorf("%w: malformed state", domain.ErrValidation)
	}

	if s.guard != nil {
		first, err := s.guard.Claim(ctx, code)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("oauth code guard unavailable, continuing")
		case !first:
			return "", domain.ErrCodeAlreadyUsed
		}
	}

	accessToken, err := s.idp.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}

	info, err := s.idp.UserInfo(ctx, accessToken)
	if err != nil {
		return "", fmt.Errorf("user info: %w", err)
	}
	if info.OpenID == "" {
		return "", domain.ErrMissingOpenID
	}

	if err := s.provision(ctx, info, s.now().UTC()); err != nil {
		return "", err
	}

	return s.sessions.Issue(info.OpenID, sessionName(info))
}

// LoginURL returns the identity portal URL that redirects back to
// redirectURI.
func (s *AuthService) LoginURL(redirectURI string) string {
	return s.idp.LoginURL(redirectURI, encodeState(redirectURI))
}

func encodeState(redirectURI string) string {
	return base64.StdEncoding.EncodeToString([]byte(redirectURI))
}

func decodeState(state string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(state)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("empty state")
	}
	return string(b), nil
}

// sessionName falls back through the profile so that the issued token
// always carries a non-empty name.
func sessionName(info *ports.ProviderUser) string {
	switch {
	case info.Name != "":
		return info.Name
	case info.Email != "":
		return info.Email
	default:
		return info.OpenID
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
