package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/metrics"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

// Client-facing messages. The numeric codes are part of the frontend contract.
const (
	UnauthenticatedMessage = "Please login (10001)"
	ForbiddenMessage       = "You do not have required permission (10002)"
)

// Authenticator resolves a session token to a user.
type Authenticator interface {
	AuthenticateRequest(ctx context.Context, sessionToken string) (*domain.User, error)
}

// Session resolves the session cookie into a user. A missing or invalid
// cookie leaves the request anonymous; it never fails the request.
func Session(auth Authenticator, cookieName string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				metrics.SessionResolutionsTotal.WithLabelValues("anonymous").Inc()
				return next(c)
			}

			user, err := auth.AuthenticateRequest(c.Request().Context(), cookie.Value)
			if err != nil {
				metrics.SessionResolutionsTotal.WithLabelValues("rejected").Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("session rejected")
				return next(c)
			}

			metrics.SessionResolutionsTotal.WithLabelValues("authenticated").Inc()
			SetUser(c, user)
			return next(c)
		}
	}
}

// RequireUser rejects requests without a verified user.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UserFrom(c); !ok {
				return Unauthenticated()
			}
			return next(c)
		}
	}
}

// Unauthenticated is the error returned for anonymous callers.
func Unauthenticated() error {
	return echo.NewHTTPError(http.StatusUnauthorized, UnauthenticatedMessage).SetInternal(domain.ErrUnauthenticated)
}

// IsAuthError reports whether err is an authentication or authorization
// rejection.
func IsAuthError(err error) bool {
	return errors.Is(err, domain.ErrUnauthenticated) || errors.Is(err, domain.ErrForbidden)
}
