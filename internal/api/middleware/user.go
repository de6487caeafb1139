package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

const userKey = "user"

// SetUser attaches the verified user to the request context.
func SetUser(c echo.Context, u *domain.User) {
	c.Set(userKey, u)
}

// UserFrom returns the verified user, if any.
func UserFrom(c echo.Context) (*domain.User, bool) {
	u, ok := c.Get(userKey).(*domain.User)
	return u, ok && u != nil
}
