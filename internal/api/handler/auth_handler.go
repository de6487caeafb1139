package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/metrics"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/middleware"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

const callbackPath = "/api/oauth/callback"

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	MaxAge time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

type userResponse struct {
	ID           int64       `json:"id"`
	OpenID       string      `json:"openId"`
	Name         *string     `json:"name"`
	Email        *string     `json:"email"`
	LoginMethod  *string     `json:"loginMethod"`
	Role         domain.Role `json:"role"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	LastSignedIn time.Time   `json:"lastSignedIn"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Me handles auth.me. Anonymous callers receive null.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Router       /api/rpc/auth.me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, _ := middleware.UserFrom(c)
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout handles auth.logout by expiring the session cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /api/rpc/auth.logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie := h.sessionCookie(c, "")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	c.SetCookie(cookie)
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Login redirects the browser to the identity portal.
//
// @Summary      Start OAuth login
// @Tags         auth
// @Success      302
// @Router       /api/oauth/login [get]
func (h *AuthHandler) Login(c echo.Context) error {
	redirectURI := c.Scheme() + "://" + c.Request().Host + callbackPath
	return c.Redirect(http.StatusFound, h.authService.LoginURL(redirectURI))
}

// Callback completes the OAuth flow, sets the session cookie and sends the
// browser home.
//
// @Summary      OAuth callback
// @Tags         auth
// @Param        code   query  string  true  "Authorization code"
// @Param        state  query  string  true  "Opaque state from the login redirect"
// @Success      302
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/oauth/callback [get]
func (h *AuthHandler) Callback(c echo.Context) error {
	token, err := h.authService.CompleteLogin(c.Request().Context(), c.QueryParam("code"), c.QueryParam("state"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			metrics.OAuthCallbacksTotal.WithLabelValues("invalid").Inc()
			return echo.NewHTTPError(http.StatusBadRequest, "code and state are required").SetInternal(err)
		case errors.Is(err, domain.ErrMissingOpenID):
			metrics.OAuthCallbacksTotal.WithLabelValues("invalid").Inc()
			return echo.NewHTTPError(http.StatusBadRequest, "openId missing from user info").SetInternal(err)
		case errors.Is(err, domain.ErrCodeAlreadyUsed):
			metrics.OAuthCallbacksTotal.WithLabelValues("replayed").Inc()
			return echo.NewHTTPError(http.StatusBadRequest, "authorization code already used").SetInternal(err)
		}
		metrics.OAuthCallbacksTotal.WithLabelValues("failed").Inc()
		return echo.NewHTTPError(http.StatusInternalServerError, "OAuth callback failed").SetInternal(err)
	}

	metrics.OAuthCallbacksTotal.WithLabelValues("success").Inc()
	c.SetCookie(h.sessionCookie(c, token))
	return c.Redirect(http.StatusFound, "/")
}

// sessionCookie is Secure with SameSite=None behind HTTPS and Lax
// otherwise, so local development over plain HTTP still works.
func (h *AuthHandler) sessionCookie(c echo.Context, value string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.cookie.MaxAge / time.Second),
		SameSite: http.SameSiteLaxMode,
	}
	if c.Scheme() == "https" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
