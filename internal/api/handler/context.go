package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/middleware"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

// currentUser returns the verified user attached by the Session middleware.
// Procedures behind RequireUser always have one; the check is a fast-fail
// for handlers mounted without the guard.
func currentUser(c echo.Context) (*domain.User, error) {
	u, ok := middleware.UserFrom(c)
	if !ok {
		return nil, middleware.Unauthenticated()
	}
	return u, nil
}

// bindInput decodes a procedure input and validates it. Queries carry the
// input as JSON in the "input" query parameter; mutations carry it in the
// body. Any failure is a 400 raised before the store is touched.
func bindInput(c echo.Context, dst any) error {
	if c.Request().Method == http.MethodGet {
		if raw := c.QueryParam("input"); raw != "" {
			if err := json.Unmarshal([]byte(raw), dst); err != nil {
				return invalidInput("invalid input")
			}
		}
	} else if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return invalidInput("invalid payload")
	}

	if err := c.Validate(dst); err != nil {
		return invalidInput(err.Error())
	}
	return nil
}

func invalidInput(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, msg).
		SetInternal(fmt.Errorf("%w: %s", domain.ErrValidation, msg))
}

// mutated renders the result of an update, delete or toggle.
func mutated(c echo.Context, affected int64, err error) error {
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mutationResponse{Success: true, Affected: affected})
}
