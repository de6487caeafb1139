package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/metrics"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// SystemHandler serves the system procedures. Everything except health is
// admin-only; the gate lives in the procedure registry.
type SystemHandler struct {
	notifications ports.NotificationService
	migrations    ports.MigrationService
}

func NewSystemHandler(notifications ports.NotificationService, migrations ports.MigrationService) *SystemHandler {
	return &SystemHandler{notifications: notifications, migrations: migrations}
}

type healthRequest struct {
	Timestamp *float64 `json:"timestamp" validate:"required,gte=0"`
}

type healthResponse struct {
	OK bool `json:"ok"`
}

// Length limits are checked by the notification service after trimming.
type notifyOwnerRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type migrationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Health handles system.health.
//
// @Summary      RPC health check
// @Tags         system
// @Produce      json
// @Param        input  query     string  true  "JSON input, e.g. {\"timestamp\":0}"
// @Success      200    {object}  healthResponse
// @Failure      400    {object}  ErrorResponse
// @Router       /api/rpc/system.health [get]
func (h *SystemHandler) Health(c echo.Context) error {
	var req healthRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, healthResponse{OK: true})
}

// NotifyOwner handles system.notifyOwner. A delivery failure is reported
// as success=false, not as an error.
//
// @Summary      Notify the project owner
// @Tags         system
// @Accept       json
// @Produce      json
// @Param        body  body      notifyOwnerRequest  true  "Notification"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/rpc/system.notifyOwner [post]
func (h *SystemHandler) NotifyOwner(c echo.Context) error {
	var req notifyOwnerRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	delivered, err := h.notifications.NotifyOwner(c.Request().Context(), req.Title, req.Content)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("rejected").Inc()
		if errors.Is(err, domain.ErrValidation) {
			return invalidInput(err.Error())
		}
		return err
	}

	if delivered {
		metrics.NotificationsTotal.WithLabelValues("delivered").Inc()
	} else {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
	}
	return c.JSON(http.StatusOK, successResponse{Success: delivered})
}

// RunMigration handles system.runMigration.
//
// @Summary      Seed default data
// @Tags         system
// @Produce      json
// @Success      200  {object}  migrationResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/rpc/system.runMigration [post]
func (h *SystemHandler) RunMigration(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	res := h.migrations.RunMigration(c.Request().Context(), user.ID)
	return c.JSON(http.StatusOK, migrationResponse{Success: res.Success, Message: res.Message})
}
