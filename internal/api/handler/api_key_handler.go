package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// APIKeyHandler serves the apiKeys procedures. Keys are hashed by the
// service and only ever returned masked.
type APIKeyHandler struct {
	service ports.APIKeyService
}

func NewAPIKeyHandler(service ports.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{service: service}
}

// List handles apiKeys.list.
//
// @Summary      List API keys
// @Tags         apiKeys
// @Produce      json
// @Success      200  {array}   apiKeyResponse
// @Router       /api/rpc/apiKeys.list [get]
func (h *APIKeyHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	keys := h.service.List(c.Request().Context(), user.ID)
	return c.JSON(http.StatusOK, mapAll(keys, toAPIKeyResponse))
}

// Create handles apiKeys.create.
//
// @Summary      Store an API key
// @Tags         apiKeys
// @Accept       json
// @Produce      json
// @Param        body  body      createAPIKeyRequest  true  "Key"
// @Success      200   {object}  apiKeyResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/rpc/apiKeys.create [post]
func (h *APIKeyHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createAPIKeyRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}
	if len(req.Key) > 72 {
		return invalidInput("key must be at most 72 bytes")
	}

	key, err := h.service.Create(c.Request().Context(), user.ID, req.Name, req.Key)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAPIKeyResponse(*key))
}

// Delete handles apiKeys.delete.
//
// @Summary      Delete an API key
// @Tags         apiKeys
// @Accept       json
// @Produce      json
// @Param        body  body      idRequest  true  "Key id"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/apiKeys.delete [post]
func (h *APIKeyHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.service.Delete(c.Request().Context(), req.ID, user.ID)
	return mutated(c, n, err)
}
