package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// AssetHandler serves the assets procedures.
type AssetHandler struct {
	repo ports.AssetRepository
}

func NewAssetHandler(repo ports.AssetRepository) *AssetHandler {
	return &AssetHandler{repo: repo}
}

// List handles assets.list.
//
// @Summary      List assets
// @Tags         assets
// @Produce      json
// @Success      200  {array}   assetResponse
// @Router       /api/rpc/assets.list [get]
func (h *AssetHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	assets := h.repo.ListAssets(c.Request().Context(), user.ID)
	return c.JSON(http.StatusOK, mapAll(assets, toAssetResponse))
}

// Create handles assets.create.
//
// @Summary      Register an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        body  body      createAssetRequest  true  "Asset"
// @Success      200   {object}  assetResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/rpc/assets.create [post]
func (h *AssetHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createAssetRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	asset, err := h.repo.CreateAsset(c.Request().Context(), user.ID, toAssetInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAssetResponse(*asset))
}

// Delete handles assets.delete. The stored object is left in place.
//
// @Summary      Delete an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        body  body      idRequest  true  "Asset id"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/assets.delete [post]
func (h *AssetHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.DeleteAsset(c.Request().Context(), req.ID, user.ID)
	return mutated(c, n, err)
}

// TemplateHandler serves the templates procedures.
type TemplateHandler struct {
	repo ports.TemplateRepository
}

func NewTemplateHandler(repo ports.TemplateRepository) *TemplateHandler {
	return &TemplateHandler{repo: repo}
}

// List handles templates.list.
//
// @Summary      List templates
// @Tags         templates
// @Produce      json
// @Success      200  {array}   templateResponse
// @Router       /api/rpc/templates.list [get]
func (h *TemplateHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	templates := h.repo.ListTemplates(c.Request().Context(), user.ID)
	return c.JSON(http.StatusOK, mapAll(templates, toTemplateResponse))
}

// Create handles templates.create.
//
// @Summary      Create a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        body  body      createTemplateRequest  true  "Template"
// @Success      200   {object}  templateResponse
// @Router       /api/rpc/templates.create [post]
func (h *TemplateHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createTemplateRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	tpl, err := h.repo.CreateTemplate(c.Request().Context(), user.ID, toTemplateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTemplateResponse(*tpl))
}

// Delete handles templates.delete.
//
// @Summary      Delete a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        body  body      idRequest  true  "Template id"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/templates.delete [post]
func (h *TemplateHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.DeleteTemplate(c.Request().Context(), req.ID, user.ID)
	return mutated(c, n, err)
}

// LoreHandler serves the lore procedures.
type LoreHandler struct {
	repo ports.LoreRepository
}

func NewLoreHandler(repo ports.LoreRepository) *LoreHandler {
	return &LoreHandler{repo: repo}
}

// List handles lore.list.
//
// @Summary      List lore notes
// @Tags         lore
// @Produce      json
// @Success      200  {array}   loreNoteResponse
// @Router       /api/rpc/lore.list [get]
func (h *LoreHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	notes := h.repo.ListLoreNotes(c.Request().Context(), user.ID)
	return c.JSON(http.StatusOK, mapAll(notes, toLoreNoteResponse))
}

// Create handles lore.create.
//
// @Summary      Create a lore note
// @Tags         lore
// @Accept       json
// @Produce      json
// @Param        body  body      createLoreNoteRequest  true  "Note"
// @Success      200   {object}  loreNoteResponse
// @Router       /api/rpc/lore.create [post]
func (h *LoreHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createLoreNoteRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	note, err := h.repo.CreateLoreNote(c.Request().Context(), user.ID, ports.LoreNoteInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLoreNoteResponse(*note))
}

// Update handles lore.update.
//
// @Summary      Update a lore note
// @Tags         lore
// @Accept       json
// @Produce      json
// @Param        body  body      updateLoreNoteRequest  true  "Note"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/lore.update [post]
func (h *LoreHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req updateLoreNoteRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.UpdateLoreNote(c.Request().Context(), req.ID, user.ID, toLoreNotePatch(req))
	return mutated(c, n, err)
}

// Delete handles lore.delete.
//
// @Summary      Delete a lore note
// @Tags         lore
// @Accept       json
// @Produce      json
// @Param        body  body      idRequest  true  "Note id"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/lore.delete [post]
func (h *LoreHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.DeleteLoreNote(c.Request().Context(), req.ID, user.ID)
	return mutated(c, n, err)
}
