package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// IdeaHandler serves the ideas procedures.
type IdeaHandler struct {
	repo ports.IdeaRepository
}

func NewIdeaHandler(repo ports.IdeaRepository) *IdeaHandler {
	return &IdeaHandler{repo: repo}
}

// List handles ideas.list.
//
// @Summary      List content ideas
// @Tags         ideas
// @Produce      json
// @Success      200  {array}   contentIdeaResponse
// @Router       /api/rpc/ideas.list [get]
func (h *IdeaHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	ideas := h.repo.ListContentIdeas(c.Request().Context(), user.ID)
	return c.JSON(http.StatusOK, mapAll(ideas, toContentIdeaResponse))
}

// Create handles ideas.create.
//
// @Summary      Create a content idea
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        body  body      createContentIdeaRequest  true  "Idea"
// @Success      200   {object}  contentIdeaResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/rpc/ideas.create [post]
func (h *IdeaHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createContentIdeaRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	idea, err := h.repo.CreateContentIdea(c.Request().Context(), user.ID, toContentIdeaInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContentIdeaResponse(*idea))
}

// Update handles ideas.update.
//
// @Summary      Update a content idea
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        body  body      updateContentIdeaRequest  true  "Idea"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/ideas.update [post]
func (h *IdeaHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req updateContentIdeaRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.UpdateContentIdea(c.Request().Context(), req.ID, user.ID, toContentIdeaPatch(req))
	return mutated(c, n, err)
}

// Delete handles ideas.delete.
//
// @Summary      Delete a content idea
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        body  body      idRequest  true  "Idea id"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/ideas.delete [post]
func (h *IdeaHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.DeleteContentIdea(c.Request().Context(), req.ID, user.ID)
	return mutated(c, n, err)
}
