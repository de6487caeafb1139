package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// SocialMediaHandler serves the socialMedia procedures.
type SocialMediaHandler struct {
	repo ports.SocialMediaRepository
}

func NewSocialMediaHandler(repo ports.SocialMediaRepository) *SocialMediaHandler {
	return &SocialMediaHandler{repo: repo}
}

// List handles socialMedia.list.
//
// @Summary      List social media links
// @Tags         socialMedia
// @Produce      json
// @Success      200  {array}   socialMediaResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /api/rpc/socialMedia.list [get]
func (h *SocialMediaHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	links := h.repo.ListSocialMedia(c.Request().Context(), user.ID)
	return c.JSON(http.StatusOK, mapAll(links, toSocialMediaResponse))
}

// Create handles socialMedia.create.
//
// @Summary      Create a social media link
// @Tags         socialMedia
// @Accept       json
// @Produce      json
// @Param        body  body      createSocialMediaRequest  true  "Link"
// @Success      200   {object}  socialMediaResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /api/rpc/socialMedia.create [post]
func (h *SocialMediaHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createSocialMediaRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	link, err := h.repo.CreateSocialMedia(c.Request().Context(), user.ID, ports.SocialMediaInput{
		Platform: req.Platform,
		URL:      req.URL,
		Username: req.Username,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSocialMediaResponse(*link))
}

// Update handles socialMedia.update.
//
// @Summary      Update a social media link
// @Tags         socialMedia
// @Accept       json
// @Produce      json
// @Param        body  body      updateSocialMediaRequest  true  "Link"
// @Success      200   {object}  mutationResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /api/rpc/socialMedia.update [post]
func (h *SocialMediaHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req updateSocialMediaRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.UpdateSocialMedia(c.Request().Context(), req.ID, user.ID, toSocialMediaPatch(req))
	return mutated(c, n, err)
}

// Delete handles socialMedia.delete.
//
// @Summary      Delete a social media link
// @Tags         socialMedia
// @Accept       json
// @Produce      json
// @Param        body  body      idRequest  true  "Link id"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/socialMedia.delete [post]
func (h *SocialMediaHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.DeleteSocialMedia(c.Request().Context(), req.ID, user.ID)
	return mutated(c, n, err)
}
