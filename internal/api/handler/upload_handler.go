package handler

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/metrics"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// MaxUploadBytes caps a single asset upload.
const MaxUploadBytes = 25 << 20

// UploadHandler stores asset files in object storage. It does not create
// the asset row; the client follows up with assets.create.
type UploadHandler struct {
	storage ports.ObjectStorage
}

// NewUploadHandler accepts a nil storage; uploads then fail with 503.
func NewUploadHandler(storage ports.ObjectStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload handles POST /api/assets/upload.
//
// @Summary      Upload an asset file
// @Tags         assets
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Asset file (max 25 MiB)"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      413   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /api/assets/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if h.storage == nil {
		return domain.ErrStorageNotConfigured
	}

	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, MaxUploadBytes+(1<<20))
	fh, err := c.FormFile("file")
	if err != nil {
		return invalidInput("file is required")
	}
	if fh.Size > MaxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file must be at most 25 MiB")
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	contentType := fh.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	key := objectKey(user.ID, fh.Filename)

	url, err := h.storage.Upload(c.Request().Context(), key, src, fh.Size, contentType)
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}

	metrics.AssetUploadBytes.Observe(float64(fh.Size))
	return c.JSON(http.StatusOK, uploadResponse{
		FileURL:  url,
		FileType: contentType,
		FileSize: fh.Size,
		Key:      key,
	})
}

// objectKey namespaces uploads per user and keeps only the base name of
// the client supplied file name.
func objectKey(userID int64, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	return fmt.Sprintf("assets/%d/%s-%s", userID, uuid.NewString(), name)
}
