package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/middleware"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

type stubNotifications struct {
	delivered bool
	err       error
	calls     int
}

func (s *stubNotifications) NotifyOwner(context.Context, string, string) (bool, error) {
	s.calls++
	return s.delivered, s.err
}

type stubMigrations struct {
	userID int64
}

func (s *stubMigrations) RunMigration(_ context.Context, userID int64) ports.MigrationResult {
	s.userID = userID
	return ports.MigrationResult{Success: true, Message: "Migration completed successfully"}
}

func TestSystemHandler_Health(t *testing.T) {
	h := NewSystemHandler(&stubNotifications{}, &stubMigrations{})

	for _, input := range []string{`{"timestamp":1700000000000}`, `{"timestamp":0}`, `{"timestamp":1700000000000.5}`} {
		c, rec := newRPCContext(t, http.MethodGet, input, nil)
		require.NoError(t, h.Health(c), input)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	}

	for _, input := range []string{`{"timestamp":-1}`, `{"timestamp":-0.5}`, `{"timestamp":"now"}`} {
		c, _ := newRPCContext(t, http.MethodGet, input, nil)
		requireStatus(t, h.Health(c), http.StatusBadRequest)
	}

	c, _ := newRPCContext(t, http.MethodGet, "", nil)
	requireStatus(t, h.Health(c), http.StatusBadRequest)

	c, _ = newRPCContext(t, http.MethodGet, "", nil)
	requireStatus(t, h.Health(c), http.StatusBadRequest)
}

func TestSystemHandler_NotifyOwner(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		h := NewSystemHandler(&stubNotifications{delivered: true}, &stubMigrations{})
		c, rec := newRPCContext(t, http.MethodPost, `{"title":"Hi","content":"Body"}`, alice)
		require.NoError(t, h.NotifyOwner(c))
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("delivery failure is not an error", func(t *testing.T) {
		h := NewSystemHandler(&stubNotifications{delivered: false}, &stubMigrations{})
		c, rec := newRPCContext(t, http.MethodPost, `{"title":"Hi","content":"Body"}`, alice)
		require.NoError(t, h.NotifyOwner(c))
		assert.JSONEq(t, `{"success":false}`, rec.Body.String())
	})

	t.Run("validation", func(t *testing.T) {
		err := fmt.Errorf("%w: notification title is required", domain.ErrValidation)
		h := NewSystemHandler(&stubNotifications{err: err}, &stubMigrations{})
		c, _ := newRPCContext(t, http.MethodPost, `{"title":" ","content":"Body"}`, alice)
		he := requireStatus(t, h.NotifyOwner(c), http.StatusBadRequest)
		assert.Contains(t, he.Message, "title is required")
	})

	t.Run("not configured", func(t *testing.T) {
		h := NewSystemHandler(&stubNotifications{err: domain.ErrNotifierNotConfigured}, &stubMigrations{})
		c, _ := newRPCContext(t, http.MethodPost, `{"title":"Hi","content":"Body"}`, alice)
		assert.ErrorIs(t, h.NotifyOwner(c), domain.ErrNotifierNotConfigured)
	})
}

func TestSystemHandler_RunMigration(t *testing.T) {
	migrations := &stubMigrations{}
	h := NewSystemHandler(&stubNotifications{}, migrations)

	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	c, rec := newRPCContext(t, http.MethodPost, "", admin)
	require.NoError(t, h.RunMigration(c))

	assert.Equal(t, int64(1), migrations.userID)
	assert.JSONEq(t, `{"success":true,"message":"Migration completed successfully"}`, rec.Body.String())
}

type stubObjectStorage struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (s *stubObjectStorage) Upload(_ context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.key = key
	s.contentType = contentType
	s.body, _ = io.ReadAll(r)
	return "https://cdn.example/vexel/" + key, nil
}

func newUploadContext(t *testing.T, filename string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/assets/upload", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	middleware.SetUser(c, alice)
	return c, rec
}

func TestUploadHandler_Upload(t *testing.T) {
	storage := &stubObjectStorage{}
	h := NewUploadHandler(storage)

	c, rec := newUploadContext(t, "../cover art.png", []byte("png-bytes"))
	require.NoError(t, h.Upload(c))

	assert.True(t, strings.HasPrefix(storage.key, "assets/42/"), storage.key)
	assert.True(t, strings.HasSuffix(storage.key, "-cover art.png"), storage.key)
	assert.Equal(t, "png-bytes", string(storage.body))
	assert.Equal(t, echo.MIMEOctetStream, storage.contentType)
	assert.Contains(t, rec.Body.String(), `"fileSize":9`)
	assert.Contains(t, rec.Body.String(), `"key":"`+storage.key+`"`)
}

func TestUploadHandler_MissingFile(t *testing.T) {
	h := NewUploadHandler(&stubObjectStorage{})
	c, _ := newUploadContext(t, "", nil)
	requireStatus(t, h.Upload(c), http.StatusBadRequest)
}

func TestUploadHandler_NotConfigured(t *testing.T) {
	h := NewUploadHandler(nil)
	c, _ := newUploadContext(t, "a.txt", []byte("x"))
	assert.ErrorIs(t, h.Upload(c), domain.ErrStorageNotConfigured)
}

func TestUploadHandler_StorageFailure(t *testing.T) {
	h := NewUploadHandler(&stubObjectStorage{err: errors.New("bucket gone")})
	c, _ := newUploadContext(t, "a.txt", []byte("x"))
	assert.Error(t, h.Upload(c))
}
