package ports

import (
	"context"
	"io"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

// AuthService resolves sessions and completes OAuth logins.
type AuthService interface {
	AuthenticateRequest(ctx context.Context, sessionToken string) (*domain.User, error)
	CompleteLogin(ctx context.Context, code, state string) (sessionToken string, err error)
	LoginURL(redirectURI string) string
}

type DashboardService interface {
	Stats(ctx context.Context, userID int64) (domain.DashboardStats, error)
}

type APIKeyService interface {
	List(ctx context.Context, userID int64) []domain.APIKey
	Create(ctx context.Context, userID int64, name, key string) (*domain.APIKey, error)
	Delete(ctx context.Context, id, userID int64) (int64, error)
}

type NotificationService interface {
	// NotifyOwner reports delivery as a boolean. It returns an error only
	// for invalid input or a missing notifier configuration.
	NotifyOwner(ctx context.Context, title, content string) (bool, error)
}

type MigrationService interface {
	RunMigration(ctx context.Context, userID int64) MigrationResult
}

type MigrationResult struct {
	Success bool
	Message string
}

// Notification is the payload handed to a Notifier.
type Notification struct {
	Title   string
	Content string
}

// Notifier delivers owner notifications to an external endpoint.
type Notifier interface {
	Send(ctx context.Context, n Notification) (bool, error)
}

// ObjectStorage persists uploaded asset files.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (url string, err error)
}
