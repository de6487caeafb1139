package ports

import (
	"context"
	"time"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

// Every repository below scopes its reads and writes to userID. List
// methods never fail: an unreachable store yields an empty slice.
// Update and delete methods return the number of affected rows; zero means
// the id does not exist or belongs to another user.

type SocialMediaRepository interface {
	ListSocialMedia(ctx context.Context, userID int64) []domain.SocialMediaLink
	CreateSocialMedia(ctx context.Context, userID int64, in SocialMediaInput) (*domain.SocialMediaLink, error)
	UpdateSocialMedia(ctx context.Context, id, userID int64, p SocialMediaPatch) (int64, error)
	DeleteSocialMedia(ctx context.Context, id, userID int64) (int64, error)
}

type CalendarRepository interface {
	ListCalendarEvents(ctx context.Context, userID int64) []domain.CalendarEvent
	CreateCalendarEvent(ctx context.Context, userID int64, in CalendarEventInput) (*domain.CalendarEvent, error)
	UpdateCalendarEvent(ctx context.Context, id, userID int64, p CalendarEventPatch) (int64, error)
	DeleteCalendarEvent(ctx context.Context, id, userID int64) (int64, error)
}

type IdeaRepository interface {
	ListContentIdeas(ctx context.Context, userID int64) []domain.ContentIdea
	CreateContentIdea(ctx context.Context, userID int64, in ContentIdeaInput) (*domain.ContentIdea, error)
	UpdateContentIdea(ctx context.Context, id, userID int64, p ContentIdeaPatch) (int64, error)
	DeleteContentIdea(ctx context.Context, id, userID int64) (int64, error)
}

type AssetRepository interface {
	ListAssets(ctx context.Context, userID int64) []domain.Asset
	CreateAsset(ctx context.Context, userID int64, in AssetInput) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, id, userID int64) (int64, error)
}

type TaskRepository interface {
	ListTasks(ctx context.Context, userID int64) []domain.Task
	CreateTask(ctx context.Context, userID int64, in TaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id, userID int64, p TaskPatch) (int64, error)
	// ToggleTask sets status to target when given, otherwise flips
	// between pending and completed.
	ToggleTask(ctx context.Context, id, userID int64, target *domain.TaskStatus) (int64, error)
	DeleteTask(ctx context.Context, id, userID int64) (int64, error)
}

type APIKeyRepository interface {
	ListAPIKeys(ctx context.Context, userID int64) []domain.APIKey
	CreateAPIKey(ctx context.Context, userID int64, in APIKeyInput) (*domain.APIKey, error)
	DeleteAPIKey(ctx context.Context, id, userID int64) (int64, error)
}

type TemplateRepository interface {
	ListTemplates(ctx context.Context, userID int64) []domain.Template
	CreateTemplate(ctx context.Context, userID int64, in TemplateInput) (*domain.Template, error)
	DeleteTemplate(ctx context.Context, id, userID int64) (int64, error)
}

type LoreRepository interface {
	ListLoreNotes(ctx context.Context, userID int64) []domain.LoreNote
	CreateLoreNote(ctx context.Context, userID int64, in LoreNoteInput) (*domain.LoreNote, error)
	UpdateLoreNote(ctx context.Context, id, userID int64, p LoreNotePatch) (int64, error)
	DeleteLoreNote(ctx context.Context, id, userID int64) (int64, error)
}

// SeedRepository upserts fixed rows keyed by a stable seed key.
type SeedRepository interface {
	UpsertSeedSocialMedia(ctx context.Context, userID int64, seed SocialMediaSeed) error
}

// ContentStore is the full per-user entity store.
type ContentStore interface {
	SocialMediaRepository
	CalendarRepository
	IdeaRepository
	AssetRepository
	TaskRepository
	APIKeyRepository
	TemplateRepository
	LoreRepository
}

// DashboardSource is the subset of the store read by the dashboard.
type DashboardSource interface {
	ListSocialMedia(ctx context.Context, userID int64) []domain.SocialMediaLink
	ListCalendarEvents(ctx context.Context, userID int64) []domain.CalendarEvent
	ListContentIdeas(ctx context.Context, userID int64) []domain.ContentIdea
	ListTasks(ctx context.Context, userID int64) []domain.Task
}

type SocialMediaInput struct {
	Platform string
	URL      string
	Username *string
}

// Patch types: a nil field is left untouched.
type SocialMediaPatch struct {
	Platform *string
	URL      *string
	Username *string
}

type SocialMediaSeed struct {
	Key      string
	Platform string
	URL      string
	Username string
}

type CalendarEventInput struct {
	Title       string
	Description *string
	StartDate   time.Time
	EndDate     *time.Time
	Status      domain.EventStatus
}

type CalendarEventPatch struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *domain.EventStatus
}

type ContentIdeaInput struct {
	Title       string
	Description *string
	Category    *string
	Status      domain.IdeaStatus
	Priority    domain.Priority
}

type ContentIdeaPatch struct {
	Title       *string
	Description *string
	Category    *string
	Status      *domain.IdeaStatus
	Priority    *domain.Priority
}

type AssetInput struct {
	Name     string
	FileURL  string
	FileType *string
	FileSize *int64
	Category *string
	Tags     *string
}

type TaskInput struct {
	Title       string
	Description *string
	Status      domain.TaskStatus
	DueDate     *time.Time
	Priority    domain.Priority
}

type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	DueDate     *time.Time
	Priority    *domain.Priority
}

// APIKeyInput carries an already hashed key.
type APIKeyInput struct {
	Name      string
	KeyHash   string
	KeySuffix string
}

type TemplateInput struct {
	Name        string
	Description *string
	Content     *string
	Category    *string
}

type LoreNoteInput struct {
	Title    string
	Content  *string
	Category *string
}

type LoreNotePatch struct {
	Title    *string
	Content  *string
	Category *string
}
