package handler

import (
	"time"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

// --- Shared ---

type idRequest struct {
	ID int64 `json:"id" validate:"required"`
}

// mutationResponse is returned by update, delete and toggle procedures.
// Affected is zero when the row does not exist or belongs to another user.
type mutationResponse struct {
	Success  bool  `json:"success"`
	Affected int64 `json:"affected"`
}

// --- Social media ---

type createSocialMediaRequest struct {
	Platform string  `json:"platform" validate:"required"`
	URL      string  `json:"url" validate:"required,url"`
	Username *string `json:"username,omitempty"`
}

type updateSocialMediaRequest struct {
	ID       int64   `json:"id" validate:"required"`
	Platform string  `json:"platform" validate:"required"`
	URL      string  `json:"url" validate:"required,url"`
	Username *string `json:"username,omitempty"`
}

type socialMediaResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	Username  *string   `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// --- Calendar ---

type createCalendarEventRequest struct {
	Title       string             `json:"title" validate:"required"`
	StartDate   *time.Time         `json:"startDate" validate:"required"`
	Description *string            `json:"description,omitempty"`
	EndDate     *time.Time         `json:"endDate,omitempty"`
	Status      domain.EventStatus `json:"status,omitempty" validate:"omitempty,oneof=planned scheduled completed cancelled"`
}

type updateCalendarEventRequest struct {
	ID          int64               `json:"id" validate:"required"`
	Title       string              `json:"title" validate:"required"`
	StartDate   *time.Time          `json:"startDate" validate:"required"`
	Description *string             `json:"description,omitempty"`
	EndDate     *time.Time          `json:"endDate,omitempty"`
	Status      *domain.EventStatus `json:"status,omitempty" validate:"omitempty,oneof=planned scheduled completed cancelled"`
}

type calendarEventResponse struct {
	ID          int64              `json:"id"`
	UserID      int64              `json:"userId"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	StartDate   time.Time          `json:"startDate"`
	EndDate     *time.Time         `json:"endDate"`
	Status      domain.EventStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// --- Ideas ---

type createContentIdeaRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description *string           `json:"description,omitempty"`
	Category    *string           `json:"category,omitempty"`
	Status      domain.IdeaStatus `json:"status,omitempty" validate:"omitempty,oneof=idea in_progress completed archived"`
	Priority    domain.Priority   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

type updateContentIdeaRequest struct {
	ID          int64              `json:"id" validate:"required"`
	Title       string             `json:"title" validate:"required"`
	Description *string            `json:"description,omitempty"`
	Category    *string            `json:"category,omitempty"`
	Status      *domain.IdeaStatus `json:"status,omitempty" validate:"omitempty,oneof=idea in_progress completed archived"`
	Priority    *domain.Priority   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

type contentIdeaResponse struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"userId"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Category    *string           `json:"category"`
	Status      domain.IdeaStatus `json:"status"`
	Priority    domain.Priority   `json:"priority"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// --- Assets ---

// createAssetRequest accepts the file name as either "filename" or "name".
type createAssetRequest struct {
	Filename string  `json:"filename,omitempty" validate:"required_without=Name"`
	Name     string  `json:"name,omitempty" validate:"required_without=Filename"`
	FileURL  string  `json:"fileUrl" validate:"required,url"`
	FileType *string `json:"fileType,omitempty"`
	FileSize *int64  `json:"fileSize,omitempty" validate:"omitempty,gte=0"`
	Category *string `json:"category,omitempty"`
	Tags     *string `json:"tags,omitempty"`
}

func (r createAssetRequest) displayName() string {
	if r.Filename != "" {
		return r.Filename
	}
	return r.Name
}

type assetResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	FileURL   string    `json:"fileUrl"`
	FileType  *string   `json:"fileType"`
	FileSize  *int64    `json:"fileSize"`
	Category  *string   `json:"category"`
	Tags      *string   `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type uploadResponse struct {
	FileURL  string `json:"fileUrl"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
	Key      string `json:"key"`
}

// --- Tasks ---

type createTaskRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description *string           `json:"description,omitempty"`
	Status      domain.TaskStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	DueDate     *time.Time        `json:"dueDate,omitempty"`
	Priority    domain.Priority   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

type updateTaskRequest struct {
	ID          int64              `json:"id" validate:"required"`
	Title       string             `json:"title" validate:"required"`
	Description *string            `json:"description,omitempty"`
	Status      *domain.TaskStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	DueDate     *time.Time         `json:"dueDate,omitempty"`
	Priority    *domain.Priority   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

type toggleTaskRequest struct {
	ID     int64              `json:"id" validate:"required"`
	Status *domain.TaskStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
}

type taskResponse struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"userId"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Status      domain.TaskStatus `json:"status"`
	DueDate     *time.Time        `json:"dueDate"`
	Priority    domain.Priority   `json:"priority"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// --- API keys ---

// bcrypt only reads the first 72 bytes of a secret.
type createAPIKeyRequest struct {
	Name string `json:"name" validate:"required"`
	Key  string `json:"key" validate:"required,max=72"`
}

type apiKeyResponse struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Name      string     `json:"name"`
	MaskedKey string     `json:"maskedKey"`
	LastUsed  *time.Time `json:"lastUsed"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// --- Templates ---

type createTemplateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	Category    *string `json:"category,omitempty"`
}

type templateResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// --- Lore ---

type createLoreNoteRequest struct {
	Title    string  `json:"title" validate:"required"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

type updateLoreNoteRequest struct {
	ID       int64   `json:"id" validate:"required"`
	Title    string  `json:"title" validate:"required"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

type loreNoteResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// --- Dashboard ---

type dashboardStatsResponse struct {
	SocialMediaCount int `json:"socialMediaCount"`
	EventsCount      int `json:"eventsCount"`
	TasksCompleted   int `json:"tasksCompleted"`
	TasksTotal       int `json:"tasksTotal"`
	IdeasCount       int `json:"ideasCount"`
}

// ErrorResponse is the envelope of every failed call.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
