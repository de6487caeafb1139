package domain

import "time"

// EventStatus represents the planning state of a calendar event.
type EventStatus string

const (
	EventPlanned   EventStatus = "planned"
	EventScheduled EventStatus = "scheduled"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// OrDefault returns s, or EventPlanned when s is empty.
func (s EventStatus) OrDefault() EventStatus {
	if s == "" {
		return EventPlanned
	}
	return s
}

// IdeaStatus represents the progress of a content idea.
type IdeaStatus string

const (
	IdeaNew        IdeaStatus = "idea"
	IdeaInProgress IdeaStatus = "in_progress"
	IdeaCompleted  IdeaStatus = "completed"
	IdeaArchived   IdeaStatus = "archived"
)

func (s IdeaStatus) OrDefault() IdeaStatus {
	if s == "" {
		return IdeaNew
	}
	return s
}

// TaskStatus represents the progress of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

func (s TaskStatus) OrDefault() TaskStatus {
	if s == "" {
		return TaskPending
	}
	return s
}

// Priority is shared by ideas and tasks.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) OrDefault() Priority {
	if p == "" {
		return PriorityMedium
	}
	return p
}

// Owned carries the columns common to every per-user resource.
type Owned struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SocialMediaLink is one external profile of a user.
type SocialMediaLink struct {
	Owned
	Platform string
	URL      string
	Username *string
}

type CalendarEvent struct {
	Owned
	Title       string
	Description *string
	StartDate   time.Time
	EndDate     *time.Time
	Status      EventStatus
}

type ContentIdea struct {
	Owned
	Title       string
	Description *string
	Category    *string
	Status      IdeaStatus
	Priority    Priority
}

// Asset references an uploaded media file. Tags is free text.
type Asset struct {
	Owned
	Name     string
	FileURL  string
	FileType *string
	FileSize *int64
	Category *string
	Tags     *string
}

type Task struct {
	Owned
	Title       string
	Description *string
	Status      TaskStatus
	DueDate     *time.Time
	Priority    Priority
}

// APIKey stores a bcrypt hash of a third-party key. Only KeySuffix is ever
// shown back to the owner.
type APIKey struct {
	Owned
	Name      string
	KeyHash   string
	KeySuffix string
	LastUsed  *time.Time
	IsActive  bool
}

// MaskedKey renders the key as shown to its owner.
func (k APIKey) MaskedKey() string {
	return "••••••••" + k.KeySuffix
}

type Template struct {
	Owned
	Name        string
	Description *string
	Content     *string
	Category    *string
}

type LoreNote struct {
	Owned
	Title    string
	Content  *string
	Category *string
}

// DashboardStats is the derived summary shown on the landing screen.
type DashboardStats struct {
	SocialMediaCount int
	EventsCount      int
	TasksCompleted   int
	TasksTotal       int
	IdeasCount       int
}
