package handler

import (
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// --- Request → store input ---

func toSocialMediaPatch(r updateSocialMediaRequest) ports.SocialMediaPatch {
	return ports.SocialMediaPatch{
		Platform: &r.Platform,
		URL:      &r.URL,
		Username: r.Username,
	}
}

func toCalendarEventInput(r createCalendarEventRequest) ports.CalendarEventInput {
	return ports.CalendarEventInput{
		Title:       r.Title,
		Description: r.Description,
		StartDate:   r.StartDate.UTC(),
		EndDate:     r.EndDate,
		Status:      r.Status.OrDefault(),
	}
}

func toCalendarEventPatch(r updateCalendarEventRequest) ports.CalendarEventPatch {
	return ports.CalendarEventPatch{
		Title:       &r.Title,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      r.Status,
	}
}

func toContentIdeaInput(r createContentIdeaRequest) ports.ContentIdeaInput {
	return ports.ContentIdeaInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status.OrDefault(),
		Priority:    r.Priority.OrDefault(),
	}
}

func toContentIdeaPatch(r updateContentIdeaRequest) ports.ContentIdeaPatch {
	return ports.ContentIdeaPatch{
		Title:       &r.Title,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status,
		Priority:    r.Priority,
	}
}

func toAssetInput(r createAssetRequest) ports.AssetInput {
	return ports.AssetInput{
		Name:     r.displayName(),
		FileURL:  r.FileURL,
		FileType: r.FileType,
		FileSize: r.FileSize,
		Category: r.Category,
		Tags:     r.Tags,
	}
}

func toTaskInput(r createTaskRequest) ports.TaskInput {
	return ports.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status.OrDefault(),
		DueDate:     r.DueDate,
		Priority:    r.Priority.OrDefault(),
	}
}

func toTaskPatch(r updateTaskRequest) ports.TaskPatch {
	return ports.TaskPatch{
		Title:       &r.Title,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
	}
}

func toTemplateInput(r createTemplateRequest) ports.TemplateInput {
	return ports.TemplateInput{
		Name:        r.Name,
		Description: r.Description,
		Content:     r.Content,
		Category:    r.Category,
	}
}

func toLoreNotePatch(r updateLoreNoteRequest) ports.LoreNotePatch {
	return ports.LoreNotePatch{
		Title:    &r.Title,
		Content:  r.Content,
		Category: r.Category,
	}
}

// --- Domain → HTTP response ---

// mapAll never returns nil so empty lists encode as [].
func mapAll[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

func toSocialMediaResponse(l domain.SocialMediaLink) socialMediaResponse {
	return socialMediaResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		Platform:  l.Platform,
		URL:       l.URL,
		Username:  l.Username,
		CreatedAt: l.CreatedAt.UTC(),
		UpdatedAt: l.UpdatedAt.UTC(),
	}
}

func toCalendarEventResponse(e domain.CalendarEvent) calendarEventResponse {
	return calendarEventResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate.UTC(),
		EndDate:     e.EndDate,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt.UTC(),
		UpdatedAt:   e.UpdatedAt.UTC(),
	}
}

func toContentIdeaResponse(i domain.ContentIdea) contentIdeaResponse {
	return contentIdeaResponse{
		ID:          i.ID,
		UserID:      i.UserID,
		Title:       i.Title,
		Description: i.Description,
		Category:    i.Category,
		Status:      i.Status,
		Priority:    i.Priority,
		CreatedAt:   i.CreatedAt.UTC(),
		UpdatedAt:   i.UpdatedAt.UTC(),
	}
}

func toAssetResponse(a domain.Asset) assetResponse {
	return assetResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name,
		FileURL:   a.FileURL,
		FileType:  a.FileType,
		FileSize:  a.FileSize,
		Category:  a.Category,
		Tags:      a.Tags,
		CreatedAt: a.CreatedAt.UTC(),
		UpdatedAt: a.UpdatedAt.UTC(),
	}
}

func toTaskResponse(t domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

// toAPIKeyResponse never exposes the hash.
func toAPIKeyResponse(k domain.APIKey) apiKeyResponse {
	return apiKeyResponse{
		ID:        k.ID,
		UserID:    k.UserID,
		Name:      k.Name,
		MaskedKey: k.MaskedKey(),
		LastUsed:  k.LastUsed,
		IsActive:  k.IsActive,
		CreatedAt: k.CreatedAt.UTC(),
		UpdatedAt: k.UpdatedAt.UTC(),
	}
}

func toTemplateResponse(t domain.Template) templateResponse {
	return templateResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Name:        t.Name,
		Description: t.Description,
		Content:     t.Content,
		Category:    t.Category,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

func toLoreNoteResponse(n domain.LoreNote) loreNoteResponse {
	return loreNoteResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		Category:  n.Category,
		CreatedAt: n.CreatedAt.UTC(),
		UpdatedAt: n.UpdatedAt.UTC(),
	}
}

func toDashboardStatsResponse(s domain.DashboardStats) dashboardStatsResponse {
	return dashboardStatsResponse(s)
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:           u.ID,
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
		LastSignedIn: u.LastSignedIn.UTC(),
	}
}
