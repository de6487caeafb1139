package postgres

import (
	"context"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

const (
	tableCalendar   = "calendar_events"
	calendarColumns = `id, user_id, title, description, start_date, end_date, status, created_at, updated_at`
)

// ListCalendarEvents orders by start date, latest first.
func (s *Store) ListCalendarEvents(ctx context.Context, userID int64) []domain.CalendarEvent {
	q := `SELECT ` + calendarColumns + ` FROM ` + tableCalendar +
		` WHERE user_id = $1 ORDER BY start_date DESC, id DESC`
	return listOwned(ctx, s, "calendar", q, userID, scanCalendarEvent)
}

func (s *Store) CreateCalendarEvent(ctx context.Context, userID int64, in ports.CalendarEventInput) (*domain.CalendarEvent, error) {
	q := `INSERT INTO ` + tableCalendar + ` (user_id, title, description, start_date, end_date, status)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING ` + calendarColumns
	args := []any{userID, in.Title, in.Description, in.StartDate.UTC(), in.EndDate, string(in.Status.OrDefault())}
	return insertReturning(ctx, s, "calendar", q, args, scanCalendarEvent)
}

func (s *Store) UpdateCalendarEvent(ctx context.Context, id, userID int64, p ports.CalendarEventPatch) (int64, error) {
	var up patch
	setIf(&up, "title", p.Title)
	setIf(&up, "description", p.Description)
	setIf(&up, "start_date", p.StartDate)
	setIf(&up, "end_date", p.EndDate)
	if p.Status != nil {
		up.set("status", string(*p.Status))
	}
	return s.update(ctx, tableCalendar, id, userID, &up)
}

func (s *Store) DeleteCalendarEvent(ctx context.Context, id, userID int64) (int64, error) {
	return s.deleteOwned(ctx, tableCalendar, id, userID)
}

func scanCalendarEvent(r rowScanner) (domain.CalendarEvent, error) {
	var (
		e      domain.CalendarEvent
		status string
	)
	err := r.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &status,
		&e.CreatedAt, &e.UpdatedAt)
	e.Status = domain.EventStatus(status)
	return e, err
}
