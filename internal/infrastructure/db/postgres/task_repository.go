package postgres

import (
	"context"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

const (
	tableTasks  = "tasks"
	taskColumns = `id, user_id, title, description, status, due_date, priority, created_at, updated_at`
)

func (s *Store) ListTasks(ctx context.Context, userID int64) []domain.Task {
	q := `SELECT ` + taskColumns + ` FROM ` + tableTasks +
		` WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return listOwned(ctx, s, "tasks", q, userID, scanTask)
}

func (s *Store) CreateTask(ctx context.Context, userID int64, in ports.TaskInput) (*domain.Task, error) {
	q := `INSERT INTO ` + tableTasks + ` (user_id, title, description, status, due_date, priority)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING ` + taskColumns
	args := []any{userID, in.Title, in.Description, string(in.Status.OrDefault()), in.DueDate,
		string(in.Priority.OrDefault())}
	return insertReturning(ctx, s, "tasks", q, args, scanTask)
}

func (s *Store) UpdateTask(ctx context.Context, id, userID int64, p ports.TaskPatch) (int64, error) {
	var up patch
	setIf(&up, "title", p.Title)
	setIf(&up, "description", p.Description)
	setIf(&up, "due_date", p.DueDate)
	if p.Status != nil {
		up.set("status", string(*p.Status))
	}
	if p.Priority != nil {
		up.set("priority", string(*p.Priority))
	}
	return s.update(ctx, tableTasks, id, userID, &up)
}

// ToggleTask flips pending and completed in a single statement so the read
// and write cannot interleave with another toggle.
func (s *Store) ToggleTask(ctx context.Context, id, userID int64, target *domain.TaskStatus) (int64, error) {
	if target != nil {
		return s.UpdateTask(ctx, id, userID, ports.TaskPatch{Status: target})
	}
	q := `UPDATE ` + tableTasks + `
SET status = CASE WHEN status = 'completed' THEN 'pending' ELSE 'completed' END,
    updated_at = NOW()
WHERE id = $1 AND user_id = $2`
	return s.execOwned(ctx, "toggle tasks", q, id, userID)
}

func (s *Store) DeleteTask(ctx context.Context, id, userID int64) (int64, error) {
	return s.deleteOwned(ctx, tableTasks, id, userID)
}

func scanTask(r rowScanner) (domain.Task, error) {
	var (
		t                domain.Task
		status, priority string
	)
	err := r.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &status, &t.DueDate, &priority,
		&t.CreatedAt, &t.UpdatedAt)
	t.Status = domain.TaskStatus(status)
	t.Priority = domain.Priority(priority)
	return t, err
}
