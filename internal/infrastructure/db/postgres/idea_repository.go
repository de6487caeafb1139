package postgres

import (
	"context"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

const (
	tableIdeas  = "content_ideas"
	ideaColumns = `id, user_id, title, description, category, status, priority, created_at, updated_at`
)

func (s *Store) ListContentIdeas(ctx context.Context, userID int64) []domain.ContentIdea {
	q := `SELECT ` + ideaColumns + ` FROM ` + tableIdeas +
		` WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return listOwned(ctx, s, "ideas", q, userID, scanContentIdea)
}

func (s *Store) CreateContentIdea(ctx context.Context, userID int64, in ports.ContentIdeaInput) (*domain.ContentIdea, error) {
	q := `INSERT INTO ` + tableIdeas + ` (user_id, title, description, category, status, priority)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING ` + ideaColumns
	args := []any{userID, in.Title, in.Description, in.Category,
		string(in.Status.OrDefault()), string(in.Priority.OrDefault())}
	return insertReturning(ctx, s, "ideas", q, args, scanContentIdea)
}

func (s *Store) UpdateContentIdea(ctx context.Context, id, userID int64, p ports.ContentIdeaPatch) (int64, error) {
	var up patch
	setIf(&up, "title", p.Title)
	setIf(&up, "description", p.Description)
	setIf(&up, "category", p.Category)
	if p.Status != nil {
		up.set("status", string(*p.Status))
	}
	if p.Priority != nil {
		up.set("priority", string(*p.Priority))
	}
	return s.update(ctx, tableIdeas, id, userID, &up)
}

func (s *Store) DeleteContentIdea(ctx context.Context, id, userID int64) (int64, error) {
	return s.deleteOwned(ctx, tableIdeas, id, userID)
}

func scanContentIdea(r rowScanner) (domain.ContentIdea, error) {
	var (
		i                domain.ContentIdea
		status, priority string
	)
	err := r.Scan(&i.ID, &i.UserID, &i.Title, &i.Description, &i.Category, &status, &priority,
		&i.CreatedAt, &i.UpdatedAt)
	i.Status = domain.IdeaStatus(status)
	i.Priority = domain.Priority(priority)
	return i, err
}
