package postgres

import (
	"context"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// Assets, templates and lore notes: the reference material of a user.

const (
	tableAssets    = "assets"
	tableTemplates = "templates"
	tableLore      = "lore_notes"

	assetColumns    = `id, user_id, name, file_url, file_type, file_size, category, tags, created_at, updated_at`
	templateColumns = `id, user_id, name, description, content, category, created_at, updated_at`
	loreColumns     = `id, user_id, title, content, category, created_at, updated_at`
)

func (s *Store) ListAssets(ctx context.Context, userID int64) []domain.Asset {
	q := `SELECT ` + assetColumns + ` FROM ` + tableAssets +
		` WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return listOwned(ctx, s, "assets", q, userID, scanAsset)
}

func (s *Store) CreateAsset(ctx context.Context, userID int64, in ports.AssetInput) (*domain.Asset, error) {
	q := `INSERT INTO ` + tableAssets + ` (user_id, name, file_url, file_type, file_size, category, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING ` + assetColumns
	args := []any{userID, in.Name, in.FileURL, in.FileType, in.FileSize, in.Category, in.Tags}
	return insertReturning(ctx, s, "assets", q, args, scanAsset)
}

func (s *Store) DeleteAsset(ctx context.Context, id, userID int64) (int64, error) {
	return s.deleteOwned(ctx, tableAssets, id, userID)
}

func (s *Store) ListTemplates(ctx context.Context, userID int64) []domain.Template {
	q := `SELECT ` + templateColumns + ` FROM ` + tableTemplates +
		` WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return listOwned(ctx, s, "templates", q, userID, scanTemplate)
}

func (s *Store) CreateTemplate(ctx context.Context, userID int64, in ports.TemplateInput) (*domain.Template, error) {
	q := `INSERT INTO ` + tableTemplates + ` (user_id, name, description, content, category)
VALUES ($1, $2, $3, $4, $5) RETURNING ` + templateColumns
	args := []any{userID, in.Name, in.Description, in.Content, in.Category}
	return insertReturning(ctx, s, "templates", q, args, scanTemplate)
}

func (s *Store) DeleteTemplate(ctx context.Context, id, userID int64) (int64, error) {
	return s.deleteOwned(ctx, tableTemplates, id, userID)
}

func (s *Store) ListLoreNotes(ctx context.Context, userID int64) []domain.LoreNote {
	q := `SELECT ` + loreColumns + ` FROM ` + tableLore +
		` WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return listOwned(ctx, s, "lore", q, userID, scanLoreNote)
}

func (s *Store) CreateLoreNote(ctx context.Context, userID int64, in ports.LoreNoteInput) (*domain.LoreNote, error) {
	q := `INSERT INTO ` + tableLore + ` (user_id, title, content, category)
VALUES ($1, $2, $3, $4) RETURNING ` + loreColumns
	return insertReturning(ctx, s, "lore", q, []any{userID, in.Title, in.Content, in.Category}, scanLoreNote)
}

func (s *Store) UpdateLoreNote(ctx context.Context, id, userID int64, p ports.LoreNotePatch) (int64, error) {
	var up patch
	setIf(&up, "title", p.Title)
	setIf(&up, "content", p.Content)
	setIf(&up, "category", p.Category)
	return s.update(ctx, tableLore, id, userID, &up)
}

func (s *Store) DeleteLoreNote(ctx context.Context, id, userID int64) (int64, error) {
	return s.deleteOwned(ctx, tableLore, id, userID)
}

func scanAsset(r rowScanner) (domain.Asset, error) {
	var a domain.Asset
	err := r.Scan(&a.ID, &a.UserID, &a.Name, &a.FileURL, &a.FileType, &a.FileSize, &a.Category, &a.Tags,
		&a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func scanTemplate(r rowScanner) (domain.Template, error) {
	var t domain.Template
	err := r.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.Content, &t.Category, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func scanLoreNote(r rowScanner) (domain.LoreNote, error) {
	var n domain.LoreNote
	err := r.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Category, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}
