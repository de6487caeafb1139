package postgres

import (
	"context"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

const (
	tableAPIKeys  = "api_keys"
	apiKeyColumns = `id, user_id, name, key_hash, key_suffix, last_used, is_active, created_at, updated_at`
)

func (s *Store) ListAPIKeys(ctx context.Context, userID int64) []domain.APIKey {
	q := `SELECT ` + apiKeyColumns + ` FROM ` + tableAPIKeys +
		` WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return listOwned(ctx, s, "api_keys", q, userID, scanAPIKey)
}

func (s *Store) CreateAPIKey(ctx context.Context, userID int64, in ports.APIKeyInput) (*domain.APIKey, error) {
	q := `INSERT INTO ` + tableAPIKeys + ` (user_id, name, key_hash, key_suffix)
VALUES ($1, $2, $3, $4) RETURNING ` + apiKeyColumns
	return insertReturning(ctx, s, "api_keys", q, []any{userID, in.Name, in.KeyHash, in.KeySuffix}, scanAPIKey)
}

func (s *Store) DeleteAPIKey(ctx context.Context, id, userID int64) (int64, error) {
	return s.deleteOwned(ctx, tableAPIKeys, id, userID)
}

func scanAPIKey(r rowScanner) (domain.APIKey, error) {
	var (
		k      domain.APIKey
		active int16
	)
	err := r.Scan(&k.ID, &k.UserID, &k.Name, &k.KeyHash, &k.KeySuffix, &k.LastUsed, &active,
		&k.CreatedAt, &k.UpdatedAt)
	k.IsActive = active != 0
	return k, err
}
