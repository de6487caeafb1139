package postgres

import (
	"context"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

const (
	tableSocialMedia   = "social_media_links"
	socialMediaColumns = `id, user_id, platform, url, username, created_at, updated_at`
)

func (s *Store) ListSocialMedia(ctx context.Context, userID int64) []domain.SocialMediaLink {
	q := `SELECT ` + socialMediaColumns + ` FROM ` + tableSocialMedia +
		` WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return listOwned(ctx, s, "social_media", q, userID, scanSocialMedia)
}

func (s *Store) CreateSocialMedia(ctx context.Context, userID int64, in ports.SocialMediaInput) (*domain.SocialMediaLink, error) {
	q := `INSERT INTO ` + tableSocialMedia + ` (user_id, platform, url, username)
VALUES ($1, $2, $3, $4) RETURNING ` + socialMediaColumns
	return insertReturning(ctx, s, "social_media", q,
		[]any{userID, in.Platform, in.URL, in.Username}, scanSocialMedia)
}

func (s *Store) UpdateSocialMedia(ctx context.Context, id, userID int64, p ports.SocialMediaPatch) (int64, error) {
	var up patch
	setIf(&up, "platform", p.Platform)
	setIf(&up, "url", p.URL)
	setIf(&up, "username", p.Username)
	return s.update(ctx, tableSocialMedia, id, userID, &up)
}

func (s *Store) DeleteSocialMedia(ctx context.Context, id, userID int64) (int64, error) {
	return s.deleteOwned(ctx, tableSocialMedia, id, userID)
}

// UpsertSeedSocialMedia inserts the seed row once; later calls only touch
// updated_at.
func (s *Store) UpsertSeedSocialMedia(ctx context.Context, userID int64, seed ports.SocialMediaSeed) error {
	q := `INSERT INTO ` + tableSocialMedia + ` (user_id, platform, url, username, seed_key)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (seed_key) DO UPDATE SET updated_at = NOW()`
	_, err := s.execOwned(ctx, "seed social_media", q, userID, seed.Platform, seed.URL, seed.Username, seed.Key)
	return err
}

func scanSocialMedia(r rowScanner) (domain.SocialMediaLink, error) {
	var l domain.SocialMediaLink
	err := r.Scan(&l.ID, &l.UserID, &l.Platform, &l.URL, &l.Username, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}
