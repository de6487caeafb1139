package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// DefaultSocialMediaSeed is the link inserted by RunMigration.
var DefaultSocialMediaSeed = ports.SocialMediaSeed{
	Key:      "default-youtube",
	Platform: "YouTube",
	URL:      "https://www.youtube.com/@bandavexel",
	Username: "bandavexel",
}

// MigrationService runs the one-off seed upsert.
type MigrationService struct {
	seeds ports.SeedRepository
	seed  ports.SocialMediaSeed
	log   zerolog.Logger
}

func NewMigrationService(seeds ports.SeedRepository, log zerolog.Logger) *MigrationService {
	return &MigrationService{seeds: seeds, seed: DefaultSocialMediaSeed, log: log}
}

// RunMigration upserts the seed for userID. Errors are reported in the
// result, never returned.
func (s *MigrationService) RunMigration(ctx context.Context, userID int64) ports.MigrationResult {
	if err := s.seeds.UpsertSeedSocialMedia(ctx, userID, s.seed); err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("seed migration failed")
		return ports.MigrationResult{Success: false, Message: err.Error()}
	}
	return ports.MigrationResult{Success: true, Message: "Migration completed successfully"}
}
