package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

const keySuffixLen = 4

// APIKeyService stores third-party keys as bcrypt hashes.
type APIKeyService struct {
	repo ports.APIKeyRepository
	cost int
}

func NewAPIKeyService(repo ports.APIKeyRepository) *APIKeyService {
	return &APIKeyService{repo: repo, cost: bcrypt.DefaultCost}
}

func (s *APIKeyService) List(ctx context.Context, userID int64) []domain.APIKey {
	return s.repo.ListAPIKeys(ctx, userID)
}

func (s *APIKeyService) Create(ctx context.Context, userID int64, name, key string) (*domain.APIKey, error) {
	if name == "" || key == "" {
		return nil, fmt.Errorf("%w: name and key are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	suffix := key
	if len(key) > keySuffixLen {
		suffix = key[len(key)-keySuffixLen:]
	}

	return s.repo.CreateAPIKey(ctx, userID, ports.APIKeyInput{
		Name:      name,
		KeyHash:   string(hash),
		KeySuffix: suffix,
	})
}

func (s *APIKeyService) Delete(ctx context.Context, id, userID int64) (int64, error) {
	return s.repo.DeleteAPIKey(ctx, id, userID)
}
