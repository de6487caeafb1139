package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const callbackTTL = 10 * time.Minute

// CallbackGuard lets each OAuth authorization code complete at most one
// login. Codes are stored hashed.
// Key format: oauth:code:<sha256(code)>
type CallbackGuard struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewCallbackGuard creates a CallbackGuard wrapping the given Redis client.
func NewCallbackGuard(client *goredis.Client) *CallbackGuard {
	return &CallbackGuard{client: client, ttl: callbackTTL}
}

// Claim reports whether this call is the first to present code. It returns
// false for a replayed code.
func (g *CallbackGuard) Claim(ctx context.Context, code string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(code), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim oauth code: %w", err)
	}
	return ok, nil
}

func (g *CallbackGuard) key(code string) string {
	sum := sha256.Sum256([]byte(code))
	return "oauth:code:" + hex.EncodeToString(sum[:])
}
