package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,          default=3000"`
	Env         string `env:"ENV,           default=production"`
	LogLevel    string `env:"LOG_LEVEL,     default=info"`
	JWTSecret   string `env:"JWT_SECRET,    required"`
	AppID       string `env:"APP_ID,        required"`
	OwnerOpenID string `env:"OWNER_OPEN_ID"`

	Session  SessionConfig
	OAuth    OAuthConfig
	Notify   NotifyConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Storage  StorageConfig
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE, default=app_session_id"`
	TTL        time.Duration `env:"SESSION_TTL,    default=8760h"`
}

type OAuthConfig struct {
	ServerURL string `env:"OAUTH_SERVER_URL, default=https://auth.manus.im"`
	PortalURL string `env:"OAUTH_PORTAL_URL, default=https://manus.im"`
}

type NotifyConfig struct {
	URL    string `env:"NOTIFY_API_URL"`
	APIKey string `env:"NOTIFY_API_KEY"`
}

type PostgresConfig struct {
	DSN string `env:"DATABASE_URL"`
}

// RedisConfig is optional: the OAuth code replay guard is skipped when
// the server cannot be reached.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// StorageConfig is optional: uploads are disabled when Endpoint is empty.
type StorageConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET,     default=assets"`
	UseSSL    bool   `env:"MINIO_USE_SSL,    default=false"`
	PublicURL string `env:"MINIO_PUBLIC_URL"`
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment take precedence.
func Load(ctx context.Context, dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &cfg, nil
}
