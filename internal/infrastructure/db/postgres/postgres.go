package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/infrastructure/db/postgres/migrations"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to establish a Postgres connection.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect opens a pgx-backed *sql.DB, verifies connectivity with a ping and
// applies the embedded migrations. A default timeout is applied when none
// is provided.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("postgres: empty DSN")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(connectCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if err := migrate(connectCtx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// gooseUp is a seam for tests.
var gooseUp = func(ctx context.Context, db *sql.DB) error {
	return goose.UpContext(ctx, db, ".")
}

var gooseMu sync.Mutex

func migrate(ctx context.Context, db *sql.DB) error {
	// goose keeps its base FS and dialect in package globals.
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUp(ctx, db); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Provider owns the process-wide database handle. The first call to DB
// connects; the outcome, success or failure, is kept for the lifetime of
// the process.
type Provider struct {
	connect func(ctx context.Context) (*sql.DB, error)
	log     zerolog.Logger

	once sync.Once
	db   *sql.DB
	err  error
}

// NewProvider returns a Provider that lazily connects to cfg.
func NewProvider(cfg Config, log zerolog.Logger) *Provider {
	return &Provider{
		connect: func(ctx context.Context) (*sql.DB, error) { return Connect(ctx, cfg) },
		log:     log,
	}
}

// FromDB wraps an already open handle. Used by tests.
func FromDB(db *sql.DB) *Provider {
	p := &Provider{log: zerolog.Nop()}
	p.once.Do(func() { p.db = db })
	return p
}

// DB returns the shared handle or an error wrapping domain.ErrStoreUnavailable.
func (p *Provider) DB(ctx context.Context) (*sql.DB, error) {
	p.once.Do(func() {
		// The first caller's cancellation must not poison the shared handle.
		p.db, p.err = p.connect(context.WithoutCancel(ctx))
		if p.err != nil {
			p.log.Error().Err(p.err).Msg("database connection failed")
		} else {
			p.log.Info().Msg("database connected")
		}
	})
	if p.err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, p.err)
	}
	return p.db, nil
}

// Ping reports whether the handle is usable. Used by the readiness probe.
func (p *Provider) Ping(ctx context.Context) error {
	db, err := p.DB(ctx)
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// Close releases the handle if one was opened.
func (p *Provider) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}
