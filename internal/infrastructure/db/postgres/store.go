package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

var (
	_ ports.ContentStore   = (*Store)(nil)
	_ ports.UserRepository = (*Store)(nil)
	_ ports.SeedRepository = (*Store)(nil)
)

// Store implements every per-user repository on top of a Provider.
type Store struct {
	provider *Provider
	log      zerolog.Logger
}

func NewStore(provider *Provider, log zerolog.Logger) *Store {
	return &Store{provider: provider, log: log}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// listOwned runs a user-scoped SELECT. Failures are logged and reported as
// an empty result.
func listOwned[T any](ctx context.Context, s *Store, kind, query string, userID int64, scan func(rowScanner) (T, error)) []T {
	out := []T{}

	db, err := s.provider.DB(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Int64("user_id", userID).Msg("list degraded: store unavailable")
		return out
	}

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Int64("user_id", userID).Msg("list degraded: query failed")
		return out
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			s.log.Warn().Err(err).Str("kind", kind).Int64("user_id", userID).Msg("list degraded: scan failed")
			return []T{}
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Int64("user_id", userID).Msg("list degraded: rows error")
		return []T{}
	}
	return out
}

// insertReturning runs an INSERT ... RETURNING and scans the single row.
func insertReturning[T any](ctx context.Context, s *Store, kind, query string, args []any, scan func(rowScanner) (T, error)) (*T, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	item, err := scan(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}
	return &item, nil
}

// execOwned runs a mutation and returns the number of affected rows.
func (s *Store) execOwned(ctx context.Context, kind, query string, args ...any) (int64, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s rows affected: %w", kind, err)
	}
	return n, nil
}

func (s *Store) deleteOwned(ctx context.Context, table string, id, userID int64) (int64, error) {
	q := "DELETE FROM " + table + " WHERE id = $1 AND user_id = $2"
	return s.execOwned(ctx, "delete "+table, q, id, userID)
}

// patch accumulates SET clauses for a partial update.
type patch struct {
	sets []string
	args []any
}

func (p *patch) set(col string, v any) {
	p.args = append(p.args, v)
	p.sets = append(p.sets, fmt.Sprintf("%s = $%d", col, len(p.args)))
}

func setIf[T any](p *patch, col string, v *T) {
	if v != nil {
		p.set(col, *v)
	}
}

// update applies p to the row identified by id and owned by userID.
// updated_at is always refreshed.
func (s *Store) update(ctx context.Context, table string, id, userID int64, p *patch) (int64, error) {
	sets := append(p.sets, "updated_at = NOW()")
	args := append(p.args, id, userID)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d AND user_id = $%d",
		table, strings.Join(sets, ", "), len(args)-1, len(args))
	return s.execOwned(ctx, "update "+table, q, args...)
}
