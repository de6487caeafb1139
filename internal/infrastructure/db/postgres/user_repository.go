package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

const userColumns = `id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in`

// UpsertUser inserts the user or refreshes its profile. Profile columns are
// only overwritten with non-null values; role can be raised to admin but is
// never lowered.
func (s *Store) UpsertUser(ctx context.Context, in ports.UserUpsert) error {
	const q = `
INSERT INTO users (open_id, name, email, login_method, role, last_signed_in)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (open_id) DO UPDATE SET
    name           = COALESCE(EXCLUDED.name, users.name),
    email          = COALESCE(EXCLUDED.email, users.email),
    login_method   = COALESCE(EXCLUDED.login_method, users.login_method),
    role           = CASE WHEN EXCLUDED.role = 'admin' THEN 'admin' ELSE users.role END,
    last_signed_in = EXCLUDED.last_signed_in,
    updated_at     = NOW()`

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	_, err := s.execOwned(ctx, "upsert user", q,
		in.OpenID, in.Name, in.Email, in.LoginMethod, string(role), in.LastSignedIn.UTC())
	return err
}

// FindUserByOpenID returns domain.ErrUserNotFound when no row matches.
func (s *Store) FindUserByOpenID(ctx context.Context, openID string) (*domain.User, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE open_id = $1`, openID)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (s *Store) TouchLastSignedIn(ctx context.Context, openID string, at time.Time) error {
	_, err := s.execOwned(ctx, "touch user",
		`UPDATE users SET last_signed_in = $1, updated_at = NOW() WHERE open_id = $2`, at.UTC(), openID)
	return err
}

func scanUser(r rowScanner) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := r.Scan(&u.ID, &u.OpenID, &u.Name, &u.Email, &u.LoginMethod, &role,
		&u.CreatedAt, &u.UpdatedAt, &u.LastSignedIn)
	u.Role = domain.Role(role)
	return u, err
}
