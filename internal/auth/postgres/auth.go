package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/frahmantamala/complaint-redressal/internal"
	"github.com/frahmantamala/complaint-redressal/internal/auth"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// FindCredentials checks users first and falls back to admins. A username
// found in admins yields the ADMIN role.
func (r *Repository) FindCredentials(ctx context.Context, username string) (*auth.Credentials, error) {
	lookups := []struct {
		query string
		role  string
	}{
		{`SELECT id, username, password_hash FROM users WHERE username = ?`, internal.RoleUser},
		{`SELECT id, username, password_hash FROM admins WHERE username = ?`, internal.RoleAdmin},
	}

	for _, l := range lookups {
		var c auth.Credentials
		row := r.db.WithContext(ctx).Raw(l.query, username).Row()
		if err := row.Scan(&c.PrincipalID, &c.Username, &c.PasswordHash); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			return nil, fmt.Errorf("find credentials: %w", err)
		}
		c.Role = l.role
		return &c, nil
	}

	return nil, internal.ErrInvalidCredentials
}
