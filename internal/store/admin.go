package store

import (
	"context"
	"time"

	"cleaning-booking-api/internal/model"
)

func (s *Store) CreateAdmin(ctx context.Context, username, passwordHash string) (*model.AdminUser, error) {
	u := &model.AdminUser{}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO admin_users (username, password_hash)
		 VALUES ($1,$2)
		 RETURNING id, username, password_hash, reset_token, reset_token_expiry, created_at`,
		username, passwordHash,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.ResetToken, &u.ResetTokenExpiry, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) AdminByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	u := &model.AdminUser{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, reset_token, reset_token_expiry, created_at
		 FROM admin_users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.ResetToken, &u.ResetTokenExpiry, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) AdminByID(ctx context.Context, id int) (*model.AdminUser, error) {
	u := &model.AdminUser{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, reset_token, reset_token_expiry, created_at
		 FROM admin_users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.ResetToken, &u.ResetTokenExpiry, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) UpdateAdminPassword(ctx context.Context, id int, passwordHash string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE admin_users SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	return err
}

// SetResetToken stores a reset token and its expiry on the admin row.
// Reports whether the username matched an existing admin.
func (s *Store) SetResetToken(ctx context.Context, username, token string, expiry time.Time) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE admin_users SET reset_token = $1, reset_token_expiry = $2 WHERE username = $3`,
		token, expiry, username)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) AdminByResetToken(ctx context.Context, token string) (*model.AdminUser, error) {
	u := &model.AdminUser{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, reset_token, reset_token_expiry, created_at
		 FROM admin_users WHERE reset_token = $1`, token,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.ResetToken, &u.ResetTokenExpiry, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ClearResetToken removes a used or superseded token from the admin row.
func (s *Store) ClearResetToken(ctx context.Context, id int) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE admin_users SET reset_token = NULL, reset_token_expiry = NULL WHERE id = $1`, id)
	return err
}
