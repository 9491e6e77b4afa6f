package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository reads user profile fields needed by the fortune engine.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetBirthday returns the user's birthday, or nil when the user has not set
// one. A missing user is not an error either, the caller treats it the same
// as a missing birthday.
func (r *UserRepository) GetBirthday(ctx context.Context, userID string) (*time.Time, error) {
	var birthday *time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT birthday FROM users WHERE id = $1`, userID).Scan(&birthday)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return birthday, nil
}

// GetDisplayName returns the user's display name, empty when unknown.
func (r *UserRepository) GetDisplayName(ctx context.Context, userID string) (string, error) {
	var name *string
	err := r.pool.QueryRow(ctx,
		`SELECT display_name FROM users WHERE id = $1`, userID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if name == nil {
		return "", nil
	}
	return *name, nil
}
