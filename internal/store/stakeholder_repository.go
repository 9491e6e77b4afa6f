package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
)

// StakeholderRepository manages the people a user tracks for compatibility.
type StakeholderRepository struct {
	pool *pgxpool.Pool
}

// NewStakeholderRepository creates a new stakeholder repository.
func NewStakeholderRepository(pool *pgxpool.Pool) *StakeholderRepository {
	return &StakeholderRepository{pool: pool}
}

// ListByUser retrieves a user's stakeholders, newest first.
func (r *StakeholderRepository) ListByUser(ctx context.Context, userID string) ([]*contracts.Stakeholder, error) {
	query := `
		SELECT id, user_id, nickname, relationship, birth_date, religion, created_at
		FROM stakeholders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*contracts.Stakeholder
	for rows.Next() {
		var s contracts.Stakeholder
		var relationship, religion *string
		if err := rows.Scan(&s.ID, &s.UserID, &s.Nickname, &relationship, &s.BirthDate, &religion, &s.CreatedAt); err != nil {
			return nil, err
		}
		if relationship != nil {
			s.Relationship = *relationship
		}
		if religion != nil {
			s.Religion = *religion
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Create inserts a stakeholder and fills in its generated id and timestamp.
func (r *StakeholderRepository) Create(ctx context.Context, s *contracts.Stakeholder) error {
	query := `
		INSERT INTO stakeholders (user_id, nickname, relationship, birth_date, religion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.pool.QueryRow(ctx, query,
		s.UserID, s.Nickname, nullable(s.Relationship), s.BirthDate, nullable(s.Religion),
	).Scan(&s.ID, &s.CreatedAt)
}

// Delete removes one stakeholder owned by the user. Returns false when no
// matching row existed.
func (r *StakeholderRepository) Delete(ctx context.Context, userID string, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM stakeholders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID retrieves one stakeholder. Returns (nil, nil) when missing.
func (r *StakeholderRepository) GetByID(ctx context.Context, id int64) (*contracts.Stakeholder, error) {
	query := `
		SELECT id, user_id, nickname, relationship, birth_date, religion, created_at
		FROM stakeholders
		WHERE id = $1
	`

	var s contracts.Stakeholder
	var relationship, religion *string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Nickname, &relationship, &s.BirthDate, &religion, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if relationship != nil {
		s.Relationship = *relationship
	}
	if religion != nil {
		s.Religion = *religion
	}
	return &s, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
