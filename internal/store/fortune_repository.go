package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
)

// FortuneRepository persists the nightly fortune snapshots.
// fortune_data 存取只在這個 repository
type FortuneRepository struct {
	pool *pgxpool.Pool
}

// NewFortuneRepository creates a new fortune repository.
func NewFortuneRepository(pool *pgxpool.Pool) *FortuneRepository {
	return &FortuneRepository{pool: pool}
}

// Save upserts one sign's snapshot for a day. The section structs are stored
// as jsonb, matching the shape the mobile client reads.
func (r *FortuneRepository) Save(ctx context.Context, rec *contracts.FortuneRecord) error {
	love, err := json.Marshal(rec.Love)
	if err != nil {
		return fmt.Errorf("marshal love section: %w", err)
	}
	wealth, err := json.Marshal(rec.Wealth)
	if err != nil {
		return fmt.Errorf("marshal wealth section: %w", err)
	}
	career, err := json.Marshal(rec.Career)
	if err != nil {
		return fmt.Errorf("marshal career section: %w", err)
	}

	query := `
		INSERT INTO fortune_data (
			astro_id, created_at, lucky_color, avoid_color, business_hours,
			love_fortune, wealth_fortune, career_fortune, suggestions, match_rate
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (astro_id, created_at) DO UPDATE SET
			lucky_color = EXCLUDED.lucky_color,
			avoid_color = EXCLUDED.avoid_color,
			business_hours = EXCLUDED.business_hours,
			love_fortune = EXCLUDED.love_fortune,
			wealth_fortune = EXCLUDED.wealth_fortune,
			career_fortune = EXCLUDED.career_fortune,
			suggestions = EXCLUDED.suggestions,
			match_rate = EXCLUDED.match_rate
	`

	_, err = r.pool.Exec(ctx, query,
		rec.AstroID, rec.Date, rec.LuckyColor, rec.AvoidColor, rec.BusinessHours,
		love, wealth, career, rec.Suggestions, rec.MatchRate,
	)
	return err
}

// GetByDateAndSign retrieves one sign's snapshot for a day. Returns
// (nil, nil) when no row exists.
func (r *FortuneRepository) GetByDateAndSign(ctx context.Context, date time.Time, astroID int) (*contracts.FortuneRecord, error) {
	query := `
		SELECT id, astro_id, created_at, lucky_color, avoid_color, business_hours,
		       love_fortune, wealth_fortune, career_fortune, suggestions, match_rate
		FROM fortune_data
		WHERE astro_id = $1 AND created_at = $2
	`

	var rec contracts.FortuneRecord
	var love, wealth, career []byte
	err := r.pool.QueryRow(ctx, query, astroID, date).Scan(
		&rec.ID, &rec.AstroID, &rec.Date, &rec.LuckyColor, &rec.AvoidColor, &rec.BusinessHours,
		&love, &wealth, &career, &rec.Suggestions, &rec.MatchRate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(love, &rec.Love); err != nil {
		return nil, fmt.Errorf("unmarshal love section: %w", err)
	}
	if err := json.Unmarshal(wealth, &rec.Wealth); err != nil {
		return nil, fmt.Errorf("unmarshal wealth section: %w", err)
	}
	if err := json.Unmarshal(career, &rec.Career); err != nil {
		return nil, fmt.Errorf("unmarshal career section: %w", err)
	}
	return &rec, nil
}

// ListByDate retrieves all snapshots for a day, ordered by sign.
func (r *FortuneRepository) ListByDate(ctx context.Context, date time.Time) ([]*contracts.FortuneRecord, error) {
	query := `
		SELECT id, astro_id, created_at, lucky_color, avoid_color, business_hours,
		       love_fortune, wealth_fortune, career_fortune, suggestions, match_rate
		FROM fortune_data
		WHERE created_at = $1
		ORDER BY astro_id ASC
	`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*contracts.FortuneRecord
	for rows.Next() {
		var rec contracts.FortuneRecord
		var love, wealth, career []byte
		if err := rows.Scan(
			&rec.ID, &rec.AstroID, &rec.Date, &rec.LuckyColor, &rec.AvoidColor, &rec.BusinessHours,
			&love, &wealth, &career, &rec.Suggestions, &rec.MatchRate,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(love, &rec.Love); err != nil {
			return nil, fmt.Errorf("unmarshal love section: %w", err)
		}
		if err := json.Unmarshal(wealth, &rec.Wealth); err != nil {
			return nil, fmt.Errorf("unmarshal wealth section: %w", err)
		}
		if err := json.Unmarshal(career, &rec.Career); err != nil {
			return nil, fmt.Errorf("unmarshal career section: %w", err)
		}
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}

// DeleteOlderThan purges snapshots before the cutoff date, returning the
// number of rows removed.
func (r *FortuneRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM fortune_data WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
