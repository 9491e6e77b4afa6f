package contracts

import "time"

// FortuneRecord is one row of fortune_data, the nightly snapshot the
// scheduler persists per sign.
type FortuneRecord struct {
	ID            int64          `json:"id"`
	AstroID       int            `json:"astro_id"`
	Date          time.Time      `json:"created_at"`
	LuckyColor    string         `json:"lucky_color"`
	AvoidColor    string         `json:"avoid_color"`
	BusinessHours string         `json:"business_hours"` // 吉時
	Love          FortuneSection `json:"love_fortune"`
	Wealth        FortuneSection `json:"wealth_fortune"`
	Career        FortuneSection `json:"career_fortune"`
	Suggestions   string         `json:"suggestions"`
	MatchRate     int            `json:"match_rate"`
}

// Stakeholder is a person the user tracks compatibility against.
type Stakeholder struct {
	ID           int64      `json:"id"`
	UserID       string     `json:"user_id"`
	Nickname     string     `json:"nickname"`
	Relationship string     `json:"relationship,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Religion     string     `json:"religion,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
