package contracts

// FortuneSection is one scored fortune category from the daily horoscope
// page (overall, love, career or wealth).
type FortuneSection struct {
	Score int    `json:"score"` // 1-5 stars
	Stars string `json:"stars"`
	Text  string `json:"text"`
}

// DailyHoroscope is everything scraped (and generated) for one sign and day.
type DailyHoroscope struct {
	AstroID        int            `json:"astro_id"` // canonical sign id, 0-11
	SignName       string         `json:"sign_name"`
	LuckyNumber    string         `json:"lucky_number"`
	LuckyDirection string         `json:"lucky_direction"`
	LuckyTime      string         `json:"lucky_time"`  // "HH:MM-HH:MM" or 無
	LuckyColor     string         `json:"lucky_color"` // free-text label, e.g. 紫色
	Benefactor     string         `json:"benefactor"`  // 貴人星座
	LuckyItems     []string       `json:"lucky_items,omitempty"`
	Overall        FortuneSection `json:"overall"`
	Love           FortuneSection `json:"love"`
	Career         FortuneSection `json:"career"`
	Wealth         FortuneSection `json:"wealth"`
}
