package horoscope

import (
	"context"
	"fmt"
	"time"

	"github.com/KarinaMa20040822/starwish/backend/internal/advisor"
	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
	"github.com/KarinaMa20040822/starwish/backend/internal/external/click108"
	"github.com/KarinaMa20040822/starwish/backend/internal/fortune"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
	"github.com/KarinaMa20040822/starwish/backend/pkg/redis"
)

// Service serves the per-sign daily horoscope. Scrape results are cached for
// the rest of the day so the 12-sign sweep hits click108 at most once per
// sign per day.
type Service struct {
	click108 *click108.Client
	advisor  *advisor.Advisor
	cache    *redis.Cache
	logger   *logger.Logger
}

// NewService creates a horoscope service.
func NewService(c *click108.Client, a *advisor.Advisor, cache *redis.Cache, log *logger.Logger) *Service {
	return &Service{click108: c, advisor: a, cache: cache, logger: log}
}

// GetDaily returns the horoscope for one sign and day, from cache when
// possible.
func (s *Service) GetDaily(ctx context.Context, date time.Time, sign fortune.Sign) (*contracts.DailyHoroscope, error) {
	if !sign.Valid() {
		return nil, fmt.Errorf("invalid sign: %d", int(sign))
	}

	dateStr := date.Format("2006-01-02")
	key := redis.HoroscopeKey(dateStr, int(sign))

	var cached contracts.DailyHoroscope
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.logger.WithError(err).Warn("Horoscope cache read failed")
	} else if hit {
		return &cached, nil
	}

	h, err := s.click108.FetchDaily(ctx, sign)
	if err != nil {
		return nil, err
	}

	h.LuckyItems = s.advisor.LuckyItems(ctx, h.LuckyColor, h.LuckyDirection, h.Benefactor)

	if err := s.cache.Set(ctx, key, h, redis.TTLDaily); err != nil {
		s.logger.WithError(err).Warn("Horoscope cache write failed")
	}
	return h, nil
}
