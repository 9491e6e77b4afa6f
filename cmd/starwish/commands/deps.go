package commands

import (
	"fmt"
	"time"

	"github.com/KarinaMa20040822/starwish/backend/internal/advisor"
	"github.com/KarinaMa20040822/starwish/backend/internal/external/click108"
	"github.com/KarinaMa20040822/starwish/backend/internal/external/gemini"
	"github.com/KarinaMa20040822/starwish/backend/internal/external/gooday"
	"github.com/KarinaMa20040822/starwish/backend/internal/horoscope"
	"github.com/KarinaMa20040822/starwish/backend/pkg/config"
	"github.com/KarinaMa20040822/starwish/backend/pkg/httputil"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
	"github.com/KarinaMa20040822/starwish/backend/pkg/redis"
)

// deps bundles the service wiring shared by the api and scheduler commands.
type deps struct {
	cfg       *config.Config
	log       *logger.Logger
	redis     *redis.Client
	cache     *redis.Cache
	click108  *click108.Client
	gooday    *gooday.Client
	advisor   *advisor.Advisor
	horoscope *horoscope.Service
}

// buildDeps loads config and wires the shared service graph. The database
// pool is opened separately by commands that need it.
func buildDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	redisClient, err := redis.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	cache := redis.NewCache(redisClient, "starwish")

	// builder methods mutate the client, so each upstream gets its own.
	// The redis limiter caps requests across processes; click108 keeps an
	// extra local limiter for pacing inside the 12-sign sweep.
	limiter := redis.NewRateLimiter(redisClient, "starwish")
	click108HTTP := httputil.New(cfg, log).WithRateLimiter(limiter, redis.Click108RateLimit)
	goodayHTTP := httputil.New(cfg, log)
	geminiHTTP := httputil.NewWithTimeout(cfg, log, time.Minute).WithRateLimiter(limiter, redis.GeminiRateLimit)

	click108Client := click108.NewClient(cfg.Click108, click108HTTP, log)
	goodayClient := gooday.NewClient(cfg.Gooday, goodayHTTP, log)
	geminiClient := gemini.NewClient(cfg.Gemini, geminiHTTP, log)

	adv := advisor.New(geminiClient, log)
	svc := horoscope.NewService(click108Client, adv, cache, log)

	return &deps{
		cfg:       cfg,
		log:       log,
		redis:     redisClient,
		cache:     cache,
		click108:  click108Client,
		gooday:    goodayClient,
		advisor:   adv,
		horoscope: svc,
	}, nil
}

// close releases the shared connections.
func (d *deps) close() {
	if err := d.redis.Close(); err != nil {
		d.log.WithError(err).Warn("Redis close failed")
	}
}
