package handlers

import (
	"net/http"
	"time"

	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
	"github.com/KarinaMa20040822/starwish/backend/internal/external/gooday"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
	"github.com/KarinaMa20040822/starwish/backend/pkg/redis"
)

// AlmanacHandler serves the daily Chinese almanac.
type AlmanacHandler struct {
	gooday *gooday.Client
	cache  *redis.Cache
	logger *logger.Logger
}

// NewAlmanacHandler creates a new almanac handler.
func NewAlmanacHandler(client *gooday.Client, cache *redis.Cache, log *logger.Logger) *AlmanacHandler {
	return &AlmanacHandler{gooday: client, cache: cache, logger: log}
}

// GetToday returns the almanac for today, or for ?date=YYYY-MM-DD.
// GET /today
func (h *AlmanacHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'date' format (expected YYYY-MM-DD)")
			return
		}
		date = parsed
	}

	key := redis.AlmanacKey(date.Format("2006-01-02"))

	var cached contracts.Almanac
	if hit, err := h.cache.Get(ctx, key, &cached); err != nil {
		h.logger.WithError(err).Warn("Almanac cache read failed")
	} else if hit {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	almanac, err := h.gooday.FetchAlmanac(ctx, date)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch almanac")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve almanac")
		return
	}

	if err := h.cache.Set(ctx, key, almanac, redis.TTLDaily); err != nil {
		h.logger.WithError(err).Warn("Almanac cache write failed")
	}

	respondJSON(w, http.StatusOK, almanac)
}
