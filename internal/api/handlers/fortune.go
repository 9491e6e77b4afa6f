package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/KarinaMa20040822/starwish/backend/internal/advisor"
	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
	"github.com/KarinaMa20040822/starwish/backend/internal/fortune"
	"github.com/KarinaMa20040822/starwish/backend/internal/horoscope"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
)

// FortuneHandler serves the daily horoscope and the AI text endpoints.
type FortuneHandler struct {
	horoscope *horoscope.Service
	advisor   *advisor.Advisor
	logger    *logger.Logger
}

// NewFortuneHandler creates a new fortune handler.
func NewFortuneHandler(svc *horoscope.Service, adv *advisor.Advisor, log *logger.Logger) *FortuneHandler {
	return &FortuneHandler{horoscope: svc, advisor: adv, logger: log}
}

// dailyResponse mirrors the JSON shape the mobile client reads.
type dailyResponse struct {
	Daily dailyPayload `json:"daily"`
}

type dailyPayload struct {
	LuckyNumber        string       `json:"luckyNumber"`
	LuckyColor         string       `json:"luckyColor"`
	LuckyTime          string       `json:"luckyTime"`
	LuckyDirection     string       `json:"luckyDirection"`
	LuckyConstellation string       `json:"luckyConstellation"`
	LuckyItems         []string     `json:"luckyItems"`
	Fortune            dailyFortune `json:"fortune"`
}

type dailyFortune struct {
	Overall contracts.FortuneSection `json:"overall"`
	Love    contracts.FortuneSection `json:"love"`
	Work    contracts.FortuneSection `json:"work"`
	Wealth  contracts.FortuneSection `json:"wealth"`
}

// GetFortune returns today's horoscope for one sign.
// GET /fortune?astroId=7
func (h *FortuneHandler) GetFortune(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// missing astroId falls back to 處女座, matching the client default
	astroID := int(fortune.FallbackSign)
	if raw := r.URL.Query().Get("astroId"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid astroId (expected 0-11)")
			return
		}
		astroID = n
	}

	sign := fortune.Sign(astroID)
	if !sign.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid astroId (expected 0-11)")
		return
	}

	daily, err := h.horoscope.GetDaily(ctx, time.Now(), sign)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get daily horoscope")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve daily horoscope")
		return
	}

	respondJSON(w, http.StatusOK, dailyResponse{Daily: dailyPayload{
		LuckyNumber:        daily.LuckyNumber,
		LuckyColor:         daily.LuckyColor,
		LuckyTime:          daily.LuckyTime,
		LuckyDirection:     daily.LuckyDirection,
		LuckyConstellation: daily.Benefactor,
		LuckyItems:         daily.LuckyItems,
		Fortune: dailyFortune{
			Overall: daily.Overall,
			Love:    daily.Love,
			Work:    daily.Career,
			Wealth:  daily.Wealth,
		},
	}})
}

// AdviceRequest carries the four scored sections plus a free-text health
// note.
type AdviceRequest struct {
	Overall *contracts.FortuneSection `json:"overall"`
	Love    *contracts.FortuneSection `json:"love"`
	Work    *contracts.FortuneSection `json:"work"`
	Wealth  *contracts.FortuneSection `json:"wealth"`
	Health  string                    `json:"health"`
}

// PostAdvice generates the daily suggestion text.
// POST /advice
func (h *FortuneHandler) PostAdvice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Overall == nil || req.Love == nil || req.Work == nil || req.Wealth == nil {
		respondError(w, http.StatusBadRequest, "缺少運勢資料")
		return
	}

	advice, err := h.advisor.Advice(ctx, *req.Overall, *req.Love, *req.Work, *req.Wealth, req.Health)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate advice")
		respondError(w, http.StatusInternalServerError, "AI 無法生成建議")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"advice": advice})
}

// LuckySummaryRequest identifies today's best match for the summary text.
type LuckySummaryRequest struct {
	Name       string   `json:"name"`
	MatchScore int      `json:"matchScore"`
	Aspects    []string `json:"aspects"`
}

// PostLuckySummary generates the one-line benefactor summary.
// POST /luckySummary
func (h *FortuneHandler) PostLuckySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LuckySummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.MatchScore == 0 || len(req.Aspects) == 0 {
		respondError(w, http.StatusBadRequest, "缺少必要欄位 (name, matchScore, aspects)")
		return
	}

	summary, err := h.advisor.BenefactorSummary(ctx, req.Name, req.MatchScore, req.Aspects)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate benefactor summary")
		respondError(w, http.StatusInternalServerError, "AI 無法生成摘要")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"summary": summary})
}
