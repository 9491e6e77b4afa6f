package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
	"github.com/KarinaMa20040822/starwish/backend/internal/fortune"
	"github.com/KarinaMa20040822/starwish/backend/internal/horoscope"
	"github.com/KarinaMa20040822/starwish/backend/internal/store"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
)

// ProfileHandler composes the user's daily profile: sign, best-matched
// stakeholder and the day's color pair.
type ProfileHandler struct {
	users        *store.UserRepository
	stakeholders *store.StakeholderRepository
	horoscope    *horoscope.Service
	logger       *logger.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(
	users *store.UserRepository,
	stakeholders *store.StakeholderRepository,
	svc *horoscope.Service,
	log *logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{users: users, stakeholders: stakeholders, horoscope: svc, logger: log}
}

// DailyProfileResponse bundles the engine output with the day's horoscope.
type DailyProfileResponse struct {
	Date    string                    `json:"date"`
	Profile fortune.DailyProfile      `json:"profile"`
	Daily   *contracts.DailyHoroscope `json:"daily,omitempty"`
}

// GetDaily returns the composed daily profile for one user.
// GET /api/profile/daily?userId=...
func (h *ProfileHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "Missing userId")
		return
	}

	birthday, err := h.users.GetBirthday(ctx, userID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load user birthday")
		respondError(w, http.StatusInternalServerError, "Failed to load user profile")
		return
	}
	displayName, err := h.users.GetDisplayName(ctx, userID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load user display name")
		respondError(w, http.StatusInternalServerError, "Failed to load user profile")
		return
	}

	self := fortune.Person{
		ID:          userID,
		DisplayName: displayName,
		Birth:       dateOf(birthday),
	}

	list, err := h.stakeholders.ListByUser(ctx, userID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load stakeholders")
		respondError(w, http.StatusInternalServerError, "Failed to load stakeholders")
		return
	}
	candidates := make([]fortune.Person, 0, len(list))
	for _, s := range list {
		candidates = append(candidates, stakeholderPerson(s))
	}

	now := time.Now()
	sign := fortune.ResolveSign(self.Birth)

	// horoscope failures leave the color pair gray rather than failing the
	// whole profile
	luckyLabel := ""
	daily, err := h.horoscope.GetDaily(ctx, now, sign)
	if err != nil {
		h.logger.WithError(err).Warn("Daily horoscope unavailable, colors fall back to gray")
	} else {
		luckyLabel = daily.LuckyColor
	}

	today := fortune.Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
	profile := fortune.ComputeDailyProfile(self, candidates, luckyLabel, today)

	respondJSON(w, http.StatusOK, DailyProfileResponse{
		Date:    now.Format("2006-01-02"),
		Profile: profile,
		Daily:   daily,
	})
}

func dateOf(t *time.Time) *fortune.Date {
	if t == nil {
		return nil
	}
	return &fortune.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func stakeholderPerson(s *contracts.Stakeholder) fortune.Person {
	name := s.Nickname
	if name == "" {
		name = s.Relationship
	}
	return fortune.Person{
		ID:          strconv.FormatInt(s.ID, 10),
		DisplayName: name,
		Birth:       dateOf(s.BirthDate),
	}
}
