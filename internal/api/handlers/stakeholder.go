package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/KarinaMa20040822/starwish/backend/internal/contracts"
	"github.com/KarinaMa20040822/starwish/backend/internal/fortune"
	"github.com/KarinaMa20040822/starwish/backend/internal/store"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
)

// StakeholderHandler manages the user's tracked people.
type StakeholderHandler struct {
	stakeholders *store.StakeholderRepository
	logger       *logger.Logger
}

// NewStakeholderHandler creates a new stakeholder handler.
func NewStakeholderHandler(repo *store.StakeholderRepository, log *logger.Logger) *StakeholderHandler {
	return &StakeholderHandler{stakeholders: repo, logger: log}
}

// stakeholderView adds the resolved sign to a stored stakeholder.
type stakeholderView struct {
	*contracts.Stakeholder
	SignName string `json:"sign_name,omitempty"`
}

// List returns a user's stakeholders.
// GET /api/stakeholders?userId=...
func (h *StakeholderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "Missing userId")
		return
	}

	list, err := h.stakeholders.ListByUser(ctx, userID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list stakeholders")
		respondError(w, http.StatusInternalServerError, "Failed to list stakeholders")
		return
	}

	views := make([]stakeholderView, 0, len(list))
	for _, s := range list {
		v := stakeholderView{Stakeholder: s}
		if s.BirthDate != nil {
			v.SignName = fortune.ResolveSign(&fortune.Date{
				Year:  s.BirthDate.Year(),
				Month: int(s.BirthDate.Month()),
				Day:   s.BirthDate.Day(),
			}).Name()
		}
		views = append(views, v)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"stakeholders": views})
}

// CreateStakeholderRequest is the POST body for adding a person.
type CreateStakeholderRequest struct {
	UserID       string `json:"user_id"`
	Nickname     string `json:"nickname"`
	Relationship string `json:"relationship"`
	BirthDate    string `json:"birth_date"` // YYYY-MM-DD, optional
	Religion     string `json:"religion"`
}

// Create adds a stakeholder.
// POST /api/stakeholders
func (h *StakeholderHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateStakeholderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.Nickname == "" {
		respondError(w, http.StatusBadRequest, "Missing user_id or nickname")
		return
	}

	s := &contracts.Stakeholder{
		UserID:       req.UserID,
		Nickname:     req.Nickname,
		Relationship: req.Relationship,
		Religion:     req.Religion,
	}
	if req.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid birth_date format (expected YYYY-MM-DD)")
			return
		}
		s.BirthDate = &birth
	}

	if err := h.stakeholders.Create(ctx, s); err != nil {
		h.logger.WithError(err).Error("Failed to create stakeholder")
		respondError(w, http.StatusInternalServerError, "Failed to create stakeholder")
		return
	}

	respondJSON(w, http.StatusCreated, s)
}

// Delete removes a stakeholder owned by the user.
// DELETE /api/stakeholders/{id}?userId=...
func (h *StakeholderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "Missing userId")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	deleted, err := h.stakeholders.Delete(ctx, userID, id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to delete stakeholder")
		respondError(w, http.StatusInternalServerError, "Failed to delete stakeholder")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Stakeholder not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
