package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/ecofinds/marketplace/internal/session"
	"github.com/ecofinds/marketplace/internal/view"
)

// StateHandler exposes the raw state, the rendered screen and the generic
// action endpoint
type StateHandler struct {
	session *session.Session
	now     func() time.Time
}

func NewStateHandler(s *session.Session) *StateHandler {
	return &StateHandler{session: s, now: time.Now}
}

type ActionRequestDTO struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type SetViewRequestDTO struct {
	View domain.View `json:"view"`
}

type FiltersRequestDTO struct {
	Search   *string          `json:"search,omitempty"`
	Category *domain.Category `json:"category,omitempty"`
}

func (h *StateHandler) GetState(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.session.State())
}

func (h *StateHandler) GetScreen(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, view.Render(h.session.State(), h.now()))
}

// Dispatch applies any action by its wire name
func (h *StateHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req ActionRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}

	action, err := domain.DecodeAction(req.Type, req.Payload)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownAction) {
			respondErrorDetails(w, http.StatusBadRequest, "unknown_action", "unknown action type", err)
			return
		}
		respondErrorDetails(w, http.StatusBadRequest, "invalid_payload", "invalid action payload", err)
		return
	}

	respondJSON(w, http.StatusOK, h.session.Dispatch(action))
}

func (h *StateHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req SetViewRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.session.Dispatch(domain.SetView{View: req.View}))
}

func (h *StateHandler) ToggleTheme(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.session.Dispatch(domain.ToggleTheme{}))
}

// SetFilters updates the search text and/or category. Omitted fields are
// left alone.
func (h *StateHandler) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req FiltersRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}

	state := h.session.State()
	if req.Search != nil {
		state = h.session.Dispatch(domain.SetSearch{Text: *req.Search})
	}
	if req.Category != nil {
		state = h.session.Dispatch(domain.SetCategory{Category: *req.Category})
	}
	respondJSON(w, http.StatusOK, state)
}
