package http

import (
	"net/http"

	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/ecofinds/marketplace/internal/session"
)

type SessionHandler struct {
	session *session.Session
	cfg     session.Config
}

func NewSessionHandler(s *session.Session, cfg session.Config) *SessionHandler {
	return &SessionHandler{session: s, cfg: cfg}
}

type ProfileRequestDTO struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Login schedules the sign in; the user shows up in the state after the
// login delay
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req session.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.session.Login(req)
	respondJSON(w, http.StatusAccepted, AcceptedResponse{Status: "pending", Delay: h.cfg.LoginDelay.String()})
}

func (h *SessionHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.session.Logout())
}

func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}

	state := h.session.UpdateProfile(domain.UserPatch{Username: req.Username, Email: req.Email})
	respondJSON(w, http.StatusOK, state)
}
