package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ecofinds/marketplace/internal/catalog"
	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/ecofinds/marketplace/internal/session"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	session *session.Session
	catalog *catalog.Service
	cfg     session.Config
	timeout time.Duration
}

func NewProductHandler(s *session.Session, c *catalog.Service, cfg session.Config, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		session: s,
		catalog: c,
		cfg:     cfg,
		timeout: timeout,
	}
}

type ProductsResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

type DescribeRequestDTO struct {
	Title string `json:"title"`
}

type DescribeResponse struct {
	Description string `json:"description"`
}

// List returns the feed. Query parameters search and category default to
// the filters held in the state.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	state := h.session.State()
	search, category := state.SearchQuery, state.SelectedCategory
	q := r.URL.Query()
	if q.Has("search") {
		search = q.Get("search")
	}
	if q.Has("category") {
		category = domain.Category(q.Get("category"))
	}

	products, err := h.catalog.Feed(ctx, search, category)
	if err != nil {
		respondErrorDetails(w, http.StatusInternalServerError, "internal_error", "failed to load feed", err)
		return
	}
	respondJSON(w, http.StatusOK, ProductsResponse{Products: products, Count: len(products)})
}

func (h *ProductHandler) Featured(w http.ResponseWriter, _ *http.Request) {
	products := h.catalog.Featured()
	respondJSON(w, http.StatusOK, ProductsResponse{Products: products, Count: len(products)})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, ok := h.catalog.Product(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product "+id+" not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Create schedules a new listing; it is published after the listing delay
// if the add-product screen is still open
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req session.ListingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.session.SubmitListing(req)
	respondJSON(w, http.StatusAccepted, AcceptedResponse{Status: "pending", Delay: h.cfg.ListingDelay.String()})
}

func (h *ProductHandler) Describe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req DescribeRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}

	text, err := h.session.GenerateDescription(ctx, req.Title)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			respondError(w, http.StatusGatewayTimeout, "timeout", "description generation timed out")
			return
		}
		respondErrorDetails(w, http.StatusServiceUnavailable, "cancelled", "description generation cancelled", err)
		return
	}
	respondJSON(w, http.StatusOK, DescribeResponse{Description: text})
}

func (h *ProductHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, err := h.session.SelectProduct(id)
	if err != nil {
		handleSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (h *ProductHandler) ClearSelection(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.session.ClearSelection())
}

// handleSessionError maps session errors to HTTP status codes
func handleSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, session.ErrNothingToSend):
		respondError(w, http.StatusBadRequest, "nothing_to_send", err.Error())
	case errors.Is(err, session.ErrChatClosed):
		respondError(w, http.StatusConflict, "chat_closed", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
