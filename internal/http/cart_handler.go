package http

import (
	"net/http"

	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/ecofinds/marketplace/internal/session"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	session *session.Session
}

func NewCartHandler(s *session.Session) *CartHandler {
	return &CartHandler{session: s}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type CartResponse struct {
	Items   []domain.CartItem  `json:"items"`
	Summary domain.CartSummary `json:"summary"`
	Open    bool               `json:"open"`
}

type CheckoutResponse struct {
	Summary domain.CartSummary `json:"summary"`
	State   domain.State       `json:"state"`
}

func cartResponse(s domain.State) CartResponse {
	return CartResponse{
		Items:   s.CartItems,
		Summary: domain.Summarize(s.CartItems),
		Open:    s.CartOpen,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, cartResponse(h.session.State()))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}

	state, err := h.session.AddToCartByID(req.ProductID)
	if err != nil {
		handleSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, cartResponse(state))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	respondJSON(w, http.StatusOK, cartResponse(h.session.RemoveFromCart(productID)))
}

func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	respondJSON(w, http.StatusOK, cartResponse(h.session.DecreaseQuantity(productID)))
}

func (h *CartHandler) Toggle(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, cartResponse(h.session.Dispatch(domain.ToggleCart{})))
}

func (h *CartHandler) Checkout(w http.ResponseWriter, _ *http.Request) {
	summary, state := h.session.Checkout()
	respondJSON(w, http.StatusOK, CheckoutResponse{Summary: summary, State: state})
}
