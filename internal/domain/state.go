package domain

import (
	"slices"
	"time"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// View is a full-screen state the storefront can be in
type View string

const (
	ViewLogin         View = "login"
	ViewHome          View = "home"
	ViewAddProduct    View = "add-product"
	ViewProductDetail View = "product-detail"
	ViewProfile       View = "profile"
	ViewSuccess       View = "success"
)

// Views lists every view
func Views() []View {
	return []View{ViewLogin, ViewHome, ViewAddProduct, ViewProductDetail, ViewProfile, ViewSuccess}
}

// State is the whole storefront state. Transitions replace collections
// instead of editing them, so a State value can be shared after it is built.
type State struct {
	CurrentUser      *User      `json:"current_user"`
	Products         []Product  `json:"products"`
	CartItems        []CartItem `json:"cart_items"`
	Theme            Theme      `json:"theme"`
	CurrentView      View       `json:"current_view"`
	SelectedProduct  *Product   `json:"selected_product"`
	CartOpen         bool       `json:"cart_open"`
	ChatOpen         bool       `json:"chat_open"`
	ChatWith         string     `json:"chat_with"`
	SearchQuery      string     `json:"search_query"`
	SelectedCategory Category   `json:"selected_category"`
}

// Clone returns a copy sharing no memory with s, for handing to readers
func (s State) Clone() State {
	s.Products = slices.Clone(s.Products)
	for i := range s.Products {
		s.Products[i].Images = slices.Clone(s.Products[i].Images)
	}
	s.CartItems = slices.Clone(s.CartItems)
	for i := range s.CartItems {
		s.CartItems[i].Product.Images = slices.Clone(s.CartItems[i].Product.Images)
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		s.CurrentUser = &u
	}
	if s.SelectedProduct != nil {
		p := *s.SelectedProduct
		p.Images = slices.Clone(p.Images)
		s.SelectedProduct = &p
	}
	return s
}

// LoggedIn reports whether a user session is active
func (s State) LoggedIn() bool {
	return s.CurrentUser != nil
}

type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}
