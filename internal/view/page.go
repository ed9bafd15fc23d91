package view

import (
	"time"

	"github.com/ecofinds/marketplace/internal/catalog"
	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// PointsGoal is the eco points target shown on the profile
	PointsGoal = 500

	tipRotation = 10 * time.Second
)

var ecoTips = []string{
	"Buy second-hand to reduce carbon footprint",
	"One person's trash is another's treasure",
	"Sustainable shopping saves the planet",
	"Circular economy starts with you",
}

// Page is what a screen displays. Only the section of the rendered screen
// is set.
type Page struct {
	Screen   Screen             `json:"screen"`
	Theme    domain.Theme       `json:"theme"`
	User     *domain.User       `json:"user,omitempty"`
	Cart     domain.CartSummary `json:"cart"`
	CartOpen bool               `json:"cart_open"`
	ChatOpen bool               `json:"chat_open"`

	Catalog *CatalogSection `json:"catalog,omitempty"`
	Detail  *DetailSection  `json:"detail,omitempty"`
	Profile *ProfileSection `json:"profile,omitempty"`
}

type CatalogSection struct {
	Search     string            `json:"search"`
	Category   domain.Category   `json:"category"`
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
	Count      int               `json:"count"`
	Featured   []domain.Product  `json:"featured"`
	Tip        string            `json:"tip"`
}

type DetailSection struct {
	Product       domain.Product  `json:"product"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	InCart        int             `json:"in_cart"`
}

type ProfileSection struct {
	Listings     []domain.Product `json:"listings"`
	Listed       int              `json:"listed"`
	Sold         int              `json:"sold"`
	CO2SavedKg   decimal.Decimal  `json:"co2_saved_kg"`
	PointsGoal   int              `json:"points_goal"`
	PointsToGo   int              `json:"points_to_go"`
	ProgressPerc int              `json:"progress_percent"`
}

// Render builds the page for the state's current view. Screens that need
// data the state lacks fall back: detail without a selection shows the
// catalog, profile without a user shows login.
func Render(s domain.State, now time.Time) Page {
	page := Page{
		Screen:   Resolve(s.CurrentView),
		Theme:    s.Theme,
		User:     s.CurrentUser,
		Cart:     domain.Summarize(s.CartItems),
		CartOpen: s.CartOpen,
		ChatOpen: s.ChatOpen,
	}

	if page.Screen == ScreenProductDetail && s.SelectedProduct == nil {
		page.Screen = ScreenCatalog
	}
	if page.Screen == ScreenProfile && s.CurrentUser == nil {
		page.Screen = ScreenLogin
	}

	switch page.Screen {
	case ScreenCatalog:
		page.Catalog = renderCatalog(s, now)
	case ScreenProductDetail:
		page.Detail = renderDetail(s)
	case ScreenProfile:
		page.Profile = renderProfile(s)
	}
	return page
}

func renderCatalog(s domain.State, now time.Time) *CatalogSection {
	products := catalog.Filter(s.Products, s.SearchQuery, s.SelectedCategory)
	return &CatalogSection{
		Search:     s.SearchQuery,
		Category:   s.SelectedCategory,
		Categories: domain.Categories(),
		Products:   products,
		Count:      len(products),
		Featured:   catalog.Featured(s.Products),
		Tip:        TipAt(now),
	}
}

func renderDetail(s domain.State) *DetailSection {
	p := *s.SelectedProduct
	inCart := 0
	if i := domain.FindCartItem(s.CartItems, p.ID); i >= 0 {
		inCart = s.CartItems[i].Quantity
	}
	return &DetailSection{
		Product:       p,
		OriginalPrice: p.Price.Mul(decimal.NewFromFloat(1.4)).Round(0),
		InCart:        inCart,
	}
}

func renderProfile(s domain.State) *ProfileSection {
	listings := catalog.BySeller(s.Products, s.CurrentUser.ID)
	n := len(listings)
	points := s.CurrentUser.EcoPoints

	return &ProfileSection{
		Listings:     listings,
		Listed:       n,
		Sold:         n * 7 / 10,
		CO2SavedKg:   decimal.NewFromFloat(1.2).Mul(decimal.NewFromInt(int64(n))).Round(1),
		PointsGoal:   PointsGoal,
		PointsToGo:   max(PointsGoal-points, 0),
		ProgressPerc: min(max(points, 0)*100/PointsGoal, 100),
	}
}

// TipAt returns the eco tip shown at now; tips rotate every ten seconds
func TipAt(now time.Time) string {
	slot := now.UnixMilli() / tipRotation.Milliseconds()
	return ecoTips[int(slot%int64(len(ecoTips)))]
}
