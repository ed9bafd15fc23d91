package store

import (
	"slices"

	"github.com/ecofinds/marketplace/internal/domain"
)

// Reduce handles all state transitions.
// This is a pure function: it never fails and never edits the slices of s,
// every changed collection is rebuilt.
func Reduce(s domain.State, action domain.Action) domain.State {
	switch a := action.(type) {
	case domain.LogIn:
		u := a.User
		s.CurrentUser = &u
		s.CurrentView = domain.ViewHome

	case domain.LogOut:
		s.CurrentUser = nil
		s.CurrentView = domain.ViewLogin
		s.CartItems = []domain.CartItem{}

	case domain.ToggleTheme:
		if s.Theme == domain.ThemeLight {
			s.Theme = domain.ThemeDark
		} else {
			s.Theme = domain.ThemeLight
		}

	case domain.SetView:
		s.CurrentView = a.View

	case domain.SetSelectedProduct:
		if a.Product != nil {
			p := *a.Product
			s.SelectedProduct = &p
			s.CurrentView = domain.ViewProductDetail
		} else {
			s.SelectedProduct = nil
			s.CurrentView = domain.ViewHome
		}

	case domain.AddToCart:
		s.CartItems = addToCart(s.CartItems, a.Product)

	case domain.RemoveFromCart:
		s.CartItems = slices.DeleteFunc(slices.Clone(s.CartItems), func(item domain.CartItem) bool {
			return item.Product.ID == a.ProductID
		})

	case domain.DecrementCartItem:
		s.CartItems = decrementCartItem(s.CartItems, a.ProductID)

	case domain.ToggleCart:
		s.CartOpen = !s.CartOpen

	case domain.AddProduct:
		products := make([]domain.Product, 0, len(s.Products)+1)
		s.Products = append(append(products, a.Product), s.Products...)
		s.CurrentUser = awardPoints(s.CurrentUser, domain.ListingReward)

	case domain.ToggleChat:
		s.ChatOpen = !s.ChatOpen
		s.ChatWith = a.CounterpartID

	case domain.SetSearch:
		s.SearchQuery = a.Text

	case domain.SetCategory:
		s.SelectedCategory = a.Category

	case domain.UpdateUser:
		if s.CurrentUser != nil {
			u := a.Patch.Apply(*s.CurrentUser)
			s.CurrentUser = &u
		}

	case domain.ClearCart:
		s.CurrentUser = awardPoints(s.CurrentUser, len(s.CartItems)*domain.CheckoutRewardPerLine)
		s.CartItems = []domain.CartItem{}

	default:
		// nil or foreign actions leave the state unchanged
	}
	return s
}

func addToCart(items []domain.CartItem, product domain.Product) []domain.CartItem {
	next := slices.Clone(items)
	if i := domain.FindCartItem(next, product.ID); i >= 0 {
		next[i].Quantity++
		return next
	}
	return append(next, domain.CartItem{Product: product, Quantity: 1})
}

func decrementCartItem(items []domain.CartItem, productID string) []domain.CartItem {
	i := domain.FindCartItem(items, productID)
	if i < 0 {
		return items
	}
	next := slices.Clone(items)
	if next[i].Quantity <= 1 {
		return slices.Delete(next, i, i+1)
	}
	next[i].Quantity--
	return next
}

func awardPoints(u *domain.User, points int) *domain.User {
	if u == nil {
		return nil
	}
	awarded := *u
	awarded.EcoPoints += points
	return &awarded
}
