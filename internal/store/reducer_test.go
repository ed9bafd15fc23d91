package store

import (
	"testing"

	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int64, category domain.Category) domain.Product {
	return domain.Product{
		ID:       id,
		Title:    "Product " + id,
		Price:    decimal.NewFromInt(price),
		Category: category,
	}
}

func reduceAll(s domain.State, actions ...domain.Action) domain.State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func TestReduce_LogInAndLogOut(t *testing.T) {
	s := InitialState()
	user := domain.User{ID: "1", Email: "a@b.c", Username: "a", EcoPoints: 150}

	s = Reduce(s, domain.LogIn{User: user})
	require.NotNil(t, s.CurrentUser)
	assert.Equal(t, user, *s.CurrentUser)
	assert.Equal(t, domain.ViewHome, s.CurrentView)

	s = Reduce(s, domain.AddToCart{Product: product("1", 220, domain.CategoryClothes)})
	s = Reduce(s, domain.LogOut{})
	assert.Nil(t, s.CurrentUser)
	assert.Empty(t, s.CartItems)
	assert.Equal(t, domain.ViewLogin, s.CurrentView)
}

func TestReduce_ToggleTheme(t *testing.T) {
	s := InitialState()
	require.Equal(t, domain.ThemeLight, s.Theme)

	s = Reduce(s, domain.ToggleTheme{})
	assert.Equal(t, domain.ThemeDark, s.Theme)
	s = Reduce(s, domain.ToggleTheme{})
	assert.Equal(t, domain.ThemeLight, s.Theme)
}

func TestReduce_SetViewIsUnconditional(t *testing.T) {
	s := InitialState()
	for _, v := range domain.Views() {
		s = Reduce(s, domain.SetView{View: v})
		assert.Equal(t, v, s.CurrentView)
	}
}

func TestReduce_SelectThenDeselect(t *testing.T) {
	s := InitialState()
	before := s.Products
	p := s.Products[2]

	s = Reduce(s, domain.SetSelectedProduct{Product: &p})
	require.NotNil(t, s.SelectedProduct)
	assert.Equal(t, p.ID, s.SelectedProduct.ID)
	assert.Equal(t, domain.ViewProductDetail, s.CurrentView)

	s = Reduce(s, domain.SetSelectedProduct{Product: nil})
	assert.Nil(t, s.SelectedProduct)
	assert.Equal(t, domain.ViewHome, s.CurrentView)
	assert.Equal(t, before, s.Products)
}

func TestReduce_AddToCartTwiceIncrementsQuantity(t *testing.T) {
	p := product("7", 100, domain.CategoryBooks)
	s := reduceAll(InitialState(), domain.AddToCart{Product: p}, domain.AddToCart{Product: p})

	require.Len(t, s.CartItems, 1)
	assert.Equal(t, "7", s.CartItems[0].Product.ID)
	assert.Equal(t, 2, s.CartItems[0].Quantity)
}

func TestReduce_RemoveFromCartDropsWholeLine(t *testing.T) {
	p1 := product("1", 220, domain.CategoryClothes)
	p2 := product("2", 1100, domain.CategoryElectronics)
	s := reduceAll(InitialState(),
		domain.AddToCart{Product: p1},
		domain.AddToCart{Product: p1},
		domain.AddToCart{Product: p1},
		domain.AddToCart{Product: p2},
		domain.RemoveFromCart{ProductID: "1"},
	)

	require.Len(t, s.CartItems, 1)
	assert.Equal(t, -1, domain.FindCartItem(s.CartItems, "1"))
	assert.Equal(t, "2", s.CartItems[0].Product.ID)

	// unknown id is harmless
	s = Reduce(s, domain.RemoveFromCart{ProductID: "missing"})
	assert.Len(t, s.CartItems, 1)
}

func TestReduce_DecrementCartItem(t *testing.T) {
	p := product("1", 220, domain.CategoryClothes)
	s := reduceAll(InitialState(), domain.AddToCart{Product: p}, domain.AddToCart{Product: p})

	s = Reduce(s, domain.DecrementCartItem{ProductID: "1"})
	require.Len(t, s.CartItems, 1)
	assert.Equal(t, 1, s.CartItems[0].Quantity)

	s = Reduce(s, domain.DecrementCartItem{ProductID: "1"})
	assert.Empty(t, s.CartItems)

	s = Reduce(s, domain.DecrementCartItem{ProductID: "1"})
	assert.Empty(t, s.CartItems)
}

func TestReduce_CartScenarioTotals(t *testing.T) {
	p1 := product("P1", 220, domain.CategoryClothes)
	p2 := product("P2", 1100, domain.CategoryElectronics)
	s := InitialState()
	s.CartItems = nil

	s = reduceAll(s,
		domain.AddToCart{Product: p1},
		domain.AddToCart{Product: p1},
		domain.AddToCart{Product: p2},
	)

	require.Len(t, s.CartItems, 2)
	quantities := map[string]int{}
	for _, item := range s.CartItems {
		quantities[item.Product.ID] = item.Quantity
	}
	assert.Equal(t, map[string]int{"P1": 2, "P2": 1}, quantities)

	summary := domain.Summarize(s.CartItems)
	assert.Equal(t, 2, summary.Lines)
	assert.Equal(t, 3, summary.ItemCount)
	assert.True(t, decimal.NewFromInt(1540).Equal(summary.Total), "total was %s", summary.Total)
}

func TestReduce_ToggleCart(t *testing.T) {
	s := Reduce(InitialState(), domain.ToggleCart{})
	assert.True(t, s.CartOpen)
	s = Reduce(s, domain.ToggleCart{})
	assert.False(t, s.CartOpen)
}

func TestReduce_AddProductPrependsAndRewards(t *testing.T) {
	s := Reduce(InitialState(), domain.LogIn{User: domain.User{ID: "1", EcoPoints: 0}})
	p := product("new", 50, domain.CategoryOthers)

	s = Reduce(s, domain.AddProduct{Product: p})

	assert.Equal(t, "new", s.Products[0].ID)
	assert.Len(t, s.Products, 7)
	assert.Equal(t, domain.ListingReward, s.CurrentUser.EcoPoints)
}

func TestReduce_AddProductWithoutUser(t *testing.T) {
	s := Reduce(InitialState(), domain.AddProduct{Product: product("new", 50, domain.CategoryOthers)})

	assert.Nil(t, s.CurrentUser)
	assert.Equal(t, "new", s.Products[0].ID)
}

func TestReduce_ToggleChat(t *testing.T) {
	s := Reduce(InitialState(), domain.ToggleChat{CounterpartID: "seller2"})
	assert.True(t, s.ChatOpen)
	assert.Equal(t, "seller2", s.ChatWith)

	s = Reduce(s, domain.ToggleChat{})
	assert.False(t, s.ChatOpen)
	assert.Empty(t, s.ChatWith)
}

func TestReduce_Filters(t *testing.T) {
	s := reduceAll(InitialState(), domain.SetSearch{Text: "lamp"}, domain.SetCategory{Category: domain.CategoryElectronics})
	assert.Equal(t, "lamp", s.SearchQuery)
	assert.Equal(t, domain.CategoryElectronics, s.SelectedCategory)

	s = Reduce(s, domain.SetCategory{Category: domain.CategoryAll})
	assert.Equal(t, domain.CategoryAll, s.SelectedCategory)
}

func TestReduce_UpdateUser(t *testing.T) {
	name := "renamed"
	patch := domain.UserPatch{Username: &name}

	s := Reduce(InitialState(), domain.UpdateUser{Patch: patch})
	assert.Nil(t, s.CurrentUser, "no user, no-op")

	s = Reduce(s, domain.LogIn{User: domain.User{ID: "1", Email: "old@x.y", Username: "old", EcoPoints: 3}})
	s = Reduce(s, domain.UpdateUser{Patch: patch})
	assert.Equal(t, "renamed", s.CurrentUser.Username)
	assert.Equal(t, "old@x.y", s.CurrentUser.Email)
	assert.Equal(t, 3, s.CurrentUser.EcoPoints)
}

func TestReduce_ClearCartAwardsPerLine(t *testing.T) {
	p1 := product("1", 220, domain.CategoryClothes)
	p2 := product("2", 1100, domain.CategoryElectronics)
	s := reduceAll(InitialState(),
		domain.LogIn{User: domain.User{ID: "1", EcoPoints: 150}},
		domain.AddToCart{Product: p1},
		domain.AddToCart{Product: p1},
		domain.AddToCart{Product: p2},
		domain.ClearCart{},
	)

	assert.Empty(t, s.CartItems)
	assert.Equal(t, 150+2*domain.CheckoutRewardPerLine, s.CurrentUser.EcoPoints)

	s = Reduce(s, domain.ClearCart{})
	assert.Equal(t, 160, s.CurrentUser.EcoPoints)
}

func TestReduce_NilActionIsNoop(t *testing.T) {
	s := InitialState()
	assert.Equal(t, s, Reduce(s, nil))
}

func TestReduce_DoesNotMutatePreviousState(t *testing.T) {
	p := product("1", 220, domain.CategoryClothes)
	prev := Reduce(InitialState(), domain.AddToCart{Product: p})
	prevProducts := append([]domain.Product(nil), prev.Products...)

	_ = reduceAll(prev,
		domain.AddToCart{Product: p},
		domain.DecrementCartItem{ProductID: "1"},
		domain.AddProduct{Product: product("x", 1, domain.CategoryOthers)},
		domain.RemoveFromCart{ProductID: "1"},
	)

	require.Len(t, prev.CartItems, 1)
	assert.Equal(t, 1, prev.CartItems[0].Quantity)
	assert.Equal(t, prevProducts, prev.Products)
}
