package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tee := Product{ID: "1", Price: decimal.NewFromInt(220)}
	bank := Product{ID: "2", Price: decimal.NewFromInt(1100)}

	summary := Summarize([]CartItem{{Product: tee, Quantity: 2}, {Product: bank, Quantity: 1}})

	assert.Equal(t, 2, summary.Lines)
	assert.Equal(t, 3, summary.ItemCount)
	assert.True(t, decimal.NewFromInt(1540).Equal(summary.Total))
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.Lines)
	assert.Zero(t, summary.ItemCount)
	assert.True(t, summary.Total.IsZero())
}

func TestFindCartItem(t *testing.T) {
	items := []CartItem{{Product: Product{ID: "a"}}, {Product: Product{ID: "b"}}}

	assert.Equal(t, 1, FindCartItem(items, "b"))
	assert.Equal(t, -1, FindCartItem(items, "c"))
}

func TestUserPatch_Apply(t *testing.T) {
	u := User{ID: "1", Email: "old@x.y", Username: "old", EcoPoints: 150}
	name := "new"

	got := UserPatch{Username: &name}.Apply(u)

	assert.Equal(t, "new", got.Username)
	assert.Equal(t, "old@x.y", got.Email)
	assert.Equal(t, 150, got.EcoPoints)
	assert.Equal(t, "old", u.Username)
}

func TestState_CloneIsIndependent(t *testing.T) {
	s := State{
		CurrentUser: &User{ID: "1", EcoPoints: 10},
		Products:    []Product{{ID: "1"}},
	}

	c := s.Clone()
	c.CurrentUser.EcoPoints = 99
	c.Products[0].ID = "x"

	assert.Equal(t, 10, s.CurrentUser.EcoPoints)
	assert.Equal(t, "1", s.Products[0].ID)
	assert.True(t, s.LoggedIn())
	assert.False(t, State{}.LoggedIn())
}

func TestState_CloneCopiesImages(t *testing.T) {
	product := Product{ID: "2", Images: []string{"front.jpg", "back.jpg"}}
	selected := product
	s := State{
		Products:        []Product{product},
		CartItems:       []CartItem{{Product: product, Quantity: 1}},
		SelectedProduct: &selected,
	}

	c := s.Clone()
	c.Products[0].Images[0] = "changed"
	c.CartItems[0].Product.Images[0] = "changed"
	c.SelectedProduct.Images[1] = "changed"

	assert.Equal(t, []string{"front.jpg", "back.jpg"}, s.Products[0].Images)
	assert.Equal(t, []string{"front.jpg", "back.jpg"}, s.CartItems[0].Product.Images)
	assert.Equal(t, []string{"front.jpg", "back.jpg"}, s.SelectedProduct.Images)
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, CategoryAll.Valid())
	assert.False(t, Category("Toys").Valid())
}
