package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		payload string
		want    Action
	}{
		{"login", "LOGIN", `{"id":"1","email":"a@b.c","username":"a","eco_points":150}`,
			LogIn{User: User{ID: "1", Email: "a@b.c", Username: "a", EcoPoints: 150}}},
		{"logout ignores payload", "LOGOUT", `{"junk":true}`, LogOut{}},
		{"theme", "TOGGLE_THEME", ``, ToggleTheme{}},
		{"view", "SET_VIEW", `"profile"`, SetView{View: ViewProfile}},
		{"clear selection", "SET_SELECTED_PRODUCT", `null`, SetSelectedProduct{}},
		{"remove", "REMOVE_FROM_CART", `"3"`, RemoveFromCart{ProductID: "3"}},
		{"decrement", "DECREMENT_CART_ITEM", `"3"`, DecrementCartItem{ProductID: "3"}},
		{"cart", "TOGGLE_CART", ``, ToggleCart{}},
		{"chat", "TOGGLE_CHAT", `"seller2"`, ToggleChat{CounterpartID: "seller2"}},
		{"chat without counterpart", "TOGGLE_CHAT", ``, ToggleChat{}},
		{"search", "SET_SEARCH", `"lamp"`, SetSearch{Text: "lamp"}},
		{"category", "SET_CATEGORY", `"Books"`, SetCategory{Category: CategoryBooks}},
		{"clear cart", "CLEAR_CART", ``, ClearCart{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAction(tt.typ, json.RawMessage(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.typ, got.Type())
		})
	}
}

func TestDecodeAction_Product(t *testing.T) {
	got, err := DecodeAction("ADD_TO_CART", json.RawMessage(`{"id":"7","title":"Jute Bag","price":"45.50","category":"Others"}`))
	require.NoError(t, err)

	add, ok := got.(AddToCart)
	require.True(t, ok)
	assert.Equal(t, "7", add.Product.ID)
	assert.Equal(t, "45.5", add.Product.Price.String())
	assert.Equal(t, CategoryOthers, add.Product.Category)
}

func TestDecodeAction_UserPatch(t *testing.T) {
	got, err := DecodeAction("UPDATE_USER", json.RawMessage(`{"username":"eco"}`))
	require.NoError(t, err)

	update := got.(UpdateUser)
	require.NotNil(t, update.Patch.Username)
	assert.Equal(t, "eco", *update.Patch.Username)
	assert.Nil(t, update.Patch.Email)
}

func TestDecodeAction_Errors(t *testing.T) {
	_, err := DecodeAction("CHECKOUT", nil)
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = DecodeAction("SET_SEARCH", json.RawMessage(`{`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownAction)
}
