package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownAction = errors.New("unknown action type")

// Action is a named state transition. The set is closed: only types in this
// package implement it.
type Action interface {
	Type() string
	isAction()
}

type (
	LogIn              struct{ User User }
	LogOut             struct{}
	ToggleTheme        struct{}
	SetView            struct{ View View }
	SetSelectedProduct struct{ Product *Product } // nil clears the selection
	AddToCart          struct{ Product Product }
	RemoveFromCart     struct{ ProductID string }
	DecrementCartItem  struct{ ProductID string }
	ToggleCart         struct{}
	AddProduct         struct{ Product Product }
	ToggleChat         struct{ CounterpartID string } // "" clears the counterpart
	SetSearch          struct{ Text string }
	SetCategory        struct{ Category Category }
	UpdateUser         struct{ Patch UserPatch }
	ClearCart          struct{}
)

func (LogIn) Type() string              { return "LOGIN" }
func (LogOut) Type() string             { return "LOGOUT" }
func (ToggleTheme) Type() string        { return "TOGGLE_THEME" }
func (SetView) Type() string            { return "SET_VIEW" }
func (SetSelectedProduct) Type() string { return "SET_SELECTED_PRODUCT" }
func (AddToCart) Type() string          { return "ADD_TO_CART" }
func (RemoveFromCart) Type() string     { return "REMOVE_FROM_CART" }
func (DecrementCartItem) Type() string  { return "DECREMENT_CART_ITEM" }
func (ToggleCart) Type() string         { return "TOGGLE_CART" }
func (AddProduct) Type() string         { return "ADD_PRODUCT" }
func (ToggleChat) Type() string         { return "TOGGLE_CHAT" }
func (SetSearch) Type() string          { return "SET_SEARCH" }
func (SetCategory) Type() string        { return "SET_CATEGORY" }
func (UpdateUser) Type() string         { return "UPDATE_USER" }
func (ClearCart) Type() string          { return "CLEAR_CART" }

func (LogIn) isAction()              {}
func (LogOut) isAction()             {}
func (ToggleTheme) isAction()        {}
func (SetView) isAction()            {}
func (SetSelectedProduct) isAction() {}
func (AddToCart) isAction()          {}
func (RemoveFromCart) isAction()     {}
func (DecrementCartItem) isAction()  {}
func (ToggleCart) isAction()         {}
func (AddProduct) isAction()         {}
func (ToggleChat) isAction()         {}
func (SetSearch) isAction()          {}
func (SetCategory) isAction()        {}
func (UpdateUser) isAction()         {}
func (ClearCart) isAction()          {}

// DecodeAction builds the action named by typ from its JSON payload.
// Payload-less actions ignore payload.
func DecodeAction(typ string, payload json.RawMessage) (Action, error) {
	switch typ {
	case "LOGIN":
		var u User
		if err := decodePayload(payload, &u); err != nil {
			return nil, err
		}
		return LogIn{User: u}, nil
	case "LOGOUT":
		return LogOut{}, nil
	case "TOGGLE_THEME":
		return ToggleTheme{}, nil
	case "SET_VIEW":
		var v View
		if err := decodePayload(payload, &v); err != nil {
			return nil, err
		}
		return SetView{View: v}, nil
	case "SET_SELECTED_PRODUCT":
		var p *Product
		if err := decodePayload(payload, &p); err != nil {
			return nil, err
		}
		return SetSelectedProduct{Product: p}, nil
	case "ADD_TO_CART":
		var p Product
		if err := decodePayload(payload, &p); err != nil {
			return nil, err
		}
		return AddToCart{Product: p}, nil
	case "REMOVE_FROM_CART":
		var id string
		if err := decodePayload(payload, &id); err != nil {
			return nil, err
		}
		return RemoveFromCart{ProductID: id}, nil
	case "DECREMENT_CART_ITEM":
		var id string
		if err := decodePayload(payload, &id); err != nil {
			return nil, err
		}
		return DecrementCartItem{ProductID: id}, nil
	case "TOGGLE_CART":
		return ToggleCart{}, nil
	case "ADD_PRODUCT":
		var p Product
		if err := decodePayload(payload, &p); err != nil {
			return nil, err
		}
		return AddProduct{Product: p}, nil
	case "TOGGLE_CHAT":
		var id string
		if err := decodePayload(payload, &id); err != nil {
			return nil, err
		}
		return ToggleChat{CounterpartID: id}, nil
	case "SET_SEARCH":
		var text string
		if err := decodePayload(payload, &text); err != nil {
			return nil, err
		}
		return SetSearch{Text: text}, nil
	case "SET_CATEGORY":
		var c Category
		if err := decodePayload(payload, &c); err != nil {
			return nil, err
		}
		return SetCategory{Category: c}, nil
	case "UPDATE_USER":
		var patch UserPatch
		if err := decodePayload(payload, &patch); err != nil {
			return nil, err
		}
		return UpdateUser{Patch: patch}, nil
	case "CLEAR_CART":
		return ClearCart{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, typ)
}

func decodePayload(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
