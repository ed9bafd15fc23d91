package view

import "github.com/ecofinds/marketplace/internal/domain"

// Screen is one of the display variants of the storefront
type Screen string

const (
	ScreenLogin           Screen = "login"
	ScreenCatalog         Screen = "catalog"
	ScreenAddProduct      Screen = "add-product"
	ScreenProductDetail   Screen = "product-detail"
	ScreenProfile         Screen = "profile"
	ScreenPurchaseSuccess Screen = "purchase-success"
)

// Resolve maps a view to its screen. Unknown views show the catalog.
func Resolve(v domain.View) Screen {
	switch v {
	case domain.ViewLogin:
		return ScreenLogin
	case domain.ViewHome:
		return ScreenCatalog
	case domain.ViewAddProduct:
		return ScreenAddProduct
	case domain.ViewProductDetail:
		return ScreenProductDetail
	case domain.ViewProfile:
		return ScreenProfile
	case domain.ViewSuccess:
		return ScreenPurchaseSuccess
	default:
		return ScreenCatalog
	}
}
