package store

import (
	"time"

	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/shopspring/decimal"
)

// InitialState is the state the storefront starts in: logged out on the
// login screen with the sample catalog.
func InitialState() domain.State {
	return domain.State{
		CurrentUser:      nil,
		Products:         SeedCatalog(time.Now()),
		CartItems:        []domain.CartItem{},
		Theme:            domain.ThemeLight,
		CurrentView:      domain.ViewLogin,
		SelectedProduct:  nil,
		CartOpen:         false,
		ChatOpen:         false,
		ChatWith:         "",
		SearchQuery:      "",
		SelectedCategory: domain.CategoryAll,
	}
}

// SeedCatalog returns the sample listings, all created at now
func SeedCatalog(now time.Time) []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Title:       "Organic Cotton T-shirt",
			Description: "Classic cotton T-shirt made from soft, breathable fabric for all-day comfort and effortless style.",
			Price:       decimal.NewFromInt(220),
			Category:    domain.CategoryClothes,
			Image:       "https://media.istockphoto.com/id/1345934516/photo/natural-organic-cotton-t-shirts-and-cotton-plant-flowers-on-white-table-eco-clothes-fashion.jpg",
			SellerID:    "seller1",
			SellerName:  "Rennan Mukhia",
			CreatedAt:   now,
			Featured:    true,
		},
		{
			ID:          "2",
			Title:       "Solar Power Bank - 20000MAh",
			Description: "Portable Charger powered by sunlight! that keeps your device alive sustainably.",
			Price:       decimal.NewFromInt(1100),
			Category:    domain.CategoryElectronics,
			Image:       "https://m.media-amazon.com/images/I/81MiYNnpJkL._UF1000,1000_QL80_.jpg",
			Images: []string{
				"https://img.joomcdn.net/ac6f45be9a3f1955d50aba8f38a9b75b32a62b2d_original.jpeg",
				"https://m.media-amazon.com/images/I/81MiYNnpJkL._UF1000,1000_QL80_.jpg",
			},
			SellerID:   "seller2",
			SellerName: "Sagar Tripathi",
			CreatedAt:  now,
			Featured:   true,
		},
		{
			ID:          "3",
			Title:       "Fantasy Novels - Pack of 5",
			Description: "Set of 5 classic novels in great condition. Give these books a second life! I bet you wont regret it.",
			Price:       decimal.NewFromInt(599),
			Category:    domain.CategoryBooks,
			Image:       "https://images.pexels.com/photos/1029141/pexels-photo-1029141.jpeg?auto=compress&cs=tinysrgb&w=500",
			SellerID:    "seller3",
			SellerName:  "Harshitha Mishra",
			CreatedAt:   now,
		},
		{
			ID:          "4",
			Title:       "Energy Efficient LED desk Lamp",
			Description: "LED desk lamp which is every efficient with low power usage and high intensity.",
			Price:       decimal.NewFromInt(299),
			Category:    domain.CategoryElectronics,
			Image:       "https://m.media-amazon.com/images/I/614aNUDoCxL.jpg",
			SellerID:    "seller1",
			SellerName:  "Sai Ananya Vasu Rao",
			CreatedAt:   now,
		},
		{
			ID:          "5",
			Title:       "Recycled Plastic Yoga Map",
			Description: "A Durable, non slip yoga mat made from 100% Recycled Plastic bottle.",
			Price:       decimal.NewFromInt(899),
			Category:    domain.CategoryOthers,
			Image:       "https://cdn.thewirecutter.com/wp-content/media/2024/07/yoga-mat-2048px-1633-2x1-1.jpg",
			SellerID:    "seller2",
			SellerName:  "Aditi Hurkat",
			CreatedAt:   now,
			Featured:    true,
		},
		{
			ID:          "6",
			Title:       "Eco Friendly Sneakers",
			Description: "Stylish sneakers made with recycled plastics and natural rubber.",
			Price:       decimal.NewFromInt(699),
			Category:    domain.CategoryClothes,
			Image:       "https://peppermintmag.com/wp-content/uploads/2020/09/ethical-and-sustainable-sneakers_primary.jpg",
			SellerID:    "seller3",
			SellerName:  "Chiranthan CR",
			CreatedAt:   now,
		},
	}
}
