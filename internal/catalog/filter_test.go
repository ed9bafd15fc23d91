package catalog

import (
	"testing"
	"time"

	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/ecofinds/marketplace/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_EmptyMatchesAll(t *testing.T) {
	products := store.SeedCatalog(time.Now())

	assert.Equal(t, ids(products), ids(Filter(products, "", domain.CategoryAll)))
}

func TestFilter_CategoryOnly(t *testing.T) {
	products := store.SeedCatalog(time.Now())

	books := Filter(products, "", domain.CategoryBooks)
	require.NotEmpty(t, books)
	for _, p := range books {
		assert.Equal(t, domain.CategoryBooks, p.Category)
	}

	var want []string
	for _, p := range products {
		if p.Category == domain.CategoryBooks {
			want = append(want, p.ID)
		}
	}
	assert.Equal(t, want, ids(books))
}

func TestFilter_SearchIsCaseInsensitiveOverTitleAndDescription(t *testing.T) {
	products := store.SeedCatalog(time.Now())

	assert.Equal(t, []string{"4"}, ids(Filter(products, "led DESK", domain.CategoryAll)))
	// "sunlight" appears only in the power bank description
	assert.Equal(t, []string{"2"}, ids(Filter(products, "SUNLIGHT", domain.CategoryAll)))
	assert.Empty(t, Filter(products, "no such thing", domain.CategoryAll))
}

func TestFilter_SearchAndCategoryConjunction(t *testing.T) {
	products := store.SeedCatalog(time.Now())

	assert.Equal(t, []string{"1", "6"}, ids(Filter(products, "", domain.CategoryClothes)))
	assert.Equal(t, []string{"6"}, ids(Filter(products, "recycled", domain.CategoryClothes)))
}

func TestFilter_Idempotent(t *testing.T) {
	products := store.SeedCatalog(time.Now())

	cases := []struct {
		search   string
		category domain.Category
	}{
		{"", domain.CategoryAll},
		{"eco", domain.CategoryAll},
		{"", domain.CategoryElectronics},
		{"e", domain.CategoryClothes},
	}
	for _, c := range cases {
		once := Filter(products, c.search, c.category)
		twice := Filter(once, c.search, c.category)
		assert.Equal(t, ids(once), ids(twice), "search=%q category=%q", c.search, c.category)
	}
}

func TestFeaturedAndBySeller(t *testing.T) {
	products := store.SeedCatalog(time.Now())

	assert.Equal(t, []string{"1", "2", "5"}, ids(Featured(products)))
	assert.Equal(t, []string{"2", "5"}, ids(BySeller(products, "seller2")))
	assert.Empty(t, BySeller(products, "nobody"))

	p, ok := Find(products, "3")
	require.True(t, ok)
	assert.Equal(t, "Fantasy Novels - Pack of 5", p.Title)
	_, ok = Find(products, "42")
	assert.False(t, ok)
}
