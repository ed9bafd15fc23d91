package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ecofinds/marketplace/internal/cache"
	"github.com/ecofinds/marketplace/internal/domain"
	"golang.org/x/sync/singleflight"
)

// StateReader is the part of the store the feed needs
type StateReader interface {
	State() domain.State
}

type Service struct {
	state StateReader
	cache cache.FeedCache
	sfg   singleflight.Group // collapses concurrent misses for the same key
}

func NewService(state StateReader, cache cache.FeedCache) *Service {
	return &Service{
		state: state,
		cache: cache,
	}
}

// Feed returns the catalog filtered by search and category
func (s *Service) Feed(ctx context.Context, search string, category domain.Category) ([]domain.Product, error) {
	products := s.state.State().Products
	key := feedKey(products, search, category)

	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("feed cache get error: %v", err) // log cache error but continue
		}

		feed := Filter(products, search, category)
		if errSet := s.cache.Set(ctx, key, feed); errSet != nil {
			log.Printf("feed cache set error: %v", errSet)
		}
		return feed, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

// Featured returns the trending products of the current catalog
func (s *Service) Featured() []domain.Product {
	return Featured(s.state.State().Products)
}

// Product looks up a listing in the current catalog
func (s *Service) Product(id string) (domain.Product, bool) {
	return Find(s.state.State().Products, id)
}

// feedKey changes whenever a listing is added, since listings are only ever
// prepended. Category and search are quoted so no two queries share a key.
func feedKey(products []domain.Product, search string, category domain.Category) string {
	version := strconv.Itoa(len(products))
	if len(products) > 0 {
		version += "-" + strconv.Quote(products[0].ID)
	}
	return fmt.Sprintf("feed:%s:%s:%s", version, strconv.Quote(string(category)), strconv.Quote(strings.ToLower(search)))
}
