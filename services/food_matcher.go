package services

import (
	"context"
	"strings"

	"glucolog/models"
)

// FoodMatcher resolves free-text detected-food names against the catalog.
type FoodMatcher struct {
	catalog FoodCatalog
}

func NewFoodMatcher(catalog FoodCatalog) *FoodMatcher {
	return &FoodMatcher{catalog: catalog}
}

// Match tries a case-insensitive substring match of the whole name first,
// then falls back to a per-term full-text search, skipping terms of three
// characters or fewer. The first hit wins and term order is the original
// word order — changing this order changes which items get nutritional
// data, so it stays as is. No match is (nil, nil); only a store failure
// returns an error.
func (m *FoodMatcher) Match(ctx context.Context, detectedName string) (*models.Food, error) {
	food, err := m.catalog.FindByExactOrSubstring(ctx, detectedName)
	if err != nil {
		return nil, err
	}
	if food != nil {
		return food, nil
	}

	for _, term := range strings.Fields(detectedName) {
		if len(term) <= 3 {
			continue
		}
		food, err = m.catalog.SearchText(ctx, term)
		if err != nil {
			return nil, err
		}
		if food != nil {
			return food, nil
		}
	}

	return nil, nil
}
