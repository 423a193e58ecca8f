package services_test

import (
	"context"

	"glucolog/models"
)

type mockCatalog struct {
	findFn   func(ctx context.Context, name string) (*models.Food, error)
	searchFn func(ctx context.Context, term string) (*models.Food, error)

	searchedTerms []string
}

func (m *mockCatalog) FindByExactOrSubstring(ctx context.Context, name string) (*models.Food, error) {
	if m.findFn != nil {
		return m.findFn(ctx, name)
	}
	return nil, nil
}

func (m *mockCatalog) SearchText(ctx context.Context, term string) (*models.Food, error) {
	m.searchedTerms = append(m.searchedTerms, term)
	if m.searchFn != nil {
		return m.searchFn(ctx, term)
	}
	return nil, nil
}
