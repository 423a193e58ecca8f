package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"glucolog/models"

	"gorm.io/gorm"
)

// FoodCatalog is the read-only lookup surface the matcher depends on. It is
// injected so tests can swap in fixed fixtures. A nil record with a nil error
// means "no match"; a non-nil error means the store itself failed.
type FoodCatalog interface {
	FindByExactOrSubstring(ctx context.Context, name string) (*models.Food, error)
	SearchText(ctx context.Context, term string) (*models.Food, error)
}

// FoodCatalogService is the GORM-backed catalog plus its maintenance surface
// (CRUD + filtered listing).
type FoodCatalogService struct {
	db *gorm.DB
}

func NewFoodCatalogService(db *gorm.DB) *FoodCatalogService {
	return &FoodCatalogService{db: db}
}

// FindByExactOrSubstring returns the first active food whose name contains
// the detected name, case-insensitively. Exact names are a special case of
// the substring match.
func (s *FoodCatalogService) FindByExactOrSubstring(ctx context.Context, name string) (*models.Food, error) {
	var food models.Food
	err := s.db.WithContext(ctx).
		Where("name ILIKE ? AND is_active = ?", "%"+strings.TrimSpace(name)+"%", true).
		Order("id ASC").
		First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog substring lookup: %w", err)
	}
	return &food, nil
}

// SearchText runs a full-text search for one term against food names and
// returns the first hit.
func (s *FoodCatalogService) SearchText(ctx context.Context, term string) (*models.Food, error) {
	var food models.Food
	err := s.db.WithContext(ctx).
		Where("to_tsvector('simple', name) @@ plainto_tsquery('simple', ?) AND is_active = ?", term, true).
		Order("id ASC").
		First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog text search: %w", err)
	}
	return &food, nil
}

// FoodListFilter narrows the catalog listing.
type FoodListFilter struct {
	Search              string
	Category            string
	MaxGlycemicIndex    *float64
	DiabetesRecommended bool
	Page                int
	Limit               int
	Sort                string
}

// ListFoods returns a page of active catalog entries plus the total count.
func (s *FoodCatalogService) ListFoods(ctx context.Context, f FoodListFilter) ([]models.Food, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	sort := "name"
	if f.Sort != "" {
		// whitelist sortable columns
		switch f.Sort {
		case "name", "glycemic_index", "glycemic_load", "calories", "category":
			sort = f.Sort
		}
	}

	q := s.db.WithContext(ctx).Model(&models.Food{}).Where("is_active = ?", true)
	if f.Search != "" {
		q = q.Where("name ILIKE ?", "%"+f.Search+"%")
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MaxGlycemicIndex != nil {
		q = q.Where("glycemic_index <= ?", *f.MaxGlycemicIndex)
	}
	if f.DiabetesRecommended {
		q = q.Where("diabetes_recommended = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var foods []models.Food
	err := q.Order(sort).
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&foods).Error
	return foods, total, err
}

func (s *FoodCatalogService) GetFood(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	err := s.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodCatalogService) CreateFood(ctx context.Context, food *models.Food) error {
	return s.db.WithContext(ctx).Create(food).Error
}

func (s *FoodCatalogService) UpdateFood(ctx context.Context, food *models.Food) error {
	return s.db.WithContext(ctx).Save(food).Error
}

// DeleteFood soft-deactivates the entry; analyses that reference it keep
// their snapshot data.
func (s *FoodCatalogService) DeleteFood(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&models.Food{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// RecommendedForDiabetes lists active entries flagged diabetes-recommended,
// lowest glycemic index first.
func (s *FoodCatalogService) RecommendedForDiabetes(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	err := s.db.WithContext(ctx).
		Where("diabetes_recommended = ? AND is_active = ?", true, true).
		Order("glycemic_index ASC").
		Find(&foods).Error
	return foods, err
}
