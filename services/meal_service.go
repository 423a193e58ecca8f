package services

import (
	"context"
	"time"

	"glucolog/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MealService struct {
	db      *gorm.DB
	catalog *FoodCatalogService
}

func NewMealService(db *gorm.DB, catalog *FoodCatalogService) *MealService {
	return &MealService{db: db, catalog: catalog}
}

// MealItemRequest is one item of a meal being logged. Nutrition can be
// supplied directly (label data) or left nil with a catalog FoodID to have
// the snapshot computed from the per-100g facts.
type MealItemRequest struct {
	FoodID     *uint                      `json:"food_id"`
	Name       string                     `json:"name" binding:"required"`
	Amount     float64                    `json:"amount"`
	Unit       string                     `json:"unit"`
	Source     string                     `json:"source"`
	Confidence float64                    `json:"confidence"`
	Nutrition  *models.MealItemNutrition  `json:"nutrition"`
}

// AddMealRequest logs one meal.
type AddMealRequest struct {
	MealType string            `json:"meal_type"`
	AteAt    *time.Time        `json:"ate_at"`
	Items    []MealItemRequest `json:"items"`
	PhotoURL string            `json:"photo_url"`
	Notes    string            `json:"notes"`
	Before   *float64          `json:"glucose_before"`
}

func (s *MealService) AddMeal(ctx context.Context, userID uint, req AddMealRequest) (*models.MealEntry, error) {
	if !models.ValidMealType(req.MealType) {
		return nil, validationErrorf("meal type must be one of breakfast, lunch, dinner, snack")
	}
	if len(req.Items) == 0 {
		return nil, validationErrorf("a meal needs at least one item")
	}

	ateAt := time.Now()
	if req.AteAt != nil {
		ateAt = *req.AteAt
	}

	entry := &models.MealEntry{
		UserID:   userID,
		MealType: req.MealType,
		AteAt:    ateAt,
		PhotoURL: req.PhotoURL,
		Notes:    req.Notes,
		IsActive: true,
	}

	var glucose models.MealGlucose
	if req.Before != nil {
		glucose.Before = &models.GlucoseSnapshot{Value: *req.Before, Timestamp: ateAt, Source: "manual"}
	}
	entry.Glucose = datatypes.NewJSONType(glucose)

	for _, it := range req.Items {
		item, err := s.buildItem(ctx, it)
		if err != nil {
			return nil, err
		}
		entry.Items = append(entry.Items, *item)
	}

	entry.Totals = datatypes.NewJSONType(entry.ComputeTotals())

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *MealService) buildItem(ctx context.Context, it MealItemRequest) (*models.MealItem, error) {
	amount := it.Amount
	if amount <= 0 {
		amount = 100
	}
	unit := it.Unit
	if unit == "" {
		unit = "grams"
	}
	source := it.Source
	if source == "" {
		source = "manual_entry"
	}

	nutrition := it.Nutrition
	if nutrition == nil && it.FoodID != nil && unit == "grams" {
		food, err := s.catalog.GetFood(ctx, *it.FoodID)
		if err != nil {
			return nil, validationErrorf("unknown food id %d", *it.FoodID)
		}
		scaled := ScaleNutrition(food, amount)
		nutrition = &models.MealItemNutrition{
			Calories:      float64(scaled.Calories),
			Carbohydrates: float64(scaled.Carbohydrates),
			Protein:       float64(scaled.Protein),
			Fat:           float64(scaled.Fat),
			Fiber:         float64(scaled.Fiber),
			GlycemicIndex: scaled.GlycemicIndex,
			GlycemicLoad:  float64(scaled.GlycemicLoad),
		}
	}

	return &models.MealItem{
		FoodID:     it.FoodID,
		Name:       it.Name,
		Amount:     amount,
		Unit:       unit,
		Source:     source,
		Confidence: it.Confidence,
		Nutrition:  datatypes.NewJSONType(nutrition),
	}, nil
}

func (s *MealService) ListMeals(ctx context.Context, userID uint, page, limit int) ([]models.MealEntry, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := s.db.WithContext(ctx).Model(&models.MealEntry{}).
		Where("user_id = ? AND is_active = ?", userID, true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var meals []models.MealEntry
	err := q.Preload("Items").
		Order("ate_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&meals).Error
	return meals, total, err
}

func (s *MealService) ListMealsByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.MealEntry, error) {
	var meals []models.MealEntry
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND is_active = ? AND ate_at >= ? AND ate_at < ?", userID, true, from, to).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(ctx context.Context, userID, mealID uint) (*models.MealEntry, error) {
	var meal models.MealEntry
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ? AND is_active = ?", mealID, userID, true).
		First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uint) error {
	res := s.db.WithContext(ctx).Model(&models.MealEntry{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AttachAnalysis links a pipeline result to a logged meal.
func (s *MealService) AttachAnalysis(ctx context.Context, userID, mealID, analysisID uint) error {
	res := s.db.WithContext(ctx).Model(&models.MealEntry{}).
		Where("id = ? AND user_id = ? AND is_active = ?", mealID, userID, true).
		Update("analysis_id", analysisID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddPostMealReading appends an after-meal glucose point to the entry.
func (s *MealService) AddPostMealReading(ctx context.Context, userID, mealID uint, value float64, minutesAfter int) (*models.MealEntry, error) {
	meal, err := s.GetMeal(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	glucose := meal.Glucose.Data()
	glucose.After = append(glucose.After, models.PostMealGlucosePoint{
		Value:            value,
		Timestamp:        time.Now(),
		MinutesAfterMeal: minutesAfter,
		Source:           "manual",
	})
	meal.Glucose = datatypes.NewJSONType(glucose)

	if err := s.db.WithContext(ctx).Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}
