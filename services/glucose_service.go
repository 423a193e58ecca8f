package services

import (
	"context"
	"errors"
	"time"

	"glucolog/models"

	"gorm.io/gorm"
)

type GlucoseService struct {
	db *gorm.DB
}

func NewGlucoseService(db *gorm.DB) *GlucoseService {
	return &GlucoseService{db: db}
}

// CreateReadingInput is a new glucose measurement from the client.
type CreateReadingInput struct {
	Value       float64 `json:"value" binding:"required"`
	Unit        string  `json:"unit"`
	ReadingType string  `json:"reading_type" binding:"required"`
	MealContext string  `json:"meal_context"`
	Notes       string  `json:"notes"`
}

func (s *GlucoseService) CreateReading(ctx context.Context, userID uint, in CreateReadingInput) (*models.GlucoseReading, error) {
	if in.Value < 30 || in.Value > 600 {
		if in.Unit != "mmol/L" {
			return nil, validationErrorf("glucose value must be between 30 and 600 mg/dL")
		}
	}
	if !models.ValidReadingType(in.ReadingType) {
		return nil, validationErrorf("invalid reading type %q", in.ReadingType)
	}
	if in.Unit == "" {
		in.Unit = "mg/dL"
	}
	if in.MealContext == "" {
		in.MealContext = "none"
	}

	reading := &models.GlucoseReading{
		UserID:      userID,
		Value:       in.Value,
		Unit:        in.Unit,
		ReadingType: in.ReadingType,
		MealContext: in.MealContext,
		Notes:       in.Notes,
		Timestamp:   time.Now(),
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(reading).Error; err != nil {
		return nil, err
	}
	return reading, nil
}

// LatestReading returns the user's most recent active reading, or nil when
// none exists.
func (s *GlucoseService) LatestReading(ctx context.Context, userID uint) (*models.GlucoseReading, error) {
	var reading models.GlucoseReading
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("timestamp DESC").
		First(&reading).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

// ReadingHistoryFilter narrows the reading history.
type ReadingHistoryFilter struct {
	ReadingType string
	From        *time.Time
	To          *time.Time
	Page        int
	Limit       int
}

func (s *GlucoseService) History(ctx context.Context, userID uint, f ReadingHistoryFilter) ([]models.GlucoseReading, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	q := s.db.WithContext(ctx).Model(&models.GlucoseReading{}).
		Where("user_id = ? AND is_active = ?", userID, true)
	if f.ReadingType != "" {
		q = q.Where("reading_type = ?", f.ReadingType)
	}
	if f.From != nil {
		q = q.Where("timestamp >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("timestamp <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var readings []models.GlucoseReading
	err := q.Order("timestamp DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&readings).Error
	return readings, total, err
}

// GlucoseStats summarizes readings over a period.
type GlucoseStats struct {
	AverageGlucose *float64 `json:"average_glucose"`
	Count          int64    `json:"count"`
	MinValue       *float64 `json:"min_value"`
	MaxValue       *float64 `json:"max_value"`
}

func (s *GlucoseService) Stats(ctx context.Context, userID uint, days int) (*GlucoseStats, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	var stats GlucoseStats
	err := s.db.WithContext(ctx).Model(&models.GlucoseReading{}).
		Select(`AVG(value) AS average_glucose,
			COUNT(*) AS count,
			MIN(value) AS min_value,
			MAX(value) AS max_value`).
		Where("user_id = ? AND is_active = ? AND timestamp >= ?", userID, true, since).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// DeleteReading soft-deletes one reading.
func (s *GlucoseService) DeleteReading(ctx context.Context, userID, readingID uint) error {
	res := s.db.WithContext(ctx).Model(&models.GlucoseReading{}).
		Where("id = ? AND user_id = ?", readingID, userID).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
