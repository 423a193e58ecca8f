package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"glucolog/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// defaultBaselineGlucose is assumed when the request carries no glucose value
// and the user has no stored readings.
const defaultBaselineGlucose = 100.0

// ValidationError marks malformed pipeline input, rejected before any work
// happens. Controllers map it to a 400 instead of a 500.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// DetectedFoodInput is one pre-computed detection handed to the pipeline.
type DetectedFoodInput struct {
	Name       string  `json:"name" binding:"required"`
	Confidence float64 `json:"confidence"`
	Portion    float64 `json:"portion"` // grams, defaults to 100
}

// AnalyzeRequest is the pipeline's input contract.
type AnalyzeRequest struct {
	DetectedFoods  []DetectedFoodInput `json:"detected_foods"`
	MealType       string              `json:"meal_type"`
	CurrentGlucose *float64            `json:"current_glucose"`
	PhotoURL       string              `json:"photo_url"`
}

// AnalysisService runs the estimation pipeline and owns the analysis records.
type AnalysisService struct {
	db      *gorm.DB
	matcher *FoodMatcher
	glucose *GlucoseService
}

func NewAnalysisService(db *gorm.DB, matcher *FoodMatcher, glucose *GlucoseService) *AnalysisService {
	return &AnalysisService{db: db, matcher: matcher, glucose: glucose}
}

func (s *AnalysisService) validate(req AnalyzeRequest) error {
	if len(req.DetectedFoods) == 0 {
		return validationErrorf("detected foods list is required")
	}
	if !models.ValidMealType(req.MealType) {
		return validationErrorf("meal type must be one of breakfast, lunch, dinner, snack")
	}
	for _, d := range req.DetectedFoods {
		if d.Name == "" {
			return validationErrorf("every detected food needs a name")
		}
		if d.Portion < 0 {
			return validationErrorf("portion must be positive")
		}
	}
	return nil
}

// MatchDetectedFoods resolves each detection against the catalog and attaches
// the portion-scaled nutrition snapshot. A catalog failure for one item is
// logged and degrades that item to unmatched; it never aborts the analysis.
func MatchDetectedFoods(ctx context.Context, matcher *FoodMatcher, inputs []DetectedFoodInput) []models.DetectedFood {
	out := make([]models.DetectedFood, 0, len(inputs))
	for _, in := range inputs {
		portion := in.Portion
		if portion == 0 {
			portion = 100
		}

		item := models.DetectedFood{
			Name:       in.Name,
			Confidence: in.Confidence,
			Portion:    models.Portion{EstimatedGrams: portion},
		}

		food, err := matcher.Match(ctx, in.Name)
		if err != nil {
			log.Printf("catalog lookup failed for %q, treating as unmatched: %v", in.Name, err)
		} else if food != nil {
			id := food.ID
			item.MatchedFoodID = &id
			item.NutritionalData = ScaleNutrition(food, portion)
		}

		out = append(out, item)
	}
	return out
}

// Analyze runs the full pipeline for one meal: match -> aggregate -> predict
// -> recommend, then persists the result. A request where nothing matches
// still returns a complete analysis computed over zero totals.
func (s *AnalysisService) Analyze(ctx context.Context, user *models.User, req AnalyzeRequest) (*models.FoodAnalysis, error) {
	start := time.Now()

	if err := s.validate(req); err != nil {
		return nil, err
	}

	baseline := s.resolveBaseline(ctx, user.ID, req.CurrentGlucose)

	matched := MatchDetectedFoods(ctx, s.matcher, req.DetectedFoods)
	analysis := Aggregate(matched)
	prediction := PredictGlucose(analysis, baseline.Value, user.DiabetesType)
	recommendations := GenerateRecommendations(analysis, prediction)

	record := &models.FoodAnalysis{
		UserID:           user.ID,
		PhotoURL:         req.PhotoURL,
		MealType:         req.MealType,
		DetectedFoods:    datatypes.NewJSONType(matched),
		CurrentGlucose:   datatypes.NewJSONType(baseline),
		Analysis:         datatypes.NewJSONType(analysis),
		Prediction:       datatypes.NewJSONType(prediction),
		RiskLevel:        prediction.RiskLevel,
		Recommendations:  datatypes.NewJSONType(recommendations),
		Timestamp:        time.Now(),
		IsActive:         true,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}

	if prediction.RiskLevel == models.RiskHigh {
		id := record.ID
		EmitAlert(user.ID, "warning",
			fmt.Sprintf("High glucose spike predicted for your %s (peak %d mg/dL)", req.MealType, prediction.PeakValue),
			&id)
	}

	return record, nil
}

// resolveBaseline picks the glucose anchor: the request value, else the
// user's latest reading, else the 100 mg/dL default.
func (s *AnalysisService) resolveBaseline(ctx context.Context, userID uint, manual *float64) models.GlucoseSnapshot {
	now := time.Now()
	if manual != nil {
		return models.GlucoseSnapshot{Value: *manual, Timestamp: now, Source: "manual"}
	}
	if reading, err := s.glucose.LatestReading(ctx, userID); err == nil && reading != nil {
		return models.GlucoseSnapshot{Value: reading.ValueMgDL(), Timestamp: reading.Timestamp, Source: "latest_reading"}
	}
	return models.GlucoseSnapshot{Value: defaultBaselineGlucose, Timestamp: now, Source: "default"}
}

// HistoryFilter narrows the analysis history listing.
type HistoryFilter struct {
	MealType  string
	RiskLevel string
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

func (s *AnalysisService) History(ctx context.Context, userID uint, f HistoryFilter) ([]models.FoodAnalysis, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	q := s.db.WithContext(ctx).Model(&models.FoodAnalysis{}).
		Where("user_id = ? AND is_active = ?", userID, true)
	if f.MealType != "" {
		q = q.Where("meal_type = ?", f.MealType)
	}
	if f.RiskLevel != "" {
		q = q.Where("risk_level = ?", f.RiskLevel)
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

	var analyses []models.FoodAnalysis
	err := q.Order("timestamp DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&analyses).Error
	return analyses, total, err
}

func (s *AnalysisService) Get(ctx context.Context, userID, analysisID uint) (*models.FoodAnalysis, error) {
	var a models.FoodAnalysis
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_active = ?", analysisID, userID, true).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FeedbackInput is the user's judgement of a past prediction.
type FeedbackInput struct {
	Rating                *int                           `json:"rating"`
	Helpful               *bool                          `json:"helpful"`
	Comments              *string                        `json:"comments"`
	ActualGlucoseResponse *models.ActualGlucoseResponse  `json:"actual_glucose_response"`
}

func (s *AnalysisService) UpdateFeedback(ctx context.Context, userID, analysisID uint, in FeedbackInput) (*models.FoodAnalysis, error) {
	a, err := s.Get(ctx, userID, analysisID)
	if err != nil {
		return nil, err
	}

	fb := a.Feedback.Data()
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, validationErrorf("rating must be between 1 and 5")
		}
		fb.Rating = *in.Rating
	}
	if in.Helpful != nil {
		fb.Helpful = in.Helpful
	}
	if in.Comments != nil {
		fb.Comments = *in.Comments
	}
	if in.ActualGlucoseResponse != nil {
		fb.ActualGlucoseResponse = in.ActualGlucoseResponse
	}

	a.Feedback = datatypes.NewJSONType(fb)
	if err := s.db.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// Share marks the analysis shared and records the recipient emails; the
// actual mail goes out through the notifier so tests can skip SES.
func (s *AnalysisService) Share(ctx context.Context, userID, analysisID uint, emails []string, notify func(email string, a *models.FoodAnalysis) error) (*models.FoodAnalysis, error) {
	if len(emails) == 0 {
		return nil, validationErrorf("email addresses are required")
	}

	a, err := s.Get(ctx, userID, analysisID)
	if err != nil {
		return nil, err
	}

	a.IsShared = true
	a.SharedWith = datatypes.NewJSONType(emails)
	if err := s.db.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}

	if notify != nil {
		for _, email := range emails {
			if err := notify(email, a); err != nil {
				log.Printf("share email to %s failed: %v", email, err)
			}
		}
	}
	return a, nil
}

// AnalysisStats summarizes a user's recent analyses.
type AnalysisStats struct {
	TotalAnalyses   int64    `json:"total_analyses"`
	AverageRating   *float64 `json:"average_rating"`
	HighRiskMeals   int64    `json:"high_risk_meals"`
	AverageCalories *float64 `json:"average_calories"`
	AverageCarbs    *float64 `json:"average_carbs"`
}

func (s *AnalysisService) Stats(ctx context.Context, userID uint, days int) (*AnalysisStats, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	var stats AnalysisStats
	err := s.db.WithContext(ctx).Model(&models.FoodAnalysis{}).
		Select(`COUNT(*) AS total_analyses,
			AVG(NULLIF((feedback->>'rating')::numeric, 0)) AS average_rating,
			COUNT(*) FILTER (WHERE risk_level = 'high') AS high_risk_meals,
			AVG((analysis->>'total_calories')::numeric) AS average_calories,
			AVG((analysis->>'total_carbs')::numeric) AS average_carbs`).
		Where("user_id = ? AND is_active = ? AND timestamp >= ?", userID, true, since).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
