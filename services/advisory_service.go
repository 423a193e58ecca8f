package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"glucolog/models"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrAdvisoryUnavailable wraps any failure of the external reasoning service.
// Callers surface it as "advisory unavailable"; the deterministic pipeline is
// never blocked by it.
var ErrAdvisoryUnavailable = errors.New("advisory service unavailable")

const advisoryModel = "gpt-4o-mini"

// AdvisoryService forwards meal data to an external reasoning service for an
// alternative eating-order and glucose prediction. Its results are persisted
// independently of the rule-based estimator and never merged with it.
type AdvisoryService struct {
	db     *gorm.DB
	client openai.Client
	model  string
}

func NewAdvisoryService(db *gorm.DB) (*AdvisoryService, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY not set")
	}
	return &AdvisoryService{
		db:     db,
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  advisoryModel,
	}, nil
}

// AdvisoryMealItem is one food in the meal summary sent to the service.
type AdvisoryMealItem struct {
	Name         string                     `json:"name"`
	PortionGrams float64                    `json:"portion_grams"`
	Nutrition    *models.MealItemNutrition  `json:"nutrition,omitempty"`
}

// AdvisoryMealData is the meal summary contract of the bridge.
type AdvisoryMealData struct {
	MealType string             `json:"meal_type"`
	Items    []AdvisoryMealItem `json:"items"`
}

// AdvisoryProfile is the slice of the user profile the service may use.
type AdvisoryProfile struct {
	DiabetesType string  `json:"diabetes_type"`
	Age          int     `json:"age"`
	WeightKg     float64 `json:"weight_kg"`
}

// advisoryResult mirrors the JSON contract the service is instructed to
// return.
type advisoryResult struct {
	EatingOrder          []models.EatingOrderStep          `json:"eatingOrder"`
	GlucosePrediction    models.AdvisoryGlucosePrediction  `json:"glucosePrediction"`
	NutritionalEstimates []models.NutritionalEstimate      `json:"nutritionalEstimates"`
	Recommendations      []models.AdvisoryRecommendation   `json:"recommendations"`
	Reasoning            models.AdvisoryReasoning          `json:"reasoning"`
}

// AdvisoryRequest asks for an advisory analysis of either a stored meal entry
// or ad-hoc meal data.
type AdvisoryRequest struct {
	MealEntryID     *uint             `json:"meal_entry_id"`
	MealData        *AdvisoryMealData `json:"meal_data"`
	BaselineGlucose float64           `json:"baseline_glucose"`
	ForceReanalysis bool              `json:"force_reanalysis"`
}

// AnalyzeMeal runs the advisory call and stores the validated result. An
// existing analysis for the same meal entry is returned as-is unless a
// re-analysis is forced. The bool result reports whether the answer was
// served from a stored analysis.
func (s *AdvisoryService) AnalyzeMeal(ctx context.Context, user *models.User, req AdvisoryRequest) (*models.AdvisoryAnalysis, bool, error) {
	if req.MealEntryID == nil && req.MealData == nil {
		return nil, false, validationErrorf("either meal_entry_id or meal_data is required")
	}

	baseline := req.BaselineGlucose
	if baseline == 0 {
		baseline = 80
	}

	mealData := req.MealData
	if req.MealEntryID != nil {
		q := s.db.WithContext(ctx).Preload("Items").
			Where("id = ? AND is_active = ?", *req.MealEntryID, true)
		if user != nil {
			q = q.Where("user_id = ?", user.ID)
		}
		var entry models.MealEntry
		err := q.First(&entry).Error
		if err != nil {
			return nil, false, err
		}

		if !req.ForceReanalysis {
			var existing models.AdvisoryAnalysis
			err := s.db.WithContext(ctx).
				Where("meal_entry_id = ? AND is_active = ?", *req.MealEntryID, true).
				First(&existing).Error
			if err == nil {
				return &existing, true, nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, err
			}
		}

		mealData = mealDataFromEntry(&entry)
	}

	profile := AdvisoryProfile{DiabetesType: models.DiabetesType2}
	var userID *uint
	if user != nil {
		id := user.ID
		userID = &id
		profile = AdvisoryProfile{
			DiabetesType: user.DiabetesType,
			Age:          user.Age,
			WeightKg:     user.WeightKg,
		}
	}

	start := time.Now()
	result, err := s.requestAdvisory(ctx, mealData, baseline, profile)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrAdvisoryUnavailable, err)
	}

	record := &models.AdvisoryAnalysis{
		UserID:               userID,
		MealEntryID:          req.MealEntryID,
		BaselineGlucose:      baseline,
		EatingOrder:          datatypes.NewJSONType(result.EatingOrder),
		GlucosePrediction:    datatypes.NewJSONType(result.GlucosePrediction),
		NutritionalEstimates: datatypes.NewJSONType(result.NutritionalEstimates),
		Recommendations:      datatypes.NewJSONType(result.Recommendations),
		Reasoning:            datatypes.NewJSONType(result.Reasoning),
		Metadata: datatypes.NewJSONType(models.AdvisoryMetadata{
			Model:            s.model,
			RequestTimestamp: start,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
			BaselineGlucose:  baseline,
		}),
		IsActive: true,
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, false, err
	}
	return record, false, nil
}

func mealDataFromEntry(entry *models.MealEntry) *AdvisoryMealData {
	data := &AdvisoryMealData{MealType: entry.MealType}
	for _, it := range entry.Items {
		data.Items = append(data.Items, AdvisoryMealItem{
			Name:         it.Name,
			PortionGrams: it.Amount,
			Nutrition:    it.Nutrition.Data(),
		})
	}
	return data
}

// requestAdvisory performs the actual chat-completion call in JSON mode and
// validates the returned shape.
func (s *AdvisoryService) requestAdvisory(ctx context.Context, meal *AdvisoryMealData, baseline float64, profile AdvisoryProfile) (*advisoryResult, error) {
	prompt, err := buildAdvisoryPrompt(meal, baseline, profile)
	if err != nil {
		return nil, err
	}

	params := openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a diabetes management expert and nutritionist. You provide evidence-based recommendations for meal timing and glucose management. Always respond with valid JSON format."),
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(0.3),
		MaxCompletionTokens: openai.Int(1500),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	start := time.Now()
	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("advisory chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices in advisory response")
	}

	log.Printf("advisory completed: model=%s duration_ms=%d prompt_tokens=%d completion_tokens=%d",
		s.model, time.Since(start).Milliseconds(), resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	var result advisoryResult
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("decode advisory response: %w", err)
	}
	if result.GlucosePrediction.PredictedPeakGlucose <= 0 {
		return nil, errors.New("advisory response missing glucose prediction")
	}
	return &result, nil
}

func buildAdvisoryPrompt(meal *AdvisoryMealData, baseline float64, profile AdvisoryProfile) (string, error) {
	summary, err := json.MarshalIndent(meal, "", "  ")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze this meal for a person with %s diabetes and provide recommendations in JSON format.\n\n", profile.DiabetesType)
	fmt.Fprintf(&sb, "MEAL DATA:\n%s\n\n", summary)
	fmt.Fprintf(&sb, "BASELINE GLUCOSE: %.0f mg/dL\n", baseline)
	fmt.Fprintf(&sb, "USER PROFILE: Age: %d, Weight: %.0fkg, Diabetes: %s\n\n", profile.Age, profile.WeightKg, profile.DiabetesType)
	sb.WriteString(`INSTRUCTIONS:
1. For foods with missing nutritional data, estimate values based on the food name and typical portion sizes
2. Recommend the optimal eating order to minimize glucose spikes
3. Predict the new glucose level after consuming this meal
4. Provide clear reasoning for all recommendations

REQUIRED JSON RESPONSE FORMAT:
{
  "eatingOrder": [{"order": 1, "foodName": "string", "reason": "string"}],
  "glucosePrediction": {"predictedPeakGlucose": number, "timeToReachPeak": number, "predictedGlucoseAfter2Hours": number, "riskLevel": "low|moderate|high"},
  "nutritionalEstimates": [{"foodName": "string", "estimatedNutrition": {"calories": number, "carbohydrates": number, "protein": number, "fat": number, "fiber": number, "glycemicIndex": number}, "confidence": "high|medium|low", "reasoning": "string"}],
  "recommendations": [{"type": "eating_order|timing|portion|general", "message": "string", "priority": "high|medium|low"}],
  "reasoning": {"eatingOrderRationale": "string", "glucosePredictionRationale": "string", "keyFactors": ["string"]}
}

Focus on evidence-based diabetes management principles:
- Fiber and protein first to slow glucose absorption
- Complex carbohydrates before simple sugars
- Consider glycemic index and load
- Account for meal timing and the user's baseline glucose
- Provide practical, actionable advice`)

	return sb.String(), nil
}

// History lists a user's stored advisory analyses, optionally filtered by
// meal entry or risk level.
func (s *AdvisoryService) History(ctx context.Context, userID uint, mealEntryID *uint, riskLevel string, page, limit int) ([]models.AdvisoryAnalysis, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := s.db.WithContext(ctx).Model(&models.AdvisoryAnalysis{}).
		Where("user_id = ? AND is_active = ?", userID, true)
	if mealEntryID != nil {
		q = q.Where("meal_entry_id = ?", *mealEntryID)
	}
	if riskLevel != "" {
		q = q.Where("glucose_prediction->>'riskLevel' = ?", riskLevel)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var analyses []models.AdvisoryAnalysis
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&analyses).Error
	return analyses, total, err
}

func (s *AdvisoryService) Get(ctx context.Context, userID, id uint) (*models.AdvisoryAnalysis, error) {
	var a models.AdvisoryAnalysis
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
