package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Meal types accepted by the analysis pipeline.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

func ValidMealType(t string) bool {
	for _, mt := range MealTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// NutritionalData is one detected item's contribution, already scaled by
// portion/100 and rounded per field.
type NutritionalData struct {
	Calories      int     `json:"calories"`
	Carbohydrates int     `json:"carbohydrates"`
	Protein       int     `json:"protein"`
	Fat           int     `json:"fat"`
	Fiber         int     `json:"fiber"`
	GlycemicIndex float64 `json:"glycemic_index"`
	GlycemicLoad  int     `json:"glycemic_load"`
}

// Portion describes the estimated serving for a detected item.
type Portion struct {
	EstimatedGrams float64 `json:"estimated_grams"`
	UserAdjusted   bool    `json:"user_adjusted"`
}

// DetectedFood is one food instance as observed (photo detection or manual
// entry), optionally linked to a catalog entry. NutritionalData stays nil for
// unmatched items; that is a normal outcome, not an error.
type DetectedFood struct {
	Name            string           `json:"name"`
	Confidence      float64          `json:"confidence"` // 0-100
	MatchedFoodID   *uint            `json:"matched_food_id"`
	Portion         Portion          `json:"portion"`
	NutritionalData *NutritionalData `json:"nutritional_data"`
}

// NutritionAnalysis is the aggregate over all detected items of one analysis.
type NutritionAnalysis struct {
	TotalCalories          int     `json:"total_calories"`
	TotalCarbs             int     `json:"total_carbs"`
	TotalProtein           int     `json:"total_protein"`
	TotalFat               int     `json:"total_fat"`
	TotalFiber             int     `json:"total_fiber"`
	AverageGlycemicIndex   float64 `json:"average_glycemic_index"`
	TotalGlycemicLoad      int     `json:"total_glycemic_load"`
	EstimatedDigestionTime int     `json:"estimated_digestion_time"` // minutes
}

// Risk levels for glucose predictions.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// GlucosePrediction is the deterministic estimator's output.
type GlucosePrediction struct {
	PeakTime   int     `json:"peak_time"` // minutes after eating
	PeakValue  int     `json:"peak_value"`
	Duration   int     `json:"duration"` // minutes
	RiskLevel  string  `json:"risk_level"`
	Confidence float64 `json:"confidence"` // 0-100
}

// Recommendation types, in rule-declaration order.
const (
	RecConsumptionOrder   = "consumption_order"
	RecTiming             = "timing"
	RecPortionAdjustment  = "portion_adjustment"
	RecPairing            = "pairing"
	RecAvoidance          = "avoidance"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is one rule-triggered piece of advice.
type Recommendation struct {
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	Message   string `json:"message"`
	Reasoning string `json:"reasoning"`
}

// GlucoseSnapshot records the baseline used for a prediction and where it
// came from.
type GlucoseSnapshot struct {
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // manual | latest_reading | default
}

// ActualGlucoseResponse is user-reported outcome data for an analysis.
type ActualGlucoseResponse struct {
	PeakValue float64 `json:"peak_value"`
	PeakTime  int     `json:"peak_time"`
	Notes     string  `json:"notes"`
}

// AnalysisFeedback holds the user's rating of a prediction.
type AnalysisFeedback struct {
	Rating                 int                    `json:"rating,omitempty"` // 1-5
	Helpful                *bool                  `json:"helpful,omitempty"`
	Comments               string                 `json:"comments,omitempty"`
	ActualGlucoseResponse  *ActualGlucoseResponse `json:"actual_glucose_response,omitempty"`
}

// FoodAnalysis is one persisted run of the estimation pipeline.
type FoodAnalysis struct {
	gorm.Model
	UserID           uint                                   `gorm:"index;not null" json:"user_id"`
	PhotoURL         string                                 `gorm:"size:512" json:"photo_url,omitempty"`
	MealType         string                                 `gorm:"size:16;index;not null" json:"meal_type"`
	DetectedFoods    datatypes.JSONType[[]DetectedFood]     `gorm:"type:jsonb" json:"detected_foods"`
	CurrentGlucose   datatypes.JSONType[GlucoseSnapshot]    `gorm:"type:jsonb" json:"current_glucose"`
	Analysis         datatypes.JSONType[NutritionAnalysis]  `gorm:"type:jsonb" json:"analysis"`
	Prediction       datatypes.JSONType[GlucosePrediction]  `gorm:"type:jsonb" json:"glucose_prediction"`
	RiskLevel        string                                 `gorm:"size:8;index" json:"risk_level"`
	Recommendations  datatypes.JSONType[[]Recommendation]   `gorm:"type:jsonb" json:"recommendations"`
	Feedback         datatypes.JSONType[AnalysisFeedback]   `gorm:"type:jsonb" json:"feedback"`
	ProcessingTimeMs int64                                  `json:"processing_time_ms"`
	IsShared         bool                                   `gorm:"default:false" json:"is_shared"`
	SharedWith       datatypes.JSONType[[]string]           `gorm:"type:jsonb" json:"shared_with"`
	Timestamp        time.Time                              `gorm:"index" json:"timestamp"`
	IsActive         bool                                   `gorm:"default:true" json:"is_active"`
}
