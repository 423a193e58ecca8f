package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EatingOrderStep is one position in the advisory service's suggested
// consumption order.
type EatingOrderStep struct {
	Order    int    `json:"order"`
	FoodName string `json:"foodName"`
	Reason   string `json:"reason"`
}

// AdvisoryGlucosePrediction is the external service's own prediction. It is
// deliberately a different shape from GlucosePrediction: the two are never
// reconciled.
type AdvisoryGlucosePrediction struct {
	PredictedPeakGlucose       float64 `json:"predictedPeakGlucose"`
	TimeToReachPeak            int     `json:"timeToReachPeak"`
	PredictedGlucoseAfter2Hours float64 `json:"predictedGlucoseAfter2Hours"`
	RiskLevel                  string  `json:"riskLevel"` // low | moderate | high
}

// NutritionalEstimate is an advisory-side estimate for a food the catalog
// could not fully describe.
type NutritionalEstimate struct {
	FoodName           string `json:"foodName"`
	EstimatedNutrition struct {
		Calories      float64 `json:"calories"`
		Carbohydrates float64 `json:"carbohydrates"`
		Protein       float64 `json:"protein"`
		Fat           float64 `json:"fat"`
		Fiber         float64 `json:"fiber"`
		GlycemicIndex float64 `json:"glycemicIndex"`
	} `json:"estimatedNutrition"`
	Confidence string `json:"confidence"` // high | medium | low
	Reasoning  string `json:"reasoning"`
}

// AdvisoryRecommendation is advice produced by the external service.
type AdvisoryRecommendation struct {
	Type     string `json:"type"` // eating_order | timing | portion | general
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// AdvisoryReasoning explains how the external service arrived at its answer.
type AdvisoryReasoning struct {
	EatingOrderRationale       string   `json:"eatingOrderRationale"`
	GlucosePredictionRationale string   `json:"glucosePredictionRationale"`
	KeyFactors                 []string `json:"keyFactors"`
}

// AdvisoryMetadata records provenance of an advisory result.
type AdvisoryMetadata struct {
	Model            string    `json:"model"`
	RequestTimestamp time.Time `json:"request_timestamp"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	BaselineGlucose  float64   `json:"baseline_glucose"`
}

// AdvisoryAnalysis stores the external reasoning service's result for a meal.
// It lives alongside the deterministic FoodAnalysis for the same meal and is
// never merged with it; callers query the two independently.
type AdvisoryAnalysis struct {
	gorm.Model
	UserID               *uint                                             `gorm:"index" json:"user_id"`
	MealEntryID          *uint                                             `gorm:"index" json:"meal_entry_id"`
	BaselineGlucose      float64                                           `json:"baseline_glucose"`
	EatingOrder          datatypes.JSONType[[]EatingOrderStep]             `gorm:"type:jsonb" json:"eating_order"`
	GlucosePrediction    datatypes.JSONType[AdvisoryGlucosePrediction]     `gorm:"type:jsonb" json:"glucose_prediction"`
	NutritionalEstimates datatypes.JSONType[[]NutritionalEstimate]         `gorm:"type:jsonb" json:"nutritional_estimates"`
	Recommendations      datatypes.JSONType[[]AdvisoryRecommendation]      `gorm:"type:jsonb" json:"recommendations"`
	Reasoning            datatypes.JSONType[AdvisoryReasoning]             `gorm:"type:jsonb" json:"reasoning"`
	Metadata             datatypes.JSONType[AdvisoryMetadata]              `gorm:"type:jsonb" json:"metadata"`
	IsActive             bool                                              `gorm:"default:true" json:"is_active"`
}
