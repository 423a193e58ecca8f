package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealItemNutrition is the per-item nutrition snapshot stored with a meal.
// Unlike DetectedFood contributions these are kept as entered (floats), since
// manual entries may carry fractional values from labels.
type MealItemNutrition struct {
	Calories      float64 `json:"calories"`
	Carbohydrates float64 `json:"carbohydrates"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Fiber         float64 `json:"fiber"`
	GlycemicIndex float64 `json:"glycemic_index"`
	GlycemicLoad  float64 `json:"glycemic_load"`
}

// MealItem is one food in a logged meal.
type MealItem struct {
	gorm.Model
	MealEntryID uint                                   `gorm:"index;not null" json:"meal_entry_id"`
	FoodID      *uint                                  `gorm:"index" json:"food_id"` // catalog link, optional
	Name        string                                 `gorm:"size:200;not null" json:"name"`
	Amount      float64                                `gorm:"default:100" json:"amount"`
	Unit        string                                 `gorm:"size:16;default:grams" json:"unit"`
	Source      string                                 `gorm:"size:24;default:manual_entry" json:"source"` // photo_detection|manual_entry|text_scan|database_search
	Confidence  float64                                `json:"confidence,omitempty"`
	Nutrition   datatypes.JSONType[*MealItemNutrition] `gorm:"type:jsonb" json:"nutrition"`
}

// MealTotals is the summed nutrition over all items of a meal entry.
type MealTotals struct {
	Calories               float64 `json:"calories"`
	Carbohydrates          float64 `json:"carbohydrates"`
	Protein                float64 `json:"protein"`
	Fat                    float64 `json:"fat"`
	Fiber                  float64 `json:"fiber"`
	EstimatedGlycemicLoad  float64 `json:"estimated_glycemic_load"`
}

// MealGlucose links before/after glucose values to a meal entry.
type MealGlucose struct {
	Before *GlucoseSnapshot       `json:"before,omitempty"`
	After  []PostMealGlucosePoint `json:"after,omitempty"`
}

// PostMealGlucosePoint is one reading taken after the meal.
type PostMealGlucosePoint struct {
	Value            float64   `json:"value"`
	Timestamp        time.Time `json:"timestamp"`
	MinutesAfterMeal int       `json:"minutes_after_meal"`
	Source           string    `json:"source"`
}

// MealEntry is one logged meal with its items and computed totals.
type MealEntry struct {
	gorm.Model
	UserID     uint                             `gorm:"index;not null" json:"user_id"`
	MealType   string                           `gorm:"size:16;index;not null" json:"meal_type"`
	Items      []MealItem                       `json:"items"`
	PhotoURL   string                           `gorm:"size:512" json:"photo_url,omitempty"`
	AteAt      time.Time                        `gorm:"index" json:"ate_at"`
	Glucose    datatypes.JSONType[MealGlucose]  `gorm:"type:jsonb" json:"glucose"`
	AnalysisID *uint                            `gorm:"index" json:"analysis_id"` // FoodAnalysis link
	Totals     datatypes.JSONType[MealTotals]   `gorm:"type:jsonb" json:"totals"`
	Notes      string                           `gorm:"size:500" json:"notes,omitempty"`
	IsActive   bool                             `gorm:"default:true" json:"is_active"`
}

// ComputeTotals sums the nutrition snapshots across items. Items without a
// snapshot contribute nothing.
func (m *MealEntry) ComputeTotals() MealTotals {
	var t MealTotals
	for _, it := range m.Items {
		n := it.Nutrition.Data()
		if n == nil {
			continue
		}
		t.Calories += n.Calories
		t.Carbohydrates += n.Carbohydrates
		t.Protein += n.Protein
		t.Fat += n.Fat
		t.Fiber += n.Fiber
		t.EstimatedGlycemicLoad += n.GlycemicLoad
	}
	return t
}
