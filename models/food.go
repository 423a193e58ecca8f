package models

import (
	"fmt"
	"math"

	"gorm.io/gorm"
)

// Valid food categories for the nutrient catalog.
var FoodCategories = []string{
	"cereals", "fruits", "vegetables", "legumes", "meats",
	"fish", "dairy", "fats", "sugars", "beverages",
	"nuts", "condiments", "processed",
}

// Food is one catalog entry with nutrition facts per 100g.
type Food struct {
	gorm.Model
	Name                string  `gorm:"size:200;not null;index" json:"name"`
	Category            string  `gorm:"size:32;not null;index" json:"category"`
	GlycemicIndex       float64 `gorm:"not null" json:"glycemic_index"`     // 0-100
	GlycemicLoad        float64 `gorm:"not null" json:"glycemic_load"`      // 0-50, per 100g
	Carbohydrates       float64 `gorm:"not null" json:"carbohydrates"`      // g per 100g
	Fat                 float64 `gorm:"not null" json:"fat"`                // g per 100g
	Protein             float64 `gorm:"not null" json:"protein"`            // g per 100g
	Fiber               float64 `gorm:"not null" json:"fiber"`              // g per 100g
	Calories            float64 `json:"calories"`                           // kcal per 100g
	DigestionTimeMin    float64 `gorm:"not null" json:"digestion_time_min"` // 5-480 minutes
	Description         string  `gorm:"size:500" json:"description,omitempty"`
	DiabetesRecommended bool    `gorm:"index" json:"diabetes_recommended"`
	IsActive            bool    `gorm:"default:true;index" json:"is_active"`
}

// NewFood builds a catalog entry and evaluates the schema defaults once:
// calories fall back to 4/4/9 kcal per gram of carbs/protein/fat, and the
// diabetes-recommended flag defaults from GI <= 55. Range checks mirror the
// catalog constraints so bad rows never reach the store.
func NewFood(name, category string, gi, gl, carbs, fat, protein, fiber, calories, digestionMin float64) (*Food, error) {
	if name == "" {
		return nil, fmt.Errorf("food name is required")
	}
	if !validCategory(category) {
		return nil, fmt.Errorf("invalid food category %q", category)
	}
	if gi < 0 || gi > 100 {
		return nil, fmt.Errorf("glycemic index must be between 0 and 100")
	}
	if gl < 0 || gl > 50 {
		return nil, fmt.Errorf("glycemic load must be between 0 and 50")
	}
	for _, v := range []struct {
		name string
		val  float64
	}{{"carbohydrates", carbs}, {"fat", fat}, {"protein", protein}} {
		if v.val < 0 || v.val > 100 {
			return nil, fmt.Errorf("%s must be between 0 and 100 g per 100g", v.name)
		}
	}
	if fiber < 0 || fiber > 50 {
		return nil, fmt.Errorf("fiber must be between 0 and 50 g per 100g")
	}
	if digestionMin < 5 || digestionMin > 480 {
		return nil, fmt.Errorf("digestion time must be between 5 and 480 minutes")
	}
	if calories == 0 {
		calories = math.Round(carbs*4 + protein*4 + fat*9)
	}
	if calories < 0 || calories > 900 {
		return nil, fmt.Errorf("calories must be between 0 and 900 per 100g")
	}

	return &Food{
		Name:                name,
		Category:            category,
		GlycemicIndex:       gi,
		GlycemicLoad:        gl,
		Carbohydrates:       carbs,
		Fat:                 fat,
		Protein:             protein,
		Fiber:               fiber,
		Calories:            calories,
		DigestionTimeMin:    digestionMin,
		DiabetesRecommended: gi <= 55,
		IsActive:            true,
	}, nil
}

func validCategory(category string) bool {
	for _, c := range FoodCategories {
		if c == category {
			return true
		}
	}
	return false
}

// GlycemicClassification buckets the glycemic index: low <=55, medium <=70, high above.
func (f *Food) GlycemicClassification() string {
	switch {
	case f.GlycemicIndex <= 55:
		return "low"
	case f.GlycemicIndex <= 70:
		return "medium"
	default:
		return "high"
	}
}

// GlycemicLoadClassification buckets the per-100g glycemic load: low <=10, medium <=20, high above.
func (f *Food) GlycemicLoadClassification() string {
	switch {
	case f.GlycemicLoad <= 10:
		return "low"
	case f.GlycemicLoad <= 20:
		return "medium"
	default:
		return "high"
	}
}
