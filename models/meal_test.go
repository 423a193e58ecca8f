package models

import (
	"testing"

	"gorm.io/datatypes"
)

func TestComputeTotals(t *testing.T) {
	entry := MealEntry{
		Items: []MealItem{
			{Nutrition: datatypes.NewJSONType(&MealItemNutrition{
				Calories: 179, Carbohydrates: 9, Protein: 2, Fat: 15, Fiber: 7, GlycemicLoad: 1,
			})},
			{Nutrition: datatypes.NewJSONType[*MealItemNutrition](nil)}, // no snapshot
			{Nutrition: datatypes.NewJSONType(&MealItemNutrition{
				Calories: 80, Carbohydrates: 15.5, GlycemicLoad: 8,
			})},
		},
	}

	totals := entry.ComputeTotals()
	if totals.Calories != 259 {
		t.Errorf("Calories = %v, want 259", totals.Calories)
	}
	if totals.Carbohydrates != 24.5 {
		t.Errorf("Carbohydrates = %v, want 24.5", totals.Carbohydrates)
	}
	if totals.EstimatedGlycemicLoad != 9 {
		t.Errorf("EstimatedGlycemicLoad = %v, want 9", totals.EstimatedGlycemicLoad)
	}
}

func TestValidMealType(t *testing.T) {
	for _, mt := range MealTypes {
		if !ValidMealType(mt) {
			t.Errorf("ValidMealType(%q) = false", mt)
		}
	}
	if ValidMealType("brunch") {
		t.Errorf("ValidMealType(brunch) = true, want false")
	}
}
