package services

import (
	"math"

	"glucolog/models"
)

// Coefficients of the digestion-time model: a meal starts from a 60 minute
// base, with fat, protein and fiber each slowing digestion at a fixed rate.
const (
	digestionBaseMin      = 60.0
	digestionFatFactor    = 2.0
	digestionProteinFactor = 1.5
	digestionFiberFactor  = 3.0
)

// ScaleNutrition scales a catalog entry's per-100g facts to the given portion.
// Each field is rounded independently before any summation happens; the
// rounding point is observable in the totals and must not move.
func ScaleNutrition(food *models.Food, portionGrams float64) *models.NutritionalData {
	mult := portionGrams / 100
	return &models.NutritionalData{
		Calories:      int(math.Round(food.Calories * mult)),
		Carbohydrates: int(math.Round(food.Carbohydrates * mult)),
		Protein:       int(math.Round(food.Protein * mult)),
		Fat:           int(math.Round(food.Fat * mult)),
		Fiber:         int(math.Round(food.Fiber * mult)),
		GlycemicIndex: food.GlycemicIndex,
		GlycemicLoad:  int(math.Round(food.GlycemicLoad * mult)),
	}
}

// Aggregate sums nutritional contributions across the detected items of one
// analysis. Items without nutritional data are skipped for the totals but
// remain in the list.
//
// The average glycemic index is weighted by each item's carbohydrate
// contribution, not by item count; with zero total carbs it is defined to be
// 0 rather than NaN.
func Aggregate(items []models.DetectedFood) models.NutritionAnalysis {
	var out models.NutritionAnalysis

	var giWeighted, carbSum float64
	for _, item := range items {
		n := item.NutritionalData
		if n == nil {
			continue
		}
		out.TotalCalories += n.Calories
		out.TotalCarbs += n.Carbohydrates
		out.TotalProtein += n.Protein
		out.TotalFat += n.Fat
		out.TotalFiber += n.Fiber
		out.TotalGlycemicLoad += n.GlycemicLoad

		giWeighted += n.GlycemicIndex * float64(n.Carbohydrates)
		carbSum += float64(n.Carbohydrates)
	}

	if carbSum > 0 {
		out.AverageGlycemicIndex = math.Round(giWeighted / carbSum)
	} else {
		out.AverageGlycemicIndex = 0
	}

	out.EstimatedDigestionTime = int(math.Round(
		digestionBaseMin +
			float64(out.TotalFat)*digestionFatFactor +
			float64(out.TotalProtein)*digestionProteinFactor +
			float64(out.TotalFiber)*digestionFiberFactor,
	))

	return out
}
