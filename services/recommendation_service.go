package services

import (
	"glucolog/models"
)

// GenerateRecommendations evaluates the fixed advice rules against a meal's
// aggregate and its prediction. The rules are independent — any subset can
// fire — and the output order is rule-declaration order, not priority order.
func GenerateRecommendations(analysis models.NutritionAnalysis, prediction models.GlucosePrediction) []models.Recommendation {
	recs := []models.Recommendation{}

	if analysis.TotalFiber > 5 {
		recs = append(recs, models.Recommendation{
			Type:      models.RecConsumptionOrder,
			Priority:  models.PriorityHigh,
			Message:   "Eat fiber-rich foods first to slow glucose absorption",
			Reasoning: "High fiber content detected",
		})
	}

	if analysis.AverageGlycemicIndex > 70 {
		recs = append(recs, models.Recommendation{
			Type:      models.RecTiming,
			Priority:  models.PriorityHigh,
			Message:   "Consider eating this meal after physical activity",
			Reasoning: "High glycemic index foods detected",
		})
	}

	if prediction.RiskLevel == models.RiskHigh {
		recs = append(recs, models.Recommendation{
			Type:      models.RecPortionAdjustment,
			Priority:  models.PriorityHigh,
			Message:   "Consider reducing portion size by 25-30%",
			Reasoning: "Predicted high glucose spike",
		})
	}

	if analysis.TotalProtein < 10 {
		recs = append(recs, models.Recommendation{
			Type:      models.RecPairing,
			Priority:  models.PriorityMedium,
			Message:   "Add protein to help stabilize blood sugar",
			Reasoning: "Low protein content in current meal",
		})
	}

	return recs
}
