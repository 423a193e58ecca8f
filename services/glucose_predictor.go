package services

import (
	"math"

	"glucolog/models"
)

// predictionBaseConfidence is the fixed confidence reported with every
// rule-based prediction. It is a known simplification carried over from the
// original model; it is not derived from match quality.
const predictionBaseConfidence = 75

// PredictGlucose estimates the glucose response to a meal from its aggregate,
// the baseline glucose value and the user's diabetes type.
//
// The glycemic load selects one of three base curves; the diabetes-type
// adjustment is applied multiplicatively after bucket selection. An empty
// aggregate (GL 0) is a valid input and lands in the lowest bucket — "no
// food" is not an error.
func PredictGlucose(analysis models.NutritionAnalysis, currentGlucose float64, diabetesType string) models.GlucosePrediction {
	gl := float64(analysis.TotalGlycemicLoad)

	var peakIncrease, duration float64
	var peakTime int
	switch {
	case gl <= 10:
		peakIncrease = 20 + gl*2
		peakTime = 45
		duration = 90
	case gl <= 20:
		peakIncrease = 40 + gl*3
		peakTime = 60
		duration = 120
	default:
		peakIncrease = 80 + gl*2
		peakTime = 75
		duration = 180
	}

	switch diabetesType {
	case models.DiabetesType1:
		// Type 1 typically spikes higher and longer.
		peakIncrease *= 1.2
		duration *= 1.1
	case models.DiabetesPrediabets:
		peakIncrease *= 0.8
	}

	// Predicted peaks stay inside the physiologically plausible band.
	peakValue := math.Min(600, math.Max(50, currentGlucose+peakIncrease))

	// Risk rules evaluate in fixed order: the high check dominates.
	riskLevel := models.RiskLow
	switch {
	case peakValue > 180 || gl > 20:
		riskLevel = models.RiskHigh
	case peakValue > 140 || gl > 10:
		riskLevel = models.RiskMedium
	}

	return models.GlucosePrediction{
		PeakTime:   peakTime,
		PeakValue:  int(math.Round(peakValue)),
		Duration:   int(math.Round(duration)),
		RiskLevel:  riskLevel,
		Confidence: predictionBaseConfidence,
	}
}
