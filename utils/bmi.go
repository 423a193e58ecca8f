package utils

import "math"

// CalculateBMI expects weight in kilograms and height in meters. Returns 0
// for missing or implausible input so profile responses stay well-formed.
func CalculateBMI(weightKg, heightM float64) float64 {
	if heightM <= 0 || weightKg <= 0 {
		return 0
	}
	if heightM < 0.5 || heightM > 2.5 || weightKg < 10 || weightKg > 400 {
		return 0
	}
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return "Unknown"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
