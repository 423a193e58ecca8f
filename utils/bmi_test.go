package utils

import "testing"

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightM  float64
		want     float64
	}{
		{"typical", 70, 1.75, 22.9},
		{"zero height", 70, 0, 0},
		{"zero weight", 0, 1.75, 0},
		{"implausible height", 70, 3.0, 0},
		{"implausible weight", 500, 1.75, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateBMI(tt.weightKg, tt.heightM); got != tt.want {
				t.Errorf("CalculateBMI(%v, %v) = %v, want %v", tt.weightKg, tt.heightM, got, tt.want)
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{0, "Unknown"},
		{17, "Underweight"},
		{22, "Normal weight"},
		{27, "Overweight"},
		{32, "Obesity class I"},
		{37, "Obesity class II"},
		{42, "Obesity class III"},
	}
	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}
