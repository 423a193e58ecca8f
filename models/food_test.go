package models

import "testing"

func TestNewFoodDefaults(t *testing.T) {
	f, err := NewFood("Avocado", "fruits", 15, 1, 9, 15, 2, 7, 0, 180)
	if err != nil {
		t.Fatalf("NewFood() error = %v", err)
	}
	// 9*4 + 2*4 + 15*9
	if f.Calories != 179 {
		t.Errorf("derived calories = %v, want 179", f.Calories)
	}
	if !f.DiabetesRecommended {
		t.Errorf("GI 15 should default to diabetes recommended")
	}
	if !f.IsActive {
		t.Errorf("new foods should be active")
	}

	f2, err := NewFood("White bread", "cereals", 75, 10, 49, 3, 8, 2, 265, 120)
	if err != nil {
		t.Fatalf("NewFood() error = %v", err)
	}
	if f2.Calories != 265 {
		t.Errorf("explicit calories = %v, want 265 unchanged", f2.Calories)
	}
	if f2.DiabetesRecommended {
		t.Errorf("GI 75 should not be diabetes recommended")
	}
}

func TestNewFoodValidation(t *testing.T) {
	tests := []struct {
		name     string
		food     string
		category string
		gi, gl   float64
		carbs    float64
		digest   float64
	}{
		{"empty name", "", "fruits", 15, 1, 9, 180},
		{"unknown category", "Avocado", "snails", 15, 1, 9, 180},
		{"gi above 100", "Avocado", "fruits", 101, 1, 9, 180},
		{"negative gi", "Avocado", "fruits", -1, 1, 9, 180},
		{"gl above 50", "Avocado", "fruits", 15, 51, 9, 180},
		{"carbs above 100", "Avocado", "fruits", 15, 1, 101, 180},
		{"digestion too short", "Avocado", "fruits", 15, 1, 9, 4},
		{"digestion too long", "Avocado", "fruits", 15, 1, 9, 481},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFood(tt.food, tt.category, tt.gi, tt.gl, tt.carbs, 15, 2, 7, 0, tt.digest)
			if err == nil {
				t.Errorf("NewFood() expected error, got nil")
			}
		})
	}
}

func TestGlycemicClassification(t *testing.T) {
	tests := []struct {
		gi   float64
		want string
	}{
		{55, "low"},
		{56, "medium"},
		{70, "medium"},
		{71, "high"},
	}
	for _, tt := range tests {
		f := Food{GlycemicIndex: tt.gi}
		if got := f.GlycemicClassification(); got != tt.want {
			t.Errorf("GlycemicClassification(gi=%v) = %q, want %q", tt.gi, got, tt.want)
		}
	}
}

func TestGlycemicLoadClassification(t *testing.T) {
	tests := []struct {
		gl   float64
		want string
	}{
		{10, "low"},
		{11, "medium"},
		{20, "medium"},
		{21, "high"},
	}
	for _, tt := range tests {
		f := Food{GlycemicLoad: tt.gl}
		if got := f.GlycemicLoadClassification(); got != tt.want {
			t.Errorf("GlycemicLoadClassification(gl=%v) = %q, want %q", tt.gl, got, tt.want)
		}
	}
}
