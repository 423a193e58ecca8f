package models

import "testing"

func TestValueMgDL(t *testing.T) {
	r := GlucoseReading{Value: 5.5, Unit: "mmol/L"}
	if got := r.ValueMgDL(); got != 99 {
		t.Errorf("ValueMgDL() = %v, want 99", got)
	}

	r = GlucoseReading{Value: 110, Unit: "mg/dL"}
	if got := r.ValueMgDL(); got != 110 {
		t.Errorf("ValueMgDL() = %v, want 110", got)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		readingType string
		want        string
	}{
		{"fasting low", 65, "fasting", "low"},
		{"fasting normal", 95, "fasting", "normal"},
		{"fasting prediabetic", 110, "fasting", "prediabetic"},
		{"fasting diabetic", 130, "fasting", "diabetic"},
		{"postprandial normal", 130, "postprandial", "normal"},
		{"postprandial prediabetic", 180, "postprandial", "prediabetic"},
		{"post_meal diabetic", 210, "post_meal", "diabetic"},
		{"random elevated", 150, "random", "elevated"},
		{"random high", 220, "random", "high"},
		{"bedtime normal", 100, "bedtime", "normal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := GlucoseReading{Value: tt.value, ReadingType: tt.readingType}
			if got := r.Classification(); got != tt.want {
				t.Errorf("Classification() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		readingType string
		want        string
	}{
		{"hypoglycemia is high risk", 60, "random", "high"},
		{"normal is low risk", 100, "random", "low"},
		{"elevated is medium risk", 160, "random", "medium"},
		{"fasting prediabetic is medium risk", 115, "fasting", "medium"},
		{"very high is high risk", 250, "random", "high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := GlucoseReading{Value: tt.value, ReadingType: tt.readingType}
			if got := r.RiskLevel(); got != tt.want {
				t.Errorf("RiskLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}
