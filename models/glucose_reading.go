package models

import (
	"time"

	"gorm.io/gorm"
)

// GlucoseReading is one logged blood glucose measurement.
type GlucoseReading struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Value       float64   `gorm:"not null" json:"value"` // 30-600
	Unit        string    `gorm:"size:8;default:mg/dL" json:"unit"`
	ReadingType string    `gorm:"size:16;not null" json:"reading_type"` // fasting|postprandial|random|bedtime|pre_meal|post_meal
	MealContext string    `gorm:"size:24;default:none" json:"meal_context"`
	Notes       string    `gorm:"size:200" json:"notes,omitempty"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}

var GlucoseReadingTypes = []string{
	"fasting", "postprandial", "random", "bedtime", "pre_meal", "post_meal",
}

func ValidReadingType(t string) bool {
	for _, rt := range GlucoseReadingTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// ValueMgDL normalizes the reading to mg/dL.
func (r *GlucoseReading) ValueMgDL() float64 {
	if r.Unit == "mmol/L" {
		return r.Value * 18
	}
	return r.Value
}

// Classification bands the reading by its type: fasting uses the 70/100/125
// cutoffs, post-meal uses 70/140/199, everything else the generic bands.
func (r *GlucoseReading) Classification() string {
	v := r.ValueMgDL()
	switch r.ReadingType {
	case "fasting":
		switch {
		case v < 70:
			return "low"
		case v <= 100:
			return "normal"
		case v <= 125:
			return "prediabetic"
		default:
			return "diabetic"
		}
	case "postprandial", "post_meal":
		switch {
		case v < 70:
			return "low"
		case v <= 140:
			return "normal"
		case v <= 199:
			return "prediabetic"
		default:
			return "diabetic"
		}
	default:
		switch {
		case v < 70:
			return "low"
		case v <= 140:
			return "normal"
		case v <= 199:
			return "elevated"
		default:
			return "high"
		}
	}
}

// RiskLevel maps the classification onto the coarse low/medium/high scale.
// Hypoglycemia counts as high risk.
func (r *GlucoseReading) RiskLevel() string {
	switch r.Classification() {
	case "low":
		return "high"
	case "normal":
		return "low"
	case "prediabetic", "elevated":
		return "medium"
	default:
		return "high"
	}
}
