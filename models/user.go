package models

import (
	"gorm.io/gorm"
)

// Diabetes types used across the prediction pipeline.
const (
	DiabetesType1      = "type1"
	DiabetesType2      = "type2"
	DiabetesPrediabets = "prediabetes"
)

func ValidDiabetesType(t string) bool {
	return t == DiabetesType1 || t == DiabetesType2 || t == DiabetesPrediabets
}

type User struct {
	gorm.Model
	Name               string  `gorm:"size:100;not null" json:"name"`
	Email              string  `gorm:"uniqueIndex;not null" json:"email"`
	Password           string  `gorm:"not null" json:"-"`
	Age                int     `json:"age"`
	WeightKg           float64 `json:"weight_kg"`
	HeightM            float64 `json:"height_m"`
	DiabetesType       string  `gorm:"size:16;index" json:"diabetes_type"` // type1 | type2 | prediabetes
	BaselineGlucose    float64 `json:"baseline_glucose"`                   // mg/dL, 50-500
	DietaryPreferences string  `gorm:"size:255" json:"dietary_preferences"` // comma-separated
	ProfilePicture     string  `gorm:"size:512" json:"profile_picture"`
	IsActive           bool    `gorm:"default:true" json:"is_active"`
}
