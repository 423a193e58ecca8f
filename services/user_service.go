package services

import (
	"context"
	"errors"
	"fmt"

	"glucolog/models"
	"glucolog/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ProfileInput carries a partial profile update. Zero values leave the stored
// field alone.
type ProfileInput struct {
	Name               string   `json:"name"`
	Age                int      `json:"age"`
	WeightKg           float64  `json:"weight_kg"`
	HeightM            float64  `json:"height_m"`
	DiabetesType       string   `json:"diabetes_type"`
	BaselineGlucose    float64  `json:"baseline_glucose"`
	DietaryPreferences *string  `json:"dietary_preferences"`
	ProfilePicture     string   `json:"profile_picture"` // base64 data URI
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (map[string]interface{}, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", userID, true).
		First(&user).Error
	if err != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":                  user.ID,
		"name":                user.Name,
		"email":               user.Email,
		"age":                 user.Age,
		"weight_kg":           user.WeightKg,
		"height_m":            user.HeightM,
		"bmi":                 utils.CalculateBMI(user.WeightKg, user.HeightM),
		"diabetes_type":       user.DiabetesType,
		"baseline_glucose":    user.BaselineGlucose,
		"dietary_preferences": user.DietaryPreferences,
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) error {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", userID, true).
		First(&user).Error
	if err != nil {
		return errors.New("user not found or disabled")
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Age > 0 {
		user.Age = in.Age
	}
	if in.WeightKg > 0 {
		user.WeightKg = in.WeightKg
	}
	if in.HeightM > 0 {
		user.HeightM = in.HeightM
	}
	if in.DiabetesType != "" {
		if !models.ValidDiabetesType(in.DiabetesType) {
			return validationErrorf("diabetes type must be one of type1, type2, prediabetes")
		}
		user.DiabetesType = in.DiabetesType
	}
	if in.BaselineGlucose != 0 {
		if in.BaselineGlucose < 50 || in.BaselineGlucose > 500 {
			return validationErrorf("baseline glucose must be between 50 and 500 mg/dL")
		}
		user.BaselineGlucose = in.BaselineGlucose
	}
	if in.DietaryPreferences != nil {
		user.DietaryPreferences = *in.DietaryPreferences
	}
	if in.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(in.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return s.db.WithContext(ctx).Save(&user).Error
}

func (s *UserService) FindByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", userID, true).
		First(&user).Error
	if err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// DeleteUser disables the account; data stays for the retention window.
func (s *UserService) DeleteUser(ctx context.Context, userID uint) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return err
	}
	user.IsActive = false
	return s.db.WithContext(ctx).Save(&user).Error
}
