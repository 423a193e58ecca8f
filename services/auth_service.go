package services

import (
	"context"
	"errors"

	"glucolog/models"
	"glucolog/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// RegisterInput carries the signup payload. Diabetes type defaults to type2
// when omitted; baseline glucose is optional and validated when present.
type RegisterInput struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=6"`
	Age             int     `json:"age"`
	WeightKg        float64 `json:"weight_kg"`
	HeightM         float64 `json:"height_m"`
	DiabetesType    string  `json:"diabetes_type"`
	BaselineGlucose float64 `json:"baseline_glucose"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.DiabetesType == "" {
		in.DiabetesType = models.DiabetesType2
	}
	if !models.ValidDiabetesType(in.DiabetesType) {
		return nil, validationErrorf("diabetes type must be one of type1, type2, prediabetes")
	}
	if in.BaselineGlucose != 0 && (in.BaselineGlucose < 50 || in.BaselineGlucose > 500) {
		return nil, validationErrorf("baseline glucose must be between 50 and 500 mg/dL")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, validationErrorf("email already registered")
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:            in.Name,
		Email:           in.Email,
		Password:        hashed,
		Age:             in.Age,
		WeightKg:        in.WeightKg,
		HeightM:         in.HeightM,
		DiabetesType:    in.DiabetesType,
		BaselineGlucose: in.BaselineGlucose,
		IsActive:        true,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials and returns a signed token plus the user.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", email, true).
		First(&user).Error
	if err != nil {
		return "", nil, errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
