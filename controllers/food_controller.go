package controllers

import (
	"net/http"

	"glucolog/models"
	"glucolog/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Catalog *services.FoodCatalogService
}

func NewFoodController(catalog *services.FoodCatalogService) *FoodController {
	return &FoodController{Catalog: catalog}
}

// GET /foods?search=&category=&max_gi=&diabetes_recommended=&page=&limit=&sort=
func (fc *FoodController) List(c *gin.Context) {
	filter := services.FoodListFilter{
		Search:              c.Query("search"),
		Category:            c.Query("category"),
		DiabetesRecommended: c.Query("diabetes_recommended") == "true",
		Page:                queryInt(c, "page", 1),
		Limit:               queryInt(c, "limit", 20),
		Sort:                c.Query("sort"),
	}
	if v := c.Query("max_gi"); v != "" {
		gi := float64(queryInt(c, "max_gi", 100))
		filter.MaxGlycemicIndex = &gi
	}

	foods, total, err := fc.Catalog.ListFoods(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"foods": foods,
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
	})
}

func (fc *FoodController) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	food, err := fc.Catalog.GetFood(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"food":                        food,
		"glycemic_classification":     food.GlycemicClassification(),
		"glycemic_load_classification": food.GlycemicLoadClassification(),
	})
}

type FoodInput struct {
	Name             string  `json:"name" binding:"required"`
	Category         string  `json:"category" binding:"required"`
	GlycemicIndex    float64 `json:"glycemic_index"`
	GlycemicLoad     float64 `json:"glycemic_load"`
	Carbohydrates    float64 `json:"carbohydrates"`
	Fat              float64 `json:"fat"`
	Protein          float64 `json:"protein"`
	Fiber            float64 `json:"fiber"`
	Calories         float64 `json:"calories"`
	DigestionTimeMin float64 `json:"digestion_time_min"`
	Description      string  `json:"description"`
}

func (fc *FoodController) Create(c *gin.Context) {
	var in FoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := models.NewFood(in.Name, in.Category,
		in.GlycemicIndex, in.GlycemicLoad,
		in.Carbohydrates, in.Fat, in.Protein, in.Fiber,
		in.Calories, in.DigestionTimeMin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	food.Description = in.Description

	if err := fc.Catalog.CreateFood(c.Request.Context(), food); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (fc *FoodController) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var in FoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Re-run the factory so updates face the same range checks as creates.
	updated, err := models.NewFood(in.Name, in.Category,
		in.GlycemicIndex, in.GlycemicLoad,
		in.Carbohydrates, in.Fat, in.Protein, in.Fiber,
		in.Calories, in.DigestionTimeMin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := fc.Catalog.GetFood(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	updated.Model = food.Model
	updated.Description = in.Description
	if err := fc.Catalog.UpdateFood(c.Request.Context(), updated); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (fc *FoodController) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := fc.Catalog.DeleteFood(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food deactivated"})
}

// GET /foods/recommended
func (fc *FoodController) Recommended(c *gin.Context) {
	foods, err := fc.Catalog.RecommendedForDiabetes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods, "total": len(foods)})
}

// GET /foods/categories
func (fc *FoodController) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.FoodCategories})
}
