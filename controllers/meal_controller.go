package controllers

import (
	"net/http"
	"time"

	"glucolog/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

func (mc *MealController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := mc.Meals.AddMeal(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (mc *MealController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		fromT, err1 := time.Parse(time.RFC3339, from)
		toT, err2 := time.Parse(time.RFC3339, to)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be RFC3339 timestamps"})
			return
		}
		meals, err := mc.Meals.ListMealsByDateRange(c.Request.Context(), uid, fromT, toT)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"meals": meals, "total": len(meals)})
		return
	}

	page, limit := queryInt(c, "page", 1), queryInt(c, "limit", 20)
	meals, total, err := mc.Meals.ListMeals(c.Request.Context(), uid, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals, "total": total, "page": page, "limit": limit})
}

func (mc *MealController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	meal, err := mc.Meals.GetMeal(c.Request.Context(), uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := mc.Meals.DeleteMeal(c.Request.Context(), uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

type attachAnalysisReq struct {
	AnalysisID uint `json:"analysis_id" binding:"required"`
}

// PUT /meals/:id/analysis — link a pipeline result to the entry.
func (mc *MealController) AttachAnalysis(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req attachAnalysisReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.Meals.AttachAnalysis(c.Request.Context(), uid, id, req.AnalysisID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "analysis linked"})
}

type postMealReadingReq struct {
	Value        float64 `json:"value" binding:"required"`
	MinutesAfter int     `json:"minutes_after"`
}

// POST /meals/:id/glucose — log an after-meal reading against the entry.
func (mc *MealController) AddPostMealReading(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req postMealReadingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.AddPostMealReading(c.Request.Context(), uid, id, req.Value, req.MinutesAfter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}
