package controllers

import (
	"net/http"
	"time"

	"glucolog/models"
	"glucolog/services"
	"glucolog/utils"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	Analysis *services.AnalysisService
	Users    *services.UserService
}

func NewAnalysisController(analysis *services.AnalysisService, users *services.UserService) *AnalysisController {
	return &AnalysisController{Analysis: analysis, Users: users}
}

// POST /analysis — run the full estimation pipeline on precomputed detections.
func (ac *AnalysisController) Analyze(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Users.FindByID(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	result, err := ac.Analysis.Analyze(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (ac *AnalysisController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	filter := services.HistoryFilter{
		MealType:  c.Query("meal_type"),
		RiskLevel: c.Query("risk_level"),
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 20),
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.From = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.To = &t
		}
	}

	analyses, total, err := ac.Analysis.History(c.Request.Context(), uid, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analyses": analyses,
		"total":    total,
		"page":     filter.Page,
		"limit":    filter.Limit,
	})
}

func (ac *AnalysisController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	analysis, err := ac.Analysis.Get(c.Request.Context(), uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (ac *AnalysisController) Feedback(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var in services.FeedbackInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := ac.Analysis.UpdateFeedback(c.Request.Context(), uid, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

type shareReq struct {
	Emails []string `json:"emails" binding:"required"`
}

// POST /analysis/:id/share — mark shared and mail each recipient via SES.
func (ac *AnalysisController) Share(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req shareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Users.FindByID(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	analysis, err := ac.Analysis.Share(c.Request.Context(), uid, id, req.Emails,
		func(email string, a *models.FoodAnalysis) error {
			prediction := a.Prediction.Data()
			return utils.SendAnalysisShareEmail(email, user.Name, a.MealType,
				prediction.PeakValue, prediction.RiskLevel)
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "analysis shared",
		"shared_with": req.Emails,
		"analysis_id": analysis.ID,
	})
}

func (ac *AnalysisController) Stats(c *gin.Context) {
	uid := c.GetUint("userID")

	stats, err := ac.Analysis.Stats(c.Request.Context(), uid, queryInt(c, "days", 30))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
