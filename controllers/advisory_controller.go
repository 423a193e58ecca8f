package controllers

import (
	"net/http"

	"glucolog/services"

	"github.com/gin-gonic/gin"
)

type AdvisoryController struct {
	Advisory *services.AdvisoryService
	Users    *services.UserService
}

func NewAdvisoryController(advisory *services.AdvisoryService, users *services.UserService) *AdvisoryController {
	return &AdvisoryController{Advisory: advisory, Users: users}
}

// POST /advisory — forward a meal to the external reasoning service. The
// result is stored alongside (never merged with) the rule-based prediction.
func (ac *AdvisoryController) Analyze(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.AdvisoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Users.FindByID(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	result, cached, err := ac.Advisory.AnalyzeMeal(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if cached {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"analysis": result, "cached": cached})
}

func (ac *AdvisoryController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	var mealEntryID *uint
	if v := c.Query("meal_entry_id"); v != "" {
		id := uint(queryInt(c, "meal_entry_id", 0))
		mealEntryID = &id
	}

	analyses, total, err := ac.Advisory.History(c.Request.Context(),
		uid, mealEntryID, c.Query("risk_level"),
		queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": analyses, "total": total})
}

func (ac *AdvisoryController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	analysis, err := ac.Advisory.Get(c.Request.Context(), uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}
