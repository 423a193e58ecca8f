package controllers

import (
	"net/http"
	"time"

	"glucolog/services"

	"github.com/gin-gonic/gin"
)

type GlucoseController struct {
	Glucose *services.GlucoseService
}

func NewGlucoseController(glucose *services.GlucoseService) *GlucoseController {
	return &GlucoseController{Glucose: glucose}
}

func (gc *GlucoseController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var in services.CreateReadingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reading, err := gc.Glucose.CreateReading(c.Request.Context(), uid, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reading":        reading,
		"classification": reading.Classification(),
		"risk_level":     reading.RiskLevel(),
	})
}

func (gc *GlucoseController) Latest(c *gin.Context) {
	uid := c.GetUint("userID")

	reading, err := gc.Glucose.LatestReading(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	if reading == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no readings yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reading":        reading,
		"classification": reading.Classification(),
		"risk_level":     reading.RiskLevel(),
	})
}

func (gc *GlucoseController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	filter := services.ReadingHistoryFilter{
		ReadingType: c.Query("reading_type"),
		Page:        queryInt(c, "page", 1),
		Limit:       queryInt(c, "limit", 20),
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

	readings, total, err := gc.Glucose.History(c.Request.Context(), uid, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"readings": readings,
		"total":    total,
		"page":     filter.Page,
		"limit":    filter.Limit,
	})
}

func (gc *GlucoseController) Stats(c *gin.Context) {
	uid := c.GetUint("userID")

	stats, err := gc.Glucose.Stats(c.Request.Context(), uid, queryInt(c, "days", 7))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (gc *GlucoseController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := gc.Glucose.DeleteReading(c.Request.Context(), uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reading deleted"})
}
