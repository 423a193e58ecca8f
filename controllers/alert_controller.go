package controllers

import (
	"net/http"

	"glucolog/config"
	"glucolog/services"

	"github.com/gin-gonic/gin"
)

// GET /alerts?limit=50
func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	alerts, err := services.ListAlerts(config.DB, uid, queryInt(c, "limit", 50))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
