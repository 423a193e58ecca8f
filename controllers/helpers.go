package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"glucolog/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps service errors onto HTTP statuses: validation problems
// are the caller's fault, missing records are 404, everything else is 500.
func respondError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrAdvisoryUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "advisory service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}
