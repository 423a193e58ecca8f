package controllers

import (
	"fmt"
	"net/http"

	"glucolog/utils"

	"github.com/gin-gonic/gin"
)

type UploadPhotoRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /photos — store a meal photo and return its URL. Recognition happens
// client-side; the backend only keeps the image.
func UploadMealPhoto(c *gin.Context) {
	uid := c.GetUint("userID")

	var req UploadPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, fmt.Sprintf("user-%d", uid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
