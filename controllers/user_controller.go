package controllers

import (
	"net/http"

	"glucolog/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := uc.Users.GetProfile(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := uc.Users.UpdateProfile(c.Request.Context(), uid, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

func (uc *UserController) DeleteAccount(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := uc.Users.DeleteUser(c.Request.Context(), uid); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account disabled"})
}
