package controllers

import (
	"errors"
	"net/http"

	"github.com/yumutcodes/scanme/services"

	"github.com/gin-gonic/gin"
)

type AllergyInput struct {
	AllergyName string `json:"allergy_name" binding:"required"`
}

// GET /allergies
func GetAllergies(c *gin.Context) {
	email := c.MustGet("email").(string)

	allergies, err := services.GetUserAllergies(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, allergies)
}

// POST /allergies
func AddAllergy(c *gin.Context) {
	email := c.MustGet("email").(string)

	var input AllergyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allergy, err := services.AddAllergyForUser(email, input.AllergyName)
	if err != nil {
		if errors.Is(err, services.ErrAllergyNotFound) || errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, allergy)
}

// DELETE /allergies
func RemoveAllergy(c *gin.Context) {
	email := c.MustGet("email").(string)

	var input AllergyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.RemoveAllergyForUser(email, input.AllergyName); err != nil {
		if errors.Is(err, services.ErrAllergyNotFound) || errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
