package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/yumutcodes/scanme/services"

	"github.com/gin-gonic/gin"
)

type HistoryInput struct {
	Barcode     string    `json:"barcode" binding:"required"`
	ProductName string    `json:"productName"`
	IsSafe      bool      `json:"isSafe"`
	ScanDate    time.Time `json:"scanDate"`
}

// POST /history
func SaveHistory(c *gin.Context) {
	email := c.MustGet("email").(string)

	var input HistoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := services.SaveHistory(email, input.Barcode, input.ProductName, input.IsSafe, input.ScanDate)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, saved)
}

// GET /history
func GetHistory(c *gin.Context) {
	email := c.MustGet("email").(string)

	history, err := services.GetUserHistory(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

// DELETE /history/:id
func DeleteHistory(c *gin.Context) {
	email := c.MustGet("email").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid history id"})
		return
	}

	if err := services.DeleteHistory(uint(id), email); err != nil {
		switch {
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrHistoryNotFound), errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
