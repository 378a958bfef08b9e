package controllers

import (
	"errors"
	"net/http"

	"github.com/yumutcodes/scanme/services"

	"github.com/gin-gonic/gin"
)

// GET /products/search?barcode=...
func SearchProduct(c *gin.Context) {
	email := c.MustGet("email").(string)

	detail, err := services.GetProductDetails(c.Query("barcode"), email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBlankBarcode):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrProductNotFound), errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, detail)
}
