package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/yumutcodes/scanme/config"
	"github.com/yumutcodes/scanme/models"

	"gorm.io/gorm"
)

type DangerousIngredientDto struct {
	Name        string `json:"name"`
	DangerLevel int    `json:"dangerLevel"`
}

type ProductDetail struct {
	Barcode              string                   `json:"barcode"`
	ProductName          string                   `json:"productName"`
	Ingredients          []string                 `json:"ingredients"`
	DangerousIngredients []DangerousIngredientDto `json:"dangerousIngredients"`
}

// GetProductDetails resolves a barcode to the product's ingredient names plus
// the subset of those names found in the dangerous-ingredient catalog, sorted
// by descending danger level. Pure read; every call re-queries the store.
func GetProductDetails(barcode, userEmail string) (*ProductDetail, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, ErrBlankBarcode
	}

	// Authorization gate: the token's subject must still resolve to a user.
	if _, err := FindUserByEmail(userEmail); err != nil {
		return nil, err
	}

	var product models.Product
	err := config.DB.Preload("Ingredients").Where("barcode = ?", barcode).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// Trim, drop blanks, de-duplicate by exact equality, keep first-seen order.
	names := make([]string, 0, len(product.Ingredients))
	seen := make(map[string]bool, len(product.Ingredients))
	for _, ing := range product.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	dangerous := make([]DangerousIngredientDto, 0)
	if len(names) > 0 {
		var rows []models.DangerousIngredient
		if err := config.DB.Where("name IN ?", names).Order("name").Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			dangerous = append(dangerous, DangerousIngredientDto{Name: row.Name, DangerLevel: row.DangerLevel})
		}
		// Stable so equal levels keep the catalog lookup order.
		sort.SliceStable(dangerous, func(i, j int) bool {
			return dangerous[i].DangerLevel > dangerous[j].DangerLevel
		})
	}

	return &ProductDetail{
		Barcode:              product.Barcode,
		ProductName:          product.ProductName,
		Ingredients:          names,
		DangerousIngredients: dangerous,
	}, nil
}
