package models

// Product is keyed by its barcode (GTIN-style numeric string).
type Product struct {
	Barcode     string       `gorm:"primaryKey"`
	ProductName string       `gorm:"not null"`
	Ingredients []Ingredient `gorm:"many2many:product_ingredients"`
}
