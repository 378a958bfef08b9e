package models

import "gorm.io/gorm"

// A catalog allergen, e.g. "Gluten". Seeded once, not user-created.
type Allergy struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null"`
}
