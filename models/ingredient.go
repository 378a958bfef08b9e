package models

import "gorm.io/gorm"

// The name is the join key used for danger lookups.
type Ingredient struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null"`
}
