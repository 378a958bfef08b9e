package models

// DangerousIngredient is a reference row matched by exact name against
// product ingredient names. DangerLevel is a 1-10 severity score.
type DangerousIngredient struct {
	Name        string `gorm:"primaryKey"`
	DangerLevel int    `gorm:"not null"`
}
