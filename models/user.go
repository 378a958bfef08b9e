package models

import (
	"gorm.io/gorm"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type User struct {
	gorm.Model
	Username  string    `gorm:"not null"`
	Password  string    `gorm:"not null"` // bcrypt hash, never the plaintext
	Email     string    `gorm:"uniqueIndex;not null"`
	Name      string
	Surname   string
	Role      string    `gorm:"not null;default:ROLE_USER"`
	Allergies []Allergy `gorm:"many2many:user_allergies"`
}
