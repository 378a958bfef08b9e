package models

import (
	"time"

	"gorm.io/gorm"
)

// History is one past scan of a barcode by a user. ProductName is a snapshot
// taken at scan time; rows are immutable except for owner deletion.
type History struct {
	gorm.Model
	Barcode     string    `gorm:"not null"`
	ProductName string
	IsSafe      bool
	ScanDate    time.Time `gorm:"index;not null"`
	UserID      uint      `gorm:"index;not null"`
}

func (History) TableName() string {
	return "scan_history"
}
