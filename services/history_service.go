package services

import (
	"errors"
	"time"

	"github.com/yumutcodes/scanme/config"
	"github.com/yumutcodes/scanme/models"

	"gorm.io/gorm"
)

type HistoryDto struct {
	ID          uint      `json:"id"`
	Barcode     string    `json:"barcode"`
	ProductName string    `json:"productName"`
	IsSafe      bool      `json:"isSafe"`
	ScanDate    time.Time `json:"scanDate"`
}

// SaveHistory appends a scan record for the user. Repeat scans of the same
// barcode are not deduplicated.
func SaveHistory(email, barcode, productName string, isSafe bool, scanDate time.Time) (*HistoryDto, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	if scanDate.IsZero() {
		scanDate = time.Now()
	}

	entry := models.History{
		Barcode:     barcode,
		ProductName: productName,
		IsSafe:      isSafe,
		ScanDate:    scanDate,
		UserID:      user.ID,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	return historyToDto(&entry), nil
}

func GetUserHistory(email string) ([]HistoryDto, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	var rows []models.History
	err = config.DB.Where("user_id = ?", user.ID).Order("scan_date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]HistoryDto, 0, len(rows))
	for i := range rows {
		out = append(out, *historyToDto(&rows[i]))
	}
	return out, nil
}

// DeleteHistory removes one entry, but only for its owner.
func DeleteHistory(id uint, email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}

	var entry models.History
	if err := config.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHistoryNotFound
		}
		return err
	}

	if entry.UserID != user.ID {
		return ErrNotOwner
	}

	return config.DB.Delete(&entry).Error
}

func historyToDto(entry *models.History) *HistoryDto {
	return &HistoryDto{
		ID:          entry.ID,
		Barcode:     entry.Barcode,
		ProductName: entry.ProductName,
		IsSafe:      entry.IsSafe,
		ScanDate:    entry.ScanDate,
	}
}
