package services

import (
	"errors"

	"github.com/yumutcodes/scanme/config"
	"github.com/yumutcodes/scanme/models"

	"gorm.io/gorm"
)

type AllergyDto struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func GetUserAllergies(email string) ([]AllergyDto, error) {
	user, err := findUserWithAllergies(email)
	if err != nil {
		return nil, err
	}

	out := make([]AllergyDto, 0, len(user.Allergies))
	for _, a := range user.Allergies {
		out = append(out, AllergyDto{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

// AddAllergyForUser links a catalog allergy to the user. Re-adding an allergy
// the user already has is a no-op that still returns the allergy.
func AddAllergyForUser(email, allergyName string) (*AllergyDto, error) {
	user, err := findUserWithAllergies(email)
	if err != nil {
		return nil, err
	}

	allergy, err := findAllergyByName(allergyName)
	if err != nil {
		return nil, err
	}

	for _, a := range user.Allergies {
		if a.ID == allergy.ID {
			return &AllergyDto{ID: allergy.ID, Name: allergy.Name}, nil
		}
	}

	if err := config.DB.Model(user).Association("Allergies").Append(allergy); err != nil {
		return nil, err
	}

	return &AllergyDto{ID: allergy.ID, Name: allergy.Name}, nil
}

// RemoveAllergyForUser fails only when the name is unknown to the catalog;
// removing an allergy the user does not have is a silent no-op.
func RemoveAllergyForUser(email, allergyName string) error {
	user, err := findUserWithAllergies(email)
	if err != nil {
		return err
	}

	allergy, err := findAllergyByName(allergyName)
	if err != nil {
		return err
	}

	return config.DB.Model(user).Association("Allergies").Delete(allergy)
}

func findUserWithAllergies(email string) (*models.User, error) {
	var user models.User
	err := config.DB.Preload("Allergies").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func findAllergyByName(name string) (*models.Allergy, error) {
	var allergy models.Allergy
	err := config.DB.Where("name = ?", name).First(&allergy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAllergyNotFound
		}
		return nil, err
	}
	return &allergy, nil
}
