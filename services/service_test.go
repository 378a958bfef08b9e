package services

import (
	"fmt"
	"testing"

	"github.com/yumutcodes/scanme/config"
	"github.com/yumutcodes/scanme/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Allergy{},
		&models.DangerousIngredient{},
		&models.Ingredient{},
		&models.Product{},
		&models.History{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	config.DB = db
	return db
}

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()

	if err := RegisterUser("tester", "secret123", email, "Test", "User", ""); err != nil {
		t.Fatalf("register user: %v", err)
	}
	user, err := FindUserByEmail(email)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	return user
}
