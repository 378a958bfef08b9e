package config

import (
	"fmt"
	"testing"

	"github.com/yumutcodes/scanme/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openSeedTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func TestSeed(t *testing.T) {
	t.Setenv("SEED_USER_MIN", "1")
	t.Setenv("SEED_USER_MAX", "2")
	db := openSeedTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var allergyCount, dangerCount, ingredientCount, productCount int64
	db.Model(&models.Allergy{}).Count(&allergyCount)
	db.Model(&models.DangerousIngredient{}).Count(&dangerCount)
	db.Model(&models.Ingredient{}).Count(&ingredientCount)
	db.Model(&models.Product{}).Count(&productCount)

	if allergyCount != int64(len(allergyNames)) {
		t.Fatalf("allergy count = %d, want %d", allergyCount, len(allergyNames))
	}
	if dangerCount != int64(len(dangerousIngredients)) {
		t.Fatalf("dangerous ingredient count = %d, want %d", dangerCount, len(dangerousIngredients))
	}
	if ingredientCount != int64(len(ingredientNames)) {
		t.Fatalf("ingredient count = %d, want %d", ingredientCount, len(ingredientNames))
	}
	if productCount != int64(len(productTemplates)) {
		t.Fatalf("product count = %d, want %d", productCount, len(productTemplates))
	}

	// The wafer keeps its fixed barcode and its key ingredients.
	var wafer models.Product
	if err := db.Preload("Ingredients").First(&wafer, "barcode = ?", "8690504020509").Error; err != nil {
		t.Fatalf("find seeded wafer: %v", err)
	}
	found := map[string]bool{}
	for _, ing := range wafer.Ingredients {
		found[ing.Name] = true
	}
	for _, want := range []string{"Hazelnut Puree", "Emulsifiers"} {
		if !found[want] {
			t.Fatalf("wafer missing ingredient %q; has %v", want, wafer.Ingredients)
		}
	}

	var admin models.User
	if err := db.First(&admin, "email = ?", "admin@scanme.com").Error; err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("admin role = %q, want %q", admin.Role, models.RoleAdmin)
	}
	if admin.Password == "admin123" {
		t.Fatal("admin password stored in clear text")
	}

	var testUser models.User
	if err := db.Preload("Allergies").First(&testUser, "email = ?", "test@scanme.com").Error; err != nil {
		t.Fatalf("find test user: %v", err)
	}
	if len(testUser.Allergies) != 3 {
		t.Fatalf("test user allergy count = %d, want 3", len(testUser.Allergies))
	}
}

func TestSeed_IdempotentOnPopulatedDatabase(t *testing.T) {
	t.Setenv("SEED_USER_MIN", "1")
	t.Setenv("SEED_USER_MAX", "1")
	db := openSeedTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	var usersBefore, productsBefore int64
	db.Model(&models.User{}).Count(&usersBefore)
	db.Model(&models.Product{}).Count(&productsBefore)

	if err := Seed(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var usersAfter, productsAfter int64
	db.Model(&models.User{}).Count(&usersAfter)
	db.Model(&models.Product{}).Count(&productsAfter)

	if usersAfter != usersBefore || productsAfter != productsBefore {
		t.Fatalf("second seed changed row counts: users %d->%d, products %d->%d",
			usersBefore, usersAfter, productsBefore, productsAfter)
	}
}

func TestSeed_Disabled(t *testing.T) {
	t.Setenv("SEED_ENABLED", "false")
	db := openSeedTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var count int64
	db.Model(&models.Allergy{}).Count(&count)
	if count != 0 {
		t.Fatalf("seeding ran while disabled: %d allergies", count)
	}
}
