package services

import (
	"errors"
	"testing"

	"github.com/yumutcodes/scanme/models"

	"gorm.io/gorm"
)

func seedProduct(t *testing.T, db *gorm.DB, barcode, name string, ingredientNames ...string) {
	t.Helper()

	ingredients := make([]models.Ingredient, 0, len(ingredientNames))
	for _, n := range ingredientNames {
		ing := models.Ingredient{Name: n}
		if err := db.Create(&ing).Error; err != nil {
			t.Fatalf("seed ingredient %q: %v", n, err)
		}
		ingredients = append(ingredients, ing)
	}

	product := models.Product{Barcode: barcode, ProductName: name, Ingredients: ingredients}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func TestGetProductDetails_BlankBarcode(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "scanner@scanme.com")

	for _, barcode := range []string{"", "   ", "\t\n"} {
		if _, err := GetProductDetails(barcode, "scanner@scanme.com"); !errors.Is(err, ErrBlankBarcode) {
			t.Fatalf("barcode %q: expected ErrBlankBarcode, got %v", barcode, err)
		}
	}
}

func TestGetProductDetails_UnknownBarcode(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "scanner@scanme.com")

	if _, err := GetProductDetails("0000000000000", "scanner@scanme.com"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestGetProductDetails_UnknownCaller(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, "8690000000001", "Test Bar", "Sugar")

	if _, err := GetProductDetails("8690000000001", "ghost@scanme.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetProductDetails_DangerousSortedByLevelDescending(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, "scanner@scanme.com")

	seedProduct(t, db, "8690000000002", "Instant Soup",
		"Water", "Sodium Benzoate", "Trans Fat", "Aspartame", "Salt")

	for _, di := range []models.DangerousIngredient{
		{Name: "Sodium Benzoate", DangerLevel: 4},
		{Name: "Trans Fat", DangerLevel: 9},
		{Name: "Aspartame", DangerLevel: 6},
	} {
		if err := db.Create(&di).Error; err != nil {
			t.Fatalf("seed dangerous ingredient: %v", err)
		}
	}

	detail, err := GetProductDetails("8690000000002", "scanner@scanme.com")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if len(detail.DangerousIngredients) != 3 {
		t.Fatalf("expected 3 dangerous ingredients, got %d", len(detail.DangerousIngredients))
	}
	for i := 1; i < len(detail.DangerousIngredients); i++ {
		if detail.DangerousIngredients[i-1].DangerLevel < detail.DangerousIngredients[i].DangerLevel {
			t.Fatalf("dangerous ingredients out of order at %d: %+v", i, detail.DangerousIngredients)
		}
	}
	if detail.DangerousIngredients[0].Name != "Trans Fat" {
		t.Fatalf("expected Trans Fat first, got %q", detail.DangerousIngredients[0].Name)
	}
}

func TestGetProductDetails_IngredientNamesTrimmedAndDeduplicated(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, "scanner@scanme.com")

	// " Sugar" and "Sugar" are distinct rows that collapse after trimming;
	// the blank name is dropped entirely.
	seedProduct(t, db, "8690000000003", "Candy", " Sugar", "Sugar", "  ", "Cocoa")

	detail, err := GetProductDetails("8690000000003", "scanner@scanme.com")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if len(detail.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredient names, got %v", detail.Ingredients)
	}
	if detail.Ingredients[0] != "Sugar" || detail.Ingredients[1] != "Cocoa" {
		t.Fatalf("expected [Sugar Cocoa] in first-seen order, got %v", detail.Ingredients)
	}
}

func TestGetProductDetails_NoDangerousMatches(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, "scanner@scanme.com")

	seedProduct(t, db, "8690000000004", "Spring Water", "Water")

	detail, err := GetProductDetails("8690000000004", "scanner@scanme.com")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(detail.DangerousIngredients) != 0 {
		t.Fatalf("expected no dangerous ingredients, got %+v", detail.DangerousIngredients)
	}
}
