package config

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/yumutcodes/scanme/models"
	"github.com/yumutcodes/scanme/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seed populates the catalogs and a set of synthetic accounts on an empty
// database. It runs once at process start, before the server begins serving,
// and is idempotent per table: any table that already has rows is skipped.
func Seed(db *gorm.DB) error {
	if strings.EqualFold(os.Getenv("SEED_ENABLED"), "false") {
		logrus.Info("Data seeding is disabled. Skipping...")
		return nil
	}

	var userCount, productCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if userCount > 0 || productCount > 0 {
		logrus.Info("Database already populated. Skipping data seeding...")
		return nil
	}

	logrus.Info("Starting data seeding...")

	if err := seedAllergies(db); err != nil {
		return err
	}
	if err := seedDangerousIngredients(db); err != nil {
		return err
	}
	if err := seedIngredients(db); err != nil {
		return err
	}
	if err := seedProducts(db); err != nil {
		return err
	}
	if err := seedUsers(db); err != nil {
		return err
	}

	logrus.Info("Data seeding completed successfully!")
	return nil
}

var allergyNames = []string{
	"Peanuts", "Tree Nuts", "Milk (Dairy)", "Eggs", "Soy", "Gluten",
	"Fish", "Shellfish", "Sesame", "Mustard", "Celery", "Sulfites",
	"Lupin", "Molluscs",
}

func seedAllergies(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Allergy{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("Allergies already exist. Skipping...")
		return nil
	}

	allergies := make([]models.Allergy, 0, len(allergyNames))
	for _, name := range allergyNames {
		allergies = append(allergies, models.Allergy{Name: name})
	}
	if err := db.Create(&allergies).Error; err != nil {
		return err
	}

	logrus.Infof("Seeded %d allergies", len(allergies))
	return nil
}

var dangerousIngredients = []models.DangerousIngredient{
	{Name: "Aspartame", DangerLevel: 6},
	{Name: "Monosodium Glutamate (MSG)", DangerLevel: 7},
	{Name: "Sodium Nitrite", DangerLevel: 8},
	{Name: "Artificial Colors (E102, E110, etc.)", DangerLevel: 5},
	{Name: "Sodium Benzoate", DangerLevel: 4},
	{Name: "Trans Fat", DangerLevel: 9},
	{Name: "High Fructose Corn Syrup", DangerLevel: 6},
	{Name: "Potassium Sorbate", DangerLevel: 3},
	{Name: "Sulfur Dioxide", DangerLevel: 5},
	{Name: "Brominated Vegetable Oil", DangerLevel: 7},
	{Name: "Acesulfame Potassium", DangerLevel: 5},
	{Name: "Saccharin", DangerLevel: 4},
	{Name: "BHA (Butylated Hydroxyanisole)", DangerLevel: 7},
	{Name: "BHT (Butylated Hydroxytoluene)", DangerLevel: 6},
	{Name: "Parabens", DangerLevel: 4},
}

func seedDangerousIngredients(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.DangerousIngredient{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("Dangerous ingredients already exist. Skipping...")
		return nil
	}

	if err := db.Create(&dangerousIngredients).Error; err != nil {
		return err
	}

	logrus.Infof("Seeded %d dangerous ingredients", len(dangerousIngredients))
	return nil
}

var ingredientNames = []string{
	"Sugar", "Salt", "Flour", "Water", "Vegetable Oil", "Palm Oil", "Butter",
	"Milk", "Wheat Flour", "Corn Starch", "Soy Sauce", "Vinegar", "Garlic",
	"Onion", "Tomato Paste", "Cheese", "Yeast", "Eggs", "Chocolate", "Cocoa",
	"Vanilla", "Honey", "Cinnamon", "Ginger", "Olive Oil", "Rice", "Chicken",
	"Beef", "Pork", "Shrimp", "Peanuts", "Almonds", "Hazelnuts", "Walnuts",
	"Wheat", "Barley", "Rye", "Soybeans", "Baking Powder", "Potatoes",
	"Seasoning", "Carbon Dioxide", "Caramel Color", "Phosphoric Acid",
	"Caffeine", "Natural Flavors", "Cocoa Butter", "Soy Lecithin", "Cream",
	"Spices", "Gelatin", "Live Cultures", "Tuna", "Hydrogenated Vegetable Oil",
	"Fruit", "Emulsifiers", "Sodium Citrate", "Hazelnut Puree", "Cocoa Mass",
	"Starch", "Whey Powder", "Cocoa Powder", "Skimmed Milk Powder",
	"Egg White Powder", "Flavourings", "Raising Agents", "Whole Milk Powder",
	"Sodium Benzoate", "Monosodium Glutamate", "Sodium Nitrite",
	"Artificial Colors",
}

func seedIngredients(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Ingredient{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("Ingredients already exist. Skipping...")
		return nil
	}

	ingredients := make([]models.Ingredient, 0, len(ingredientNames))
	for _, name := range ingredientNames {
		ingredients = append(ingredients, models.Ingredient{Name: name})
	}
	if err := db.Create(&ingredients).Error; err != nil {
		return err
	}

	logrus.Infof("Seeded %d ingredients", len(ingredients))
	return nil
}

type productTemplate struct {
	name        string
	ingredients string
}

var productTemplates = []productTemplate{
	{"Chocolate Cookie", "Wheat Flour,Sugar,Palm Oil,Cocoa,Chocolate,Vanilla,Eggs,Baking Powder,Salt,Milk"},
	{"Potato Chips", "Potatoes,Vegetable Oil,Salt,Seasoning,Sugar"},
	{"Cola Drink", "Water,Sugar,Carbon Dioxide,Caramel Color,Phosphoric Acid,Caffeine,Natural Flavors,Sodium Benzoate"},
	{"White Bread", "Wheat Flour,Water,Yeast,Salt,Sugar,Vegetable Oil"},
	{"Chocolate Bar", "Sugar,Cocoa,Milk,Cocoa Butter,Vanilla,Soy Lecithin"},
	{"Tomato Soup", "Water,Tomato Paste,Cream,Salt,Sugar,Onion,Garlic,Spices,Sodium Benzoate"},
	{"Instant Noodles", "Wheat Flour,Palm Oil,Salt,Seasoning,Monosodium Glutamate,Sodium Nitrite,Artificial Colors,Garlic,Onion"},
	{"Fruit Yogurt", "Milk,Sugar,Fruit,Gelatin,Vanilla,Live Cultures"},
	{"Canned Tuna", "Tuna,Water,Salt,Vegetable Oil,Sodium Benzoate"},
	{"Peanut Butter", "Peanuts,Sugar,Palm Oil,Salt,Hydrogenated Vegetable Oil"},
	{"Soy Sauce", "Soybeans,Wheat,Salt,Water,Sodium Benzoate"},
	{"Processed Cheese", "Cheese,Milk,Butter,Salt,Emulsifiers,Sodium Citrate,Artificial Colors,Sodium Benzoate"},
	{"Ulker Chocolate Wafer", "Sugar,Wheat Flour,Vegetable Oil,Hazelnut Puree,Whole Milk Powder,Cocoa Butter,Cocoa Mass,Starch,Whey Powder,Emulsifiers,Salt,Cocoa Powder,Skimmed Milk Powder,Egg White Powder,Flavourings,Raising Agents"},
	{"Nutella Hazelnut Spread", "Sugar,Palm Oil,Hazelnuts,Skimmed Milk Powder,Cocoa,Soy Lecithin,Vanillin"},
}

var brandNames = []string{
	"Golden Harvest", "Sunrise Foods", "Pinar", "Eti", "Torku",
	"Blue Valley", "Fresh Fields", "Anadolu", "Meadow Farm", "Vita",
}

func seedProducts(db *gorm.DB) error {
	var allIngredients []models.Ingredient
	if err := db.Find(&allIngredients).Error; err != nil {
		return err
	}
	byName := make(map[string]models.Ingredient, len(allIngredients))
	for _, ing := range allIngredients {
		byName[ing.Name] = ing
	}

	products := make([]models.Product, 0, len(productTemplates))
	for _, template := range productTemplates {
		var barcode, brand string
		switch template.name {
		case "Ulker Chocolate Wafer":
			barcode = "8690504020509"
			brand = "Ulker"
		case "Nutella Hazelnut Spread":
			barcode = "3017620422003"
			brand = "Ferrero"
		default:
			barcode = "869" + utils.RandomDigits(9)
			brand = brandNames[rand.Intn(len(brandNames))]
		}

		var ingredients []models.Ingredient
		have := make(map[uint]bool)
		for _, name := range strings.Split(template.ingredients, ",") {
			if ing, ok := byName[strings.TrimSpace(name)]; ok {
				ingredients = append(ingredients, ing)
				have[ing.ID] = true
			}
		}

		// A few random extras so the products are not pure templates.
		extras := rand.Intn(3)
		for j := 0; j < extras; j++ {
			extra := allIngredients[rand.Intn(len(allIngredients))]
			if !have[extra.ID] {
				ingredients = append(ingredients, extra)
				have[extra.ID] = true
			}
		}

		products = append(products, models.Product{
			Barcode:     barcode,
			ProductName: brand + " " + template.name,
			Ingredients: ingredients,
		})
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}

	logrus.Infof("Seeded %d products", len(products))
	return nil
}

var seedFirstNames = []string{
	"Ayse", "Mehmet", "Elif", "Emre", "Zeynep", "Can", "Selin", "Burak",
	"Deniz", "Merve", "Kerem", "Ece",
}

var seedLastNames = []string{
	"Yilmaz", "Kaya", "Demir", "Celik", "Sahin", "Arslan", "Aydin", "Koc",
	"Ozturk", "Polat",
}

func seedUsers(db *gorm.DB) error {
	var allAllergies []models.Allergy
	if err := db.Find(&allAllergies).Error; err != nil {
		return err
	}

	adminPassword, err := utils.HashPassword(envOrDefault("ADMIN_PASSWORD", "admin123"))
	if err != nil {
		return err
	}
	admin := models.User{
		Username: envOrDefault("ADMIN_USERNAME", "admin"),
		Password: adminPassword,
		Email:    envOrDefault("ADMIN_EMAIL", "admin@scanme.com"),
		Name:     "System",
		Surname:  "Administrator",
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	minUsers := envInt("SEED_USER_MIN", 5)
	maxUsers := envInt("SEED_USER_MAX", 10)
	if maxUsers < minUsers {
		maxUsers = minUsers
	}
	userCount := minUsers + rand.Intn(maxUsers-minUsers+1)

	for i := 0; i < userCount; i++ {
		firstName := seedFirstNames[rand.Intn(len(seedFirstNames))]
		lastName := seedLastNames[rand.Intn(len(seedLastNames))]
		username := strings.ToLower(firstName) + utils.RandomDigits(4)

		password, err := utils.HashPassword(utils.RandomString(10))
		if err != nil {
			return err
		}

		user := models.User{
			Username:  username,
			Password:  password,
			Email:     fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(firstName), strings.ToLower(lastName), i),
			Name:      firstName,
			Surname:   lastName,
			Role:      models.RoleUser,
			Allergies: pickRandomAllergies(allAllergies, 1+rand.Intn(3)),
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	testPassword, err := utils.HashPassword("testpass")
	if err != nil {
		return err
	}
	testUser := models.User{
		Username:  "testuser",
		Password:  testPassword,
		Email:     "test@scanme.com",
		Name:      "Test",
		Surname:   "User",
		Role:      models.RoleUser,
		Allergies: pickAllergiesByName(allAllergies, "Gluten", "Milk (Dairy)", "Tree Nuts"),
	}
	if err := db.Create(&testUser).Error; err != nil {
		return err
	}

	logrus.Infof("Seeded %d users (%d random + 1 admin + 1 test user)", userCount+2, userCount)
	return nil
}

func pickRandomAllergies(all []models.Allergy, n int) []models.Allergy {
	picked := make([]models.Allergy, 0, n)
	have := make(map[uint]bool)
	for i := 0; i < n && len(all) > 0; i++ {
		a := all[rand.Intn(len(all))]
		if !have[a.ID] {
			picked = append(picked, a)
			have[a.ID] = true
		}
	}
	return picked
}

func pickAllergiesByName(all []models.Allergy, names ...string) []models.Allergy {
	picked := make([]models.Allergy, 0, len(names))
	for _, name := range names {
		for _, a := range all {
			if a.Name == name {
				picked = append(picked, a)
				break
			}
		}
	}
	return picked
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
