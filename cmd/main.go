package main

import (
	"os"

	"github.com/yumutcodes/scanme/config"
	"github.com/yumutcodes/scanme/routes"

	"github.com/sirupsen/logrus"
)

func main() {
	config.InitDB()

	if err := config.Seed(config.DB); err != nil {
		logrus.Fatalf("data seeding failed: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
