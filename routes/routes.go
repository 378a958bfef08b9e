package routes

import (
	"time"

	"github.com/yumutcodes/scanme/controllers"
	"github.com/yumutcodes/scanme/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Permissive development posture: all origins, methods, headers.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	r.POST("/token", controllers.IssueToken)
	r.POST("/users", controllers.CreateUser)
	r.GET("/users/check/:email", controllers.CheckUser)

	// Protected routes
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.PATCH("/users/:id", controllers.ChangePassword)

		authed.GET("/allergies", controllers.GetAllergies)
		authed.POST("/allergies", controllers.AddAllergy)
		authed.DELETE("/allergies", controllers.RemoveAllergy)

		authed.GET("/products/search", controllers.SearchProduct)

		authed.GET("/history", controllers.GetHistory)
		authed.POST("/history", controllers.SaveHistory)
		authed.DELETE("/history/:id", controllers.DeleteHistory)
	}

	return r
}
