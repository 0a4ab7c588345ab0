package routes

import (
	"seedbnb/controllers"
	"seedbnb/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// CORS for the React front end
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/signup", controllers.SignupHandler)
		api.POST("/login", controllers.LoginHandler)
		api.POST("/refresh", controllers.RefreshTokenHandler)
		api.POST("/logout", controllers.LogoutHandler)

		// Public spot routes
		api.GET("/spots", controllers.GetAllSpots(db))
		api.GET("/spots/:spotId", controllers.GetSpotDetails(db))
		api.GET("/spots/:spotId/reviews", controllers.GetSpotReviews(db))
	}

	// Protected routes (require login)

	protected := r.Group("/api")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/spots/current", controllers.GetCurrentUserSpots(db))
		protected.POST("/spots", controllers.CreateSpot(db))
		protected.POST("/spots/:spotId/images", controllers.AddSpotImage(db))
		protected.PUT("/spots/:spotId", controllers.UpdateSpot(db))
		protected.DELETE("/spots/:spotId", controllers.DeleteSpot(db))

		protected.DELETE("/spot-images/:imageId", controllers.DeleteSpotImage(db))

		protected.POST("/spots/:spotId/reviews", controllers.CreateSpotReview(db))
		protected.POST("/spots/:spotId/bookings", controllers.CreateSpotBooking(db))
		protected.GET("/bookings/current", controllers.GetCurrentUserBookings(db))
	}

	// Fallback for Unknown Routes

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "page not found"})
	})

	return r
}
