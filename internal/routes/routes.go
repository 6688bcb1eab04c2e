package routes

import (
	"github.com/carmarket-mw/carmarket-backend/internal/handler"
	"github.com/carmarket-mw/carmarket-backend/internal/middleware"
	"github.com/carmarket-mw/carmarket-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	carHandler *handler.CarHandler,
	favoriteHandler *handler.FavoriteHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	// Cars (public)
	cars := api.Group("/cars")
	{
		cars.GET("", carHandler.ListCars)
		cars.GET("/:id", carHandler.GetCar)
		cars.GET("/:id/similar", carHandler.ListSimilar)
		cars.POST("/:id/view", carHandler.RecordView)

		// Favorite state renders for both signed-in and signed-out visitors
		cars.GET("/:id/favorite", middleware.OptionalJWTAuth(jwtManager), favoriteHandler.CheckFavorite)
		cars.POST("/:id/favorite", middleware.JWTAuth(jwtManager), favoriteHandler.AddFavorite)
		cars.DELETE("/:id/favorite", middleware.JWTAuth(jwtManager), favoriteHandler.RemoveFavorite)
	}

	// My favorites
	api.GET("/favorites", middleware.JWTAuth(jwtManager), favoriteHandler.ListMyFavorites)

	// Stats (public, landing page)
	api.GET("/stats", carHandler.GetStats)

	// Admin
	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(jwtManager))
	admin.Use(middleware.RequireAdmin())
	admin.POST("/reconcile-likes", favoriteHandler.ReconcileLikes)
}
