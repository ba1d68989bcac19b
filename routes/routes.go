package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eco-connect/api-go/analytics"
	"github.com/eco-connect/api-go/catalog"
	"github.com/eco-connect/api-go/controllers"
	"github.com/eco-connect/api-go/middleware"
	"github.com/eco-connect/api-go/stores"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, logger *zap.Logger) {
	engine := catalog.NewEngine(
		stores.NewActivityStore(db),
		stores.NewRegistrationStore(db),
		stores.NewRatingStore(db),
		nil, // wall clock
	)
	tracker := analytics.NewTracker(db, rdb, logger)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	activityController := controllers.NewActivityController(db, engine, tracker)
	registrationController := controllers.NewRegistrationController(db, engine)
	ratingController := controllers.NewRatingController(db, engine)
	uploadController := controllers.NewUploadController(db, engine)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/google-login", authController.GoogleLogin)
		public.POST("/refresh-token", authController.RefreshToken)
	}

	// Public reads that personalize for logged-in viewers
	browse := r.Group("/api")
	browse.Use(middleware.OptionalAuthMiddleware())
	{
		SetupActivityReadRoutes(browse, activityController, ratingController, uploadController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		SetupActivityWriteRoutes(protected, activityController)
		SetupInteractionRoutes(protected, registrationController, ratingController)
		SetupUploadRoutes(protected, uploadController)
	}
}
