package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eco-connect/api-go/controllers"
)

func SetupActivityReadRoutes(browse *gin.RouterGroup, activityController *controllers.ActivityController, ratingController *controllers.RatingController, uploadController *controllers.UploadController) {
	activities := browse.Group("/activities")
	{
		activities.GET("", activityController.ListActivities)
		activities.GET("/featured", activityController.FeaturedActivities)
		activities.GET("/:id", activityController.GetActivity)
		activities.GET("/:id/ratings", ratingController.GetRatings)
		activities.GET("/:id/media", uploadController.ListMedia)
	}
}

func SetupActivityWriteRoutes(protected *gin.RouterGroup, activityController *controllers.ActivityController) {
	activities := protected.Group("/activities")
	{
		activities.POST("", activityController.CreateActivity)
		activities.PUT("/:id", activityController.UpdateActivity)
		activities.DELETE("/:id", activityController.DeleteActivity)
		activities.POST("/:id/feature", activityController.ToggleFeatured)
	}
}
