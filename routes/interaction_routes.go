package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eco-connect/api-go/controllers"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, registrationController *controllers.RegistrationController, ratingController *controllers.RatingController) {
	activities := protected.Group("/activities")
	{
		activities.POST("/:id/register", registrationController.Register)
		activities.POST("/:id/cancel", registrationController.Cancel)
		activities.GET("/:id/participants", registrationController.GetParticipants)
		activities.POST("/:id/ratings", ratingController.RateActivity)
	}

	my := protected.Group("/my")
	{
		my.GET("/registrations", registrationController.MyRegistrations)
	}
}
