package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eco-connect/api-go/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	activities := protected.Group("/activities")
	{
		activities.POST("/:id/media/presign", uploadController.GetPresignedURL)
		activities.POST("/:id/media", uploadController.ConfirmUpload)
	}

	protected.DELETE("/media/:mediaId", uploadController.DeleteMedia)
}
