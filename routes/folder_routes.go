package routes

import (
	"studyhub/controllers"
	"studyhub/middleware"

	"github.com/gin-gonic/gin"
)

func FolderRoutes(r *gin.RouterGroup) {
	folderController := controllers.NewFolderController()

	folders := r.Group("/folders")
	folders.Use(middleware.AuthMiddleware())
	{
		folders.GET("", folderController.GetFolders)
		folders.POST("", folderController.CreateFolder)
		folders.GET("/:id", folderController.GetFolder)
		folders.PUT("/:id", folderController.UpdateFolder)
		folders.DELETE("/:id", folderController.DeleteFolder)

		// File operations
		folders.POST("/:id/files", middleware.UploadRateLimitMiddleware(), folderController.UploadFile)
		folders.DELETE("/:id/files/:fileId", folderController.DeleteFile)
	}
}
