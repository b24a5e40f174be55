package routes

import (
	"studyhub/controllers"
	"studyhub/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(r *gin.RouterGroup) {
	userController := controllers.NewUserController()

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", userController.GetProfile)

		// Planner collections, each replaced wholesale
		users.PUT("/me/tasks", userController.UpdateTasks)
		users.PUT("/me/assignments", userController.UpdateAssignments)
		users.PUT("/me/exams", userController.UpdateExams)
		users.PUT("/me/records", userController.UpdateRecords)
	}

	contact := r.Group("/contact")
	contact.Use(middleware.AuthMiddleware())
	{
		contact.POST("", userController.CreateContactRequest)
	}
}
