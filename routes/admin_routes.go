package routes

import (
	"studyhub/controllers"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.RouterGroup) {
	adminController := controllers.NewAdminController()

	// User management
	r.GET("/users", adminController.GetUsers)
	r.PUT("/users/:id", adminController.UpdateUser)
	r.DELETE("/users/:id", adminController.DeleteUser)

	// Contact request resolution
	r.GET("/requests", adminController.GetContactRequests)
	r.PUT("/requests/:id", adminController.ResolveContactRequest)

	// Dashboard
	r.GET("/stats", adminController.GetDashboardStats)
}
