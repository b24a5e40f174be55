package routes

import (
	"studyhub/controllers"
	"studyhub/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.RouterGroup) {
	authController := controllers.NewAuthController()

	auth := r.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)

		// Federated sign-in
		auth.GET("/:provider", authController.OAuthRedirect)
		auth.GET("/:provider/callback", authController.OAuthCallback)
	}
}
