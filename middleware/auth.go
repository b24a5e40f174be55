package middleware

import (
	"context"
	"strings"
	"time"

	"studyhub/database"
	"studyhub/models"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and loads the caller's profile
// into the request context. Tokens whose account no longer exists are
// rejected.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "Authorization header required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := getUserByID(claims.UserID)
		if err != nil {
			utils.UnauthorizedResponse(c, "User not found")
			c.Abort()
			return
		}

		utils.SetUserInContext(c, user)
		c.Set("token_claims", claims)

		c.Next()
	}
}

// AdminMiddleware gates admin routes. It runs after AuthMiddleware and
// requires the loaded profile to carry the admin role; any missing piece
// means the request never reaches privileged handlers.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := utils.GetUserFromContext(c)
		if !exists {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			utils.ForbiddenResponse(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

func getUserByID(userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := database.GetStore().GetDocument(ctx, database.UsersCollection, userID, &user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return &user, nil
}
