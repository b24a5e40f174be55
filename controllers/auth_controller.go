package controllers

import (
	"studyhub/models"
	"studyhub/services"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{
		authService: services.NewAuthService(),
	}
}

// Register creates a new password account
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, tokens, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to register")
		return
	}

	utils.CreatedResponse(c, "Account created successfully", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Login verifies credentials and issues tokens
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, tokens, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to login")
		return
	}

	utils.SuccessResponse(c, "Login successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Refresh exchanges a refresh token for a new pair
func (ac *AuthController) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	tokens, err := ac.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to refresh token")
		return
	}

	utils.SuccessResponse(c, "Token refreshed", tokens)
}

// OAuthRedirect sends the client to the provider's consent page. The state
// nonce is round-tripped through a short-lived cookie.
func (ac *AuthController) OAuthRedirect(c *gin.Context) {
	provider := c.Param("provider")

	authURL, state, err := ac.authService.OAuthRedirect(provider)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to start sign-in")
		return
	}

	c.SetCookie("oauth_state", state, 600, "/", "", false, true)
	c.Redirect(302, authURL)
}

// OAuthCallback completes the provider sign-in
func (ac *AuthController) OAuthCallback(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	state := c.Query("state")

	if code == "" {
		utils.BadRequestResponse(c, "Missing authorization code")
		return
	}

	storedState, err := c.Cookie("oauth_state")
	if err != nil || state == "" || state != storedState {
		utils.UnauthorizedResponse(c, "Invalid OAuth state")
		return
	}
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	user, tokens, err := ac.authService.OAuthCallback(c.Request.Context(), provider, code)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to complete sign-in")
		return
	}

	utils.SuccessResponse(c, "Login successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}
