package controllers

import (
	"studyhub/models"
	"studyhub/services"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	userService    *services.UserService
	contactService *services.ContactService
	adminService   *services.AdminService
}

func NewAdminController() *AdminController {
	return &AdminController{
		userService:    services.NewUserService(),
		contactService: services.NewContactService(),
		adminService:   services.NewAdminService(),
	}
}

// GetUsers returns all user profiles, optionally filtered
func (ac *AdminController) GetUsers(c *gin.Context) {
	search := c.Query("search")

	users, err := ac.userService.ListUsers(c.Request.Context(), search)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to get users")
		return
	}

	utils.SuccessResponse(c, "Users retrieved successfully", users)
}

// UpdateUser edits a profile's username and role
func (ac *AdminController) UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, err := ac.userService.UpdateUser(c.Request.Context(), userID, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to update user")
		return
	}

	utils.SuccessResponse(c, "User updated successfully", user)
}

// DeleteUser removes an account and its uploaded blobs
func (ac *AdminController) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	caller, exists := utils.GetUserFromContext(c)
	if exists && caller.ID == userID {
		utils.BadRequestResponse(c, "Cannot delete your own account")
		return
	}

	if err := ac.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to delete user")
		return
	}

	utils.SuccessResponse(c, "User deleted successfully", nil)
}

// GetContactRequests returns all requests, newest first
func (ac *AdminController) GetContactRequests(c *gin.Context) {
	requests, err := ac.contactService.List(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to get contact requests")
		return
	}

	utils.SuccessResponse(c, "Contact requests retrieved successfully", requests)
}

// ResolveContactRequest approves or rejects a pending request
func (ac *AdminController) ResolveContactRequest(c *gin.Context) {
	requestID := c.Param("id")

	var req models.ContactRequestResolve
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	request, err := ac.contactService.Resolve(c.Request.Context(), requestID, req.Status)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to resolve contact request")
		return
	}

	utils.SuccessResponse(c, "Contact request resolved", request)
}

// GetDashboardStats returns the admin dashboard counters
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	stats, err := ac.adminService.DashboardStats(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to get dashboard stats")
		return
	}

	utils.SuccessResponse(c, "Dashboard stats retrieved successfully", stats)
}
