package controllers

import (
	"studyhub/models"
	"studyhub/services"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService    *services.UserService
	contactService *services.ContactService
}

func NewUserController() *UserController {
	return &UserController{
		userService:    services.NewUserService(),
		contactService: services.NewContactService(),
	}
}

// GetProfile returns the caller's profile
func (uc *UserController) GetProfile(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	utils.SuccessResponse(c, "Profile retrieved successfully", user)
}

// UpdateTasks replaces the caller's task list
func (uc *UserController) UpdateTasks(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := uc.userService.UpdateTasks(c.Request.Context(), user.ID, req.Tasks); err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to update tasks")
		return
	}

	utils.SuccessResponse(c, "Tasks updated successfully", nil)
}

// UpdateAssignments replaces the caller's assignment list
func (uc *UserController) UpdateAssignments(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req struct {
		Assignments []models.Assignment `json:"assignments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := uc.userService.UpdateAssignments(c.Request.Context(), user.ID, req.Assignments); err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to update assignments")
		return
	}

	utils.SuccessResponse(c, "Assignments updated successfully", nil)
}

// UpdateExams replaces the caller's exam list
func (uc *UserController) UpdateExams(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req struct {
		Exams []models.Exam `json:"exams"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := uc.userService.UpdateExams(c.Request.Context(), user.ID, req.Exams); err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to update exams")
		return
	}

	utils.SuccessResponse(c, "Exams updated successfully", nil)
}

// UpdateRecords replaces the caller's record list
func (uc *UserController) UpdateRecords(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req struct {
		Records []models.Record `json:"records"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := uc.userService.UpdateRecords(c.Request.Context(), user.ID, req.Records); err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to update records")
		return
	}

	utils.SuccessResponse(c, "Records updated successfully", nil)
}

// CreateContactRequest files a support request for the caller
func (uc *UserController) CreateContactRequest(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req models.ContactRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	request, err := uc.contactService.Create(c.Request.Context(), user, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to create contact request")
		return
	}

	utils.CreatedResponse(c, "Contact request submitted", request)
}
