package controllers

import (
	"studyhub/config"
	"studyhub/models"
	"studyhub/services"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

type FolderController struct {
	folderService *services.FolderService
}

func NewFolderController() *FolderController {
	return &FolderController{
		folderService: services.NewFolderService(),
	}
}

// GetFolders returns the whole folder forest
func (fc *FolderController) GetFolders(c *gin.Context) {
	folders, err := fc.folderService.GetGlobalFolders(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to get folders")
		return
	}

	utils.SuccessResponse(c, "Folders retrieved successfully", gin.H{
		"folders":    folders,
		"totalFiles": models.CountFiles(folders),
	})
}

// GetFolder returns a specific folder from anywhere in the forest
func (fc *FolderController) GetFolder(c *gin.Context) {
	folderID := c.Param("id")

	folder, err := fc.folderService.GetFolder(c.Request.Context(), folderID)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to get folder")
		return
	}

	utils.SuccessResponse(c, "Folder retrieved successfully", gin.H{
		"folder":     folder,
		"totalFiles": folder.TotalFiles(),
	})
}

// CreateFolder creates a new folder at the root or under a parent
func (fc *FolderController) CreateFolder(c *gin.Context) {
	user, exists := utils.GetUserFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "User not found in context")
		return
	}

	var req models.FolderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	folder, err := fc.folderService.CreateFolder(c.Request.Context(), user.ID, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to create folder")
		return
	}

	utils.CreatedResponse(c, "Folder created successfully", folder)
}

// UpdateFolder applies a partial metadata update
func (fc *FolderController) UpdateFolder(c *gin.Context) {
	folderID := c.Param("id")

	var req models.FolderUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request data")
		return
	}

	if err := fc.folderService.UpdateFolder(c.Request.Context(), folderID, req); err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to update folder")
		return
	}

	utils.SuccessResponse(c, "Folder updated successfully", nil)
}

// DeleteFolder removes a folder and its entire subtree
func (fc *FolderController) DeleteFolder(c *gin.Context) {
	folderID := c.Param("id")

	if err := fc.folderService.DeleteFolder(c.Request.Context(), folderID); err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to delete folder")
		return
	}

	utils.SuccessResponse(c, "Folder deleted successfully", nil)
}

// UploadFile stores a file in a folder
func (fc *FolderController) UploadFile(c *gin.Context) {
	folderID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file provided")
		return
	}

	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		utils.BadRequestResponse(c, "File exceeds maximum upload size")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to read uploaded file")
		return
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	file, err := fc.folderService.UploadFile(c.Request.Context(), folderID, fileHeader.Filename, contentType, src, fileHeader.Size)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to upload file")
		return
	}

	utils.CreatedResponse(c, "File uploaded successfully", file)
}

// DeleteFile removes a single file from a folder
func (fc *FolderController) DeleteFile(c *gin.Context) {
	folderID := c.Param("id")
	fileID := c.Param("fileId")

	if err := fc.folderService.DeleteFile(c.Request.Context(), folderID, fileID); err != nil {
		utils.ServiceErrorResponse(c, err, "Failed to delete file")
		return
	}

	utils.SuccessResponse(c, "File deleted successfully", nil)
}
