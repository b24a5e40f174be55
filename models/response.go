package models

import "time"

type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Meta      *Meta       `json:"meta,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type Meta struct {
	Page       int `json:"page,omitempty"`
	Limit      int `json:"limit,omitempty"`
	Total      int `json:"total,omitempty"`
	TotalPages int `json:"total_pages,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type FolderCreateRequest struct {
	Name     string   `json:"name" validate:"required"`
	ParentID string   `json:"parent_id,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type UserUpdateRequest struct {
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

type ContactRequestCreate struct {
	Subject     string `json:"subject" validate:"required"`
	Message     string `json:"message" validate:"required"`
	RequestType string `json:"request_type"`
}

type ContactRequestResolve struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// DashboardStats backs the admin settings tab.
type DashboardStats struct {
	TotalUsers      int `json:"total_users"`
	AdminUsers      int `json:"admin_users"`
	TotalFolders    int `json:"total_folders"`
	TotalFiles      int `json:"total_files"`
	PendingRequests int `json:"pending_requests"`
}
