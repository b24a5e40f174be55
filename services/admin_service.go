package services

import (
	"context"

	"studyhub/database"
	"studyhub/models"
	"studyhub/storage"
)

// AdminService aggregates dashboard statistics from the other services.
type AdminService struct {
	users    *UserService
	folders  *FolderService
	contacts *ContactService
}

func NewAdminService() *AdminService {
	return &AdminService{
		users:    NewUserService(),
		folders:  NewFolderService(),
		contacts: NewContactService(),
	}
}

// NewAdminServiceWith builds a service over explicit collaborators, used by
// tests.
func NewAdminServiceWith(store database.Store, blobs storage.StorageInterface) *AdminService {
	return &AdminService{
		users:    NewUserServiceWith(store, blobs),
		folders:  NewFolderServiceWith(store, blobs),
		contacts: NewContactServiceWith(store),
	}
}

// DashboardStats gathers the counters shown on the admin dashboard.
func (as *AdminService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	total, admins, err := as.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	folderCount, fileCount, err := as.folders.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := as.contacts.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalUsers:      total,
		AdminUsers:      admins,
		TotalFolders:    folderCount,
		TotalFiles:      fileCount,
		PendingRequests: pending,
	}, nil
}
