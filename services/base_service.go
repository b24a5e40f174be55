package services

import (
	"studyhub/database"
	"studyhub/storage"
)

// BaseService provides common document-store access for all services
type BaseService struct {
	store database.Store
}

// NewBaseService creates a new base service instance
func NewBaseService() *BaseService {
	return &BaseService{
		store: database.GetStore(),
	}
}

// Store returns the document store
func (bs *BaseService) Store() database.Store {
	return bs.store
}

// blobClient is the process-wide object storage client, set once at startup.
var blobClient storage.StorageInterface

// SetStorageClient wires the active object storage client into the service
// layer. Called from main after storage initialization.
func SetStorageClient(client storage.StorageInterface) {
	blobClient = client
}

// GetStorageClient returns the active object storage client
func GetStorageClient() storage.StorageInterface {
	return blobClient
}
