package config

import (
	"fmt"
	"log"

	"studyhub/models"
	"studyhub/storage"
)

// StorageManager handles storage client initialization
type StorageManager struct {
	config *Config
	client storage.StorageInterface
}

// NewStorageManager creates a new storage manager
func NewStorageManager(config *Config) *StorageManager {
	return &StorageManager{config: config}
}

// Initialize initializes the storage subsystem
func (sm *StorageManager) Initialize() error {
	log.Println("Initializing storage subsystem...")

	provider := sm.buildProvider()
	if err := storage.ValidateProvider(provider); err != nil {
		return fmt.Errorf("invalid storage configuration: %v", err)
	}

	client, err := storage.NewStorageClient(provider)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %v", err)
	}

	sm.client = client
	log.Printf("Storage subsystem initialized with provider: %s", provider.Type)
	return nil
}

// buildProvider assembles the provider description from configuration
func (sm *StorageManager) buildProvider() *models.StorageProvider {
	switch sm.config.StorageProvider {
	case "s3":
		return &models.StorageProvider{
			Name:      "S3 Storage",
			Type:      "s3",
			Region:    sm.config.S3Region,
			Bucket:    sm.config.S3Bucket,
			Endpoint:  sm.config.S3Endpoint,
			AccessKey: sm.config.S3AccessKey,
			SecretKey: sm.config.S3SecretKey,
			BaseURL:   sm.config.PublicBaseURL,
		}
	default:
		return &models.StorageProvider{
			Name:    "Local Storage",
			Type:    "local",
			Region:  "local",
			Bucket:  "uploads",
			BaseURL: sm.config.PublicBaseURL,
			Settings: map[string]interface{}{
				"base_path": sm.config.UploadPath,
			},
		}
	}
}

// Client returns the active storage client
func (sm *StorageManager) Client() storage.StorageInterface {
	return sm.client
}

// HealthCheck verifies the storage backend is reachable
func (sm *StorageManager) HealthCheck() error {
	if sm.client == nil {
		return fmt.Errorf("storage not initialized")
	}
	return sm.client.HealthCheck()
}
