package storage

import (
	"fmt"

	"studyhub/models"
)

// NewStorageClient creates a new storage client based on provider type
func NewStorageClient(provider *models.StorageProvider) (StorageInterface, error) {
	switch provider.Type {
	case "s3":
		return NewS3Client(provider)
	case "local":
		return NewLocalClient(provider)
	default:
		return nil, fmt.Errorf("unsupported storage provider type: %s", provider.Type)
	}
}

// ValidateProvider validates storage provider configuration
func ValidateProvider(provider *models.StorageProvider) error {
	switch provider.Type {
	case "s3":
		if provider.Bucket == "" {
			return fmt.Errorf("bucket name is required")
		}
		if provider.AccessKey == "" || provider.SecretKey == "" {
			return fmt.Errorf("access key and secret key are required")
		}
		if provider.Region == "" {
			return fmt.Errorf("region is required")
		}
		return nil
	case "local":
		return nil
	default:
		return fmt.Errorf("unsupported provider type: %s", provider.Type)
	}
}
