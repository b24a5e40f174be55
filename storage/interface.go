package storage

import (
	"io"
	"time"
)

// StorageInterface defines the common interface for all storage providers
type StorageInterface interface {
	// Basic blob operations
	Upload(key string, data []byte) error
	UploadStream(key string, reader io.Reader, size int64) error
	Download(key string) ([]byte, error)
	Delete(key string) error
	DeleteMultiple(keys []string) error
	Exists(key string) (bool, error)

	// Listing, used by cascading deletes
	List(prefix string) ([]string, error)

	// URL operations
	GetURL(key string) (string, error)
	GetPresignedURL(key string, expiry time.Duration) (string, error)

	// Provider info
	GetProviderInfo() *ProviderInfo
	HealthCheck() error
}

// ProviderInfo contains information about the storage provider
type ProviderInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Region   string `json:"region"`
	Endpoint string `json:"endpoint"`
	Bucket   string `json:"bucket"`
}

// StorageError represents storage-specific errors
type StorageError struct {
	Provider string `json:"provider"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Key      string `json:"key,omitempty"`
}

func (e *StorageError) Error() string {
	return e.Message
}

// NewStorageError creates a new storage error
func NewStorageError(provider, code, message, key string) *StorageError {
	return &StorageError{
		Provider: provider,
		Code:     code,
		Message:  message,
		Key:      key,
	}
}
