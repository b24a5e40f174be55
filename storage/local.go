package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studyhub/models"
)

// LocalClient implements local file system storage
type LocalClient struct {
	basePath string
	baseURL  string
	provider *models.StorageProvider
}

// NewLocalClient creates a new local storage client
func NewLocalClient(provider *models.StorageProvider) (*LocalClient, error) {
	basePath, exists := provider.Settings["base_path"].(string)
	if !exists || basePath == "" {
		basePath = "./uploads"
	}

	// Ensure directory exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %v", err)
	}

	return &LocalClient{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(provider.BaseURL, "/"),
		provider: provider,
	}, nil
}

// Upload saves data to local file system
func (lc *LocalClient) Upload(key string, data []byte) error {
	fullPath := filepath.Join(lc.basePath, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %v", err)
	}

	return os.WriteFile(fullPath, data, 0644)
}

// UploadStream saves data from a stream to local file system
func (lc *LocalClient) UploadStream(key string, reader io.Reader, size int64) error {
	fullPath := filepath.Join(lc.basePath, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %v", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %v", err)
	}

	return nil
}

// Download reads data from local file system
func (lc *LocalClient) Download(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(lc.basePath, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewStorageError("local", "NOT_FOUND", err.Error(), key)
		}
		return nil, NewStorageError("local", "READ_FAILED", err.Error(), key)
	}
	return data, nil
}

// Delete removes a file from local file system
func (lc *LocalClient) Delete(key string) error {
	err := os.Remove(filepath.Join(lc.basePath, key))
	if err != nil && !os.IsNotExist(err) {
		return NewStorageError("local", "DELETE_FAILED", err.Error(), key)
	}
	return nil
}

// DeleteMultiple removes multiple files from local file system
func (lc *LocalClient) DeleteMultiple(keys []string) error {
	for _, key := range keys {
		if err := lc.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// Exists checks if a file exists on the local file system
func (lc *LocalClient) Exists(key string) (bool, error) {
	_, err := os.Stat(filepath.Join(lc.basePath, key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, NewStorageError("local", "STAT_FAILED", err.Error(), key)
	}
	return true, nil
}

// List returns the keys of all files under the given prefix
func (lc *LocalClient) List(prefix string) ([]string, error) {
	var keys []string

	root := filepath.Join(lc.basePath, filepath.FromSlash(prefix))
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(lc.basePath, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})

	if err != nil && !os.IsNotExist(err) {
		return nil, NewStorageError("local", "LIST_FAILED", err.Error(), prefix)
	}

	return keys, nil
}

// GetURL returns the public URL for a key
func (lc *LocalClient) GetURL(key string) (string, error) {
	if lc.baseURL == "" {
		return "/uploads/" + key, nil
	}
	return fmt.Sprintf("%s/uploads/%s", lc.baseURL, key), nil
}

// GetPresignedURL returns the plain URL; local storage has no signing
func (lc *LocalClient) GetPresignedURL(key string, expiry time.Duration) (string, error) {
	return lc.GetURL(key)
}

// GetProviderInfo returns provider information
func (lc *LocalClient) GetProviderInfo() *ProviderInfo {
	return &ProviderInfo{
		Name:   lc.provider.Name,
		Type:   "local",
		Region: "local",
		Bucket: lc.basePath,
	}
}

// HealthCheck verifies the base directory is writable
func (lc *LocalClient) HealthCheck() error {
	probe := filepath.Join(lc.basePath, ".healthcheck")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return NewStorageError("local", "HEALTH_CHECK_FAILED", err.Error(), "")
	}
	os.Remove(probe)
	return nil
}
