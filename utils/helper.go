package utils

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ObjectPathFromURL derives the object store path of a blob from its stored
// retrieval URL. The URL, not the folder/file names, is authoritative: names
// may not uniquely or stably map to storage paths. Two shapes are handled:
// bucket-style URLs carrying the percent-encoded object path behind an "/o/"
// segment, and plain URLs whose path is the object key (optionally behind an
// "uploads/" static prefix). Query parameters are dropped either way, and
// the required "global/" namespace prefix is applied exactly once.
func ObjectPathFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid file url: %w", err)
	}

	var object string
	if escaped := u.EscapedPath(); strings.Contains(escaped, "/o/") {
		encoded := escaped[strings.Index(escaped, "/o/")+len("/o/"):]
		object, err = url.PathUnescape(encoded)
		if err != nil {
			return "", fmt.Errorf("invalid object path in url: %w", err)
		}
	} else {
		object = strings.TrimPrefix(u.Path, "/")
		object = strings.TrimPrefix(object, "uploads/")
	}

	if object == "" {
		return "", fmt.Errorf("url %q carries no object path", rawURL)
	}

	return NormalizeGlobalPath(object), nil
}

// NormalizeGlobalPath ensures the global/ namespace prefix is present
// exactly once.
func NormalizeGlobalPath(path string) string {
	if strings.HasPrefix(path, "global/") {
		return path
	}
	return "global/" + path
}

// FolderBlobPrefix is the folder-identifier-based namespace used for blobs
// uploaded on behalf of a folder, e.g. by the user-deletion cascade.
func FolderBlobPrefix(folderID string) string {
	return fmt.Sprintf("folders/%s/", folderID)
}
