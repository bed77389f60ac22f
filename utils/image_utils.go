package utils

import (
	"fmt"
	"strings"
)

const storageURLPrefix = "https://storage.googleapis.com/"

// ParseStorageURL splits a public Cloud Storage URL into its bucket and object path.
func ParseStorageURL(url string) (bucket, objectPath string, err error) {
	if !strings.HasPrefix(url, storageURLPrefix) {
		return "", "", fmt.Errorf("invalid URL")
	}

	parts := strings.SplitN(strings.TrimPrefix(url, storageURLPrefix), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid URL format")
	}

	return parts[0], parts[1], nil
}
