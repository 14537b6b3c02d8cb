package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager handles export file organization and path management
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateSessionOutputDir creates a session-scoped directory for exports
func (om *OutputManager) CreateSessionOutputDir(sessionID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, filepath.Base(sessionID))

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create session output directory: %w", err)
	}

	return dir, nil
}

// GetOutputFilePath generates a full path for an export file
func (om *OutputManager) GetOutputFilePath(sessionID, fileName string) (string, error) {
	dir, err := om.CreateSessionOutputDir(sessionID)
	if err != nil {
		return "", err
	}

	// Clean the filename to remove any path separators
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

// ResolveExisting returns the path of a previously exported file without
// creating directories.
func (om *OutputManager) ResolveExisting(sessionID, fileName string) (string, error) {
	for _, part := range []string{sessionID, fileName} {
		if part == "" || part == "." || part == ".." || part != filepath.Base(part) {
			return "", fmt.Errorf("invalid path segment %q", part)
		}
	}
	path := filepath.Join(om.BaseOutputDir, filepath.Base(sessionID), filepath.Base(fileName))
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	return path, nil
}

// GetDownloadURL generates a download URL for a file
func (om *OutputManager) GetDownloadURL(sessionID, fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", filepath.Base(sessionID), filepath.Base(fileName))
}

// GetFileType determines the file type based on extension
func (om *OutputManager) GetFileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".xlsx", ".xls":
		return "excel"
	default:
		return "unknown"
	}
}
