package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/oyasar/assist/internal/pkg/logger"
)

// Storage accepts an uploaded payload and returns a retrievable reference.
// Content entities store the reference, not the bytes.
type Storage interface {
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)
	DeleteFile(filePath string) error
}

// LocalStorage saves files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // base URL prepended to returned file paths
}

// NewLocalStorage creates a LocalStorage rooted at basePath. If baseURL is
// non-empty it is prepended to returned references.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFile stores an uploaded file under an optional subdirectory and returns
// the accessible reference. A nil header means no file was uploaded.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	var accessiblePath string
	if ls.baseURL != "" {
		accessiblePath = strings.TrimRight(ls.baseURL, "/")
		if subPath != "" {
			accessiblePath += "/" + subPath
		}
		accessiblePath += "/" + uniqueFilename
	} else if subPath != "" {
		accessiblePath = filepath.Join("uploads", subPath, uniqueFilename)
	} else {
		accessiblePath = filepath.Join("uploads", uniqueFilename)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("savedAs", uniqueFilename).Msg("File saved")
	return accessiblePath, nil
}

// DeleteFile removes a stored file given its reference. The reference keeps
// the subdirectory SaveFile stored under, so it is resolved back to a path
// below basePath. Deleting a missing file is not an error.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	rel := filePath
	if ls.baseURL != "" {
		rel = strings.TrimPrefix(rel, strings.TrimRight(ls.baseURL, "/"))
	}
	rel = strings.TrimPrefix(rel, "/")
	rel = strings.TrimPrefix(rel, "uploads/")
	rel = filepath.Clean(rel)
	if rel == "." || rel == "/" || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	physicalPath := filepath.Join(ls.basePath, rel)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
