package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/logger"
)

// MaxFileSize is the authoritative upload cap.
const MaxFileSize = 5 << 20 // 5 MB

// allowedMimeTypes is the document allow-list: PDF, DOC/DOCX, PPT/PPTX.
var allowedMimeTypes = map[string]struct{}{
	"application/pdf":               {},
	"application/msword":            {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.ms-powerpoint": {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
}

// LocalStorage stores uploads on the local filesystem under a single directory.
type LocalStorage struct {
	basePath string // directory files are written to
	baseURL  string // URL prefix the directory is served at, e.g. "/uploads"
	maxSize  int64
}

// NewLocalStorage creates a LocalStorage rooted at basePath. The directory is
// created if missing; failure to create it is a startup-fatal condition for
// the caller.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxSize:  MaxFileSize,
	}, nil
}

// Save validates the upload against the MIME allow-list and size cap, writes
// it under a generated collision-resistant name, and returns the URL path the
// file is served at. The client-supplied filename is never trusted beyond its
// extension.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", apperrors.ErrFileRequired
	}

	if fileHeader.Size > ls.maxSize {
		return "", apperrors.ErrFileTooLarge
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		return "", apperrors.ErrUnsupportedFileType
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Timestamp plus random suffix; the original extension is kept so the
	// static file server sends a sensible content type.
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	uniqueName := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	dstPath := filepath.Join(ls.basePath, uniqueName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessiblePath := ls.baseURL + "/" + uniqueName
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueName).Msg("File saved")
	return accessiblePath, nil
}

// Delete removes a stored file given its URL path (e.g. "/uploads/x.pdf").
// It is idempotent: a file that is already gone is treated as deleted.
func (ls *LocalStorage) Delete(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	filename := filepath.Base(fileURL)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", fileURL)
	}

	physicalPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}
