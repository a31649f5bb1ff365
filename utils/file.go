package utils

import (
	"classifieds/models"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds maximum allowed size")
	ErrInvalidFileType = errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
	ErrInvalidFileName = errors.New("invalid file name")
)

var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

func ValidateImage(name string, size, maxSize int64) error {
	if maxSize > 0 && size > maxSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return ErrInvalidFileType
	}
	return nil
}

// ReadUploadedImage validates a multipart image and reads it fully.
func ReadUploadedImage(fh *multipart.FileHeader, maxSize int64) (*models.MemoryFile, error) {
	if err := ValidateImage(fh.Filename, fh.Size, maxSize); err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if maxSize > 0 {
		r = io.LimitReader(f, maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, ErrFileTooLarge
	}
	return models.NewMemoryFile(fh.Filename, data), nil
}

// NewImageFileName returns "<uuid>.<ext>"; only the lower-cased extension of
// original survives.
func NewImageFileName(original string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(original))
}

// CheckFileName rejects names that could escape an image directory.
func CheckFileName(name string) error {
	if name == "" || name == "." || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return ErrInvalidFileName
	}
	return nil
}

func ImageContentType(name string) string {
	if ct, ok := allowedImageExtensions[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}
