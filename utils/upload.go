package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AllowedImageTypes defines the allowed image file extensions
var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// ValidateImageFile checks if the uploaded file is a valid image
func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > 5*1024*1024 {
		return fmt.Errorf("file size exceeds 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return fmt.Errorf("invalid file type. Allowed types: jpg, jpeg, png, webp, gif")
	}

	return nil
}

// SaveUploadedFile saves an uploaded image under uploadDir with a unique name
// and returns the stored filename.
func SaveUploadedFile(file *multipart.FileHeader, uploadDir string) (string, error) {
	if err := ValidateImageFile(file); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := uuid.New().String() + ext
	dst := filepath.Join(uploadDir, filename)

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %v", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %v", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %v", err)
	}

	return filename, nil
}

// ListImageFiles returns the image files directly under dir. A missing
// directory is an empty listing, not an error.
func ListImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if AllowedImageTypes[strings.ToLower(filepath.Ext(entry.Name()))] {
			images = append(images, entry.Name())
		}
	}
	return images, nil
}
