package util

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/myjobsapp/myjobs-api/internal/config"
)

// SaveUpload stores an uploaded file under ./uploads/<kind>/ with a generated
// name and returns the relative path recorded on the model.
func SaveUpload(c *fiber.Ctx, file *multipart.FileHeader, kind string, maxMB int64) (string, error) {
	if file.Size > maxMB*1024*1024 {
		return "", NewFormError("validation failed", map[string]string{
			"file": fmt.Sprintf("File size must be <= %d MB", maxMB),
		})
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext
	rel := filepath.Join("uploads", kind, name)
	if err := c.SaveFile(file, "./"+rel); err != nil {
		return "", err
	}
	return rel, nil
}

// FileURL maps a stored file path to an absolute URL when APP_URL is
// configured, the relative path otherwise, and null when there is no file.
func FileURL(path string) *string {
	if path == "" {
		return nil
	}
	base := config.LoadAppConfig().BaseURL
	if base == "" {
		out := "/" + strings.TrimPrefix(path, "/")
		return &out
	}
	out := strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
	return &out
}
