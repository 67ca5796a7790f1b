package utils

import (
	"encoding/base64"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"saddwy/backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultPhotoDir is the subdirectory of the upload dir holding the stock
// avatars. Photos under it are shared between users and never deleted on
// profile edits.
const DefaultPhotoDir = "predeterminado"

var ErrUnsupportedImage = errors.New("unsupported image format")

// DecodePhoto decodes a base64 image and sniffs its type. Only JPEG and PNG
// are accepted; the returned extension includes the dot.
func DecodePhoto(encoded string) ([]byte, string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", err
	}

	switch http.DetectContentType(raw) {
	case "image/jpeg":
		return raw, ".jpg", nil
	case "image/png":
		return raw, ".png", nil
	default:
		return nil, "", ErrUnsupportedImage
	}
}

// SavePhoto writes the image under the upload dir with a random filename and
// returns the stored relative path.
func SavePhoto(uploadDir string, raw []byte, ext string) (string, error) {
	dir := filepath.Join(uploadDir, "usuario")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		return "", err
	}

	return filepath.Join("usuario", name), nil
}

// SaveDefaultPhoto stores a stock avatar under the shared default directory.
func SaveDefaultPhoto(uploadDir string, raw []byte, ext string) (string, error) {
	dir := filepath.Join(uploadDir, DefaultPhotoDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		return "", err
	}

	return filepath.Join(DefaultPhotoDir, name), nil
}

// DeletePhoto removes a previously stored photo asset. Stock avatars are
// shared, so anything under the default directory is left alone.
func DeletePhoto(uploadDir, photo string) error {
	if photo == "" || strings.Contains(photo, DefaultPhotoDir) {
		return nil
	}
	err := os.Remove(filepath.Join(uploadDir, photo))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RandomDefaultPhoto picks one stock avatar at random, or "" when the pool is
// empty.
func RandomDefaultPhoto(db *gorm.DB) (string, error) {
	var photos []models.DefaultPhoto
	if err := db.Find(&photos).Error; err != nil {
		return "", err
	}
	if len(photos) == 0 {
		return "", nil
	}
	return photos[rand.Intn(len(photos))].Photo, nil
}

// PhotoURL builds the absolute URL clients use to fetch a stored photo.
func PhotoURL(baseURL, photo string) string {
	if photo == "" {
		return ""
	}
	return strings.TrimSuffix(baseURL, "/") + "/api/v1/uploads/" + filepath.ToSlash(photo)
}
